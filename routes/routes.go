package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/controllers"
	"github.com/gangasingh/uniconnect-backend/middleware"
	"github.com/gangasingh/uniconnect-backend/services"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, files services.FileStore) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	rel := services.NewRelationshipService(db, files)
	authCtrl := controllers.NewAuthController(db, rel)
	classCtrl := controllers.NewClassController(db)
	subjectCtrl := controllers.NewSubjectController(db, rel)
	resourceCtrl := controllers.NewResourceController(db, rel, files)

	api := r.Group("/api/v1")

	auth := api.Group("/auth/student")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.PUT("/update", middleware.AuthMiddleware(), authCtrl.UpdateUser)
		auth.GET("/me", middleware.AuthMiddleware(), authCtrl.GetMe)
	}

	class := api.Group("/class")
	{
		class.Use(middleware.AuthMiddleware())
		class.GET("/getClass/:id", classCtrl.GetClassByStudent)
		class.GET("/getStudents/:id", classCtrl.GetStudents)
	}

	subject := api.Group("/subject")
	{
		subject.Use(middleware.AuthMiddleware())
		subject.GET("/all-subjects/:classId", subjectCtrl.GetSubjects)
		subject.POST("/create-subject/:classId", middleware.RequireAdmin(), subjectCtrl.CreateSubject)
		subject.PUT("/update-subject/:classId/:subjectId", middleware.RequireAdmin(), subjectCtrl.UpdateSubject)
		subject.DELETE("/delete-subject/:classId/:subjectId", middleware.RequireAdmin(), subjectCtrl.DeleteSubject)
	}

	resource := api.Group("/resource")
	{
		resource.Use(middleware.AuthMiddleware())
		resource.GET("/all", resourceCtrl.GetAllResources)
		resource.GET("/:classId/:subjectId", resourceCtrl.GetResources)
		resource.POST("/:classId/:subjectId", middleware.RequireAdmin(), resourceCtrl.CreateYtResource)
		resource.POST("/upload/:classId/:subjectId", middleware.RequireAdmin(), resourceCtrl.UploadResourceDocument)
		resource.PUT("/:classId/:subjectId/:resourceId", middleware.RequireAdmin(), resourceCtrl.UpdateResource)
		resource.DELETE("/:classId/:subjectId/:resourceId", middleware.RequireAdmin(), resourceCtrl.DeleteResource)
	}

	return r
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/models"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// GET /class/getClass/:id
// Looks up the class a student belongs to.
func (cc *ClassController) GetClassByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID format"})
		return
	}

	var user models.User
	if err := cc.DB.First(&user, "id = ?", studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	if user.ClassID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student is not assigned to a class"})
		return
	}

	var class models.Class
	if err := cc.DB.Preload("Students").Preload("Subjects").
		First(&class, "id = ?", *user.ClassID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fetched class for student id: " + studentID.String(),
		"class":   class,
	})
}

// GET /class/getStudents/:id
func (cc *ClassController) GetStudents(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID format"})
		return
	}

	var class models.Class
	if err := cc.DB.Preload("Students").First(&class, "id = ?", classID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetched students for class id: " + class.ID.String(),
		"students": class.Students,
	})
}

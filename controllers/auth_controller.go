package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/config"
	"github.com/gangasingh/uniconnect-backend/models"
	"github.com/gangasingh/uniconnect-backend/services"
	"github.com/gangasingh/uniconnect-backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Rel *services.RelationshipService
}

func NewAuthController(db *gorm.DB, rel *services.RelationshipService) *AuthController {
	return &AuthController{DB: db, Rel: rel}
}

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	FirstName  string `json:"first_name" binding:"required,min=3,max=50"`
	LastName   string `json:"last_name" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	CourseName string `json:"course_name" binding:"required,oneof=Btech Mtech"`
	Section    string `json:"section" binding:"required,oneof=A B C D CE"`
	Semester   string `json:"semester" binding:"required,oneof=1 2 3 4 5 6 7 8"`
	RollNumber string `json:"roll_number" binding:"required,min=5"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateUserInput struct {
	FirstName  string `json:"first_name" binding:"required,min=3,max=50"`
	LastName   string `json:"last_name" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"omitempty,min=6"`
	CourseName string `json:"course_name" binding:"required,oneof=Btech Mtech"`
	Section    string `json:"section" binding:"required,oneof=A B C D CE"`
	Semester   string `json:"semester" binding:"required,oneof=1 2 3 4 5 6 7 8"`
	RollNumber string `json:"roll_number" binding:"required,min=5"`
}

// ====== HANDLERS ======

// POST /auth/student/register
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Email and roll number are both unique
	var existing models.User
	if err := a.DB.Where("email = ? OR roll_number = ?", input.Email, input.RollNumber).
		First(&existing).Error; err == nil {
		c.JSON(services.StatusFor(services.ErrConflict), gin.H{"error": "User already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	// Role comes from the configured admin email set
	role := models.RoleUser
	if config.IsAdminEmail(input.Email) {
		role = models.RoleAdmin
	}

	newUser := models.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Password:   string(hashed),
		Role:       role,
		CourseName: input.CourseName,
		Section:    input.Section,
		Semester:   input.Semester,
		RollNumber: input.RollNumber,
	}

	if err := a.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(services.StatusFor(services.ErrConflict), gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}

	// Route the new student into the class for their triple (created lazily)
	classID, err := a.Rel.FindOrCreateClass(c.Request.Context(), input.CourseName, input.Section, input.Semester, &newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not assign class"})
		return
	}
	newUser.ClassID = &classID

	token, err := utils.GenerateToken(newUser.ID.String(), string(newUser.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    newUser,
	})
}

// POST /auth/student/login
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"token":   token,
		"user":    user,
	})
}

// PUT /auth/student/update
// Self-only: admins cannot update other students through this route either.
func (a *AuthController) UpdateUser(c *gin.Context) {
	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	targetID := requesterID
	if idParam := c.Query("id"); idParam != "" {
		if targetID, err = uuid.Parse(idParam); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
			return
		}
	}
	if !services.IsSelf(requesterID, targetID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := a.DB.First(&user, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// A changed (course, section, semester) triple moves the student to
	// another class
	classChanged := user.CourseName != input.CourseName ||
		user.Section != input.Section ||
		user.Semester != input.Semester

	if classChanged {
		newClassID, err := a.Rel.ReassignClassMembership(
			c.Request.Context(), user.ID, user.ClassID,
			input.CourseName, input.Section, input.Semester,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reassign class"})
			return
		}
		user.ClassID = &newClassID
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.CourseName = input.CourseName
	user.Section = input.Section
	user.Semester = input.Semester
	user.RollNumber = input.RollNumber

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
			return
		}
		user.Password = string(hashed)
	}

	if err := a.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(services.StatusFor(services.ErrConflict), gin.H{"error": "Email or roll number already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// GET /auth/student/me
func (a *AuthController) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := a.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

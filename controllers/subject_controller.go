package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/models"
	"github.com/gangasingh/uniconnect-backend/services"
)

type SubjectController struct {
	DB  *gorm.DB
	Rel *services.RelationshipService
}

func NewSubjectController(db *gorm.DB, rel *services.RelationshipService) *SubjectController {
	return &SubjectController{DB: db, Rel: rel}
}

type CreateSubjectInput struct {
	Title          string `json:"title" binding:"required"`
	SubjectTeacher string `json:"subject_teacher" binding:"required"`
}

type UpdateSubjectInput struct {
	Title          string `json:"title"`
	SubjectTeacher string `json:"subject_teacher"`
}

// POST /subject/create-subject/:classId (admin)
func (sc *SubjectController) CreateSubject(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID format"})
		return
	}

	var input CreateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and subject teacher are required"})
		return
	}

	var class models.Class
	if err := sc.DB.First(&class, "id = ?", classID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	subject := models.Subject{
		Title:          input.Title,
		SubjectTeacher: input.SubjectTeacher,
		Slug:           slug.Make(input.Title),
		ClassID:        class.ID,
	}
	if err := sc.DB.Create(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create subject"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subject created and added to class successfully",
		"subject": subject,
	})
}

// GET /subject/all-subjects/:classId
func (sc *SubjectController) GetSubjects(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID format"})
		return
	}

	var class models.Class
	if err := sc.DB.Preload("Subjects").First(&class, "id = ?", classID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Subjects fetched successfully",
		"subjects": class.Subjects,
	})
}

// PUT /subject/update-subject/:classId/:subjectId (admin)
func (sc *SubjectController) UpdateSubject(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID format"})
		return
	}
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject ID format"})
		return
	}

	var input UpdateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := sc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID)
	if err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		subject.Title = title
		subject.Slug = slug.Make(title)
	}
	if teacher := strings.TrimSpace(input.SubjectTeacher); teacher != "" {
		subject.SubjectTeacher = teacher
	}

	if err := sc.DB.Save(subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update subject"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subject updated successfully",
		"subject": subject,
	})
}

// DELETE /subject/delete-subject/:classId/:subjectId (admin)
// Cascades: resources first, then the subject itself.
func (sc *SubjectController) DeleteSubject(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID format"})
		return
	}
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject ID format"})
		return
	}

	if err := sc.Rel.DeleteSubjectCascade(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted successfully"})
}

package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gangasingh/uniconnect-backend/models"
	"github.com/gangasingh/uniconnect-backend/services"
	"github.com/gangasingh/uniconnect-backend/utils"
)

type ResourceController struct {
	DB    *gorm.DB
	Rel   *services.RelationshipService
	Files services.FileStore
}

func NewResourceController(db *gorm.DB, rel *services.RelationshipService, files services.FileStore) *ResourceController {
	return &ResourceController{DB: db, Rel: rel, Files: files}
}

type CreateResourceInput struct {
	Title string `json:"title" binding:"required"`
	Link  string `json:"link" binding:"required,url"`
}

type UpdateResourceInput struct {
	Title string `json:"title"`
	Link  string `json:"link" binding:"omitempty,url"`
}

// resourceResponse resolves the creator's display name at read time from the
// stable user reference stored on the row.
type resourceResponse struct {
	models.Resource
	CreatedByName string `json:"created_by_name"`
}

func toResourceResponse(r models.Resource) resourceResponse {
	name := strings.TrimSpace(r.CreatedBy.FirstName + " " + r.CreatedBy.LastName)
	r.CreatedBy = models.User{}
	return resourceResponse{Resource: r, CreatedByName: name}
}

func toResourceResponses(resources []models.Resource) []resourceResponse {
	out := make([]resourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, toResourceResponse(r))
	}
	return out
}

// POST /resource/:classId/:subjectId (admin)
// Creates a YouTube link resource under a subject.
func (rc *ResourceController) CreateYtResource(c *gin.Context) {
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

	var input CreateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	if _, err := rc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	resource := models.Resource{
		Title:       input.Title,
		Link:        input.Link,
		Type:        models.ResourceYtLink,
		SubjectID:   subjectID,
		ClassID:     classID,
		CreatedByID: createdBy,
	}
	if err := rc.DB.Create(&resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create resource"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "YouTube resource created and added to subject successfully",
		"resource": resource,
	})
}

// POST /resource/upload/:classId/:subjectId (admin)
// Uploads a document to the file store, then records the resource. The
// upload must succeed before the row is written; failure aborts creation.
func (rc *ResourceController) UploadResourceDocument(c *gin.Context) {
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

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file attached"})
		return
	}
	if file.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".pdf", ".docx", ".txt":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file format"})
		return
	}

	createdBy, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	if _, err := rc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	resourceID := uuid.New()
	publicURL, objectPath, err := rc.Files.Upload(file, resourceID.String())
	if err != nil {
		c.JSON(services.StatusFor(services.ErrExternalService), gin.H{"error": "File upload failed", "details": err.Error()})
		return
	}

	// Text extraction is best-effort; a scanned or broken PDF still gets
	// stored, just without searchable content
	var content string
	if ext == ".pdf" {
		if text, err := utils.ExtractTextFromPDF(file); err == nil {
			content = text
		}
	}

	resource := models.Resource{
		ID:          resourceID,
		Title:       title,
		Link:        publicURL,
		Type:        models.ResourceDocument,
		SubjectID:   subjectID,
		ClassID:     classID,
		CreatedByID: createdBy,
		StoragePath: objectPath,
		Content:     content,
	}
	if err := rc.DB.Create(&resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save resource"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document uploaded and resource created successfully",
		"resource": resource,
	})
}

// GET /resource/:classId/:subjectId
func (rc *ResourceController) GetResources(c *gin.Context) {
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

	if _, err := rc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	var resources []models.Resource
	if err := rc.DB.Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, first_name, last_name")
	}).Where("subject_id = ?", subjectID).Find(&resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch resources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Resources fetched successfully",
		"resources": toResourceResponses(resources),
	})
}

// GET /resource/all
func (rc *ResourceController) GetAllResources(c *gin.Context) {
	var resources []models.Resource
	if err := rc.DB.Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, first_name, last_name")
	}).Order("created_at DESC").Find(&resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch resources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Resources fetched successfully",
		"resources": toResourceResponses(resources),
	})
}

// PUT /resource/:classId/:subjectId/:resourceId (admin)
func (rc *ResourceController) UpdateResource(c *gin.Context) {
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
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID format"})
		return
	}

	var input UpdateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := rc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	resource, err := rc.Rel.VerifyResourceBelongsToSubject(c.Request.Context(), subjectID, resourceID)
	if err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		resource.Title = title
	}
	if link := strings.TrimSpace(input.Link); link != "" {
		resource.Link = link
	}

	if err := rc.DB.Save(resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update resource"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "The resource has been updated successfully",
		"resource": resource,
	})
}

// DELETE /resource/:classId/:subjectId/:resourceId (admin)
func (rc *ResourceController) DeleteResource(c *gin.Context) {
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
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID format"})
		return
	}

	if _, err := rc.Rel.VerifySubjectBelongsToClass(c.Request.Context(), classID, subjectID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if err := rc.Rel.DeleteResourceCascade(c.Request.Context(), resourceID); err != nil {
		c.JSON(services.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The resource has been deleted successfully"})
}

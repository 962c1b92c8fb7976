package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceType string

const (
	ResourceDocument ResourceType = "Document"
	ResourceYtLink   ResourceType = "Yt-Link"
)

type Resource struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Link        string       `gorm:"type:text;not null" json:"link"`
	Type        ResourceType `gorm:"type:varchar(20);not null" json:"type"`
	SubjectID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"subject_id"`
	ClassID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"class_id"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   User         `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	StoragePath string       `gorm:"type:text" json:"storage_path,omitempty"` // object path for uploaded documents
	Content     string       `gorm:"type:text" json:"-"`                      // extracted text for PDF documents
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

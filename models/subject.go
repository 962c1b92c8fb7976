package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subject struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	SubjectTeacher string    `gorm:"size:150;not null" json:"subject_teacher"`
	Slug           string    `gorm:"size:255;index" json:"slug"`
	ClassID        uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Resources []Resource `gorm:"foreignKey:SubjectID" json:"resources,omitempty"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

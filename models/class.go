package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class groups students by their (courseName, section, semester) triple.
// The composite unique index is what keeps concurrent find-or-create calls
// from producing two classes for the same triple.
type Class struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseName string    `gorm:"size:20;not null;uniqueIndex:idx_class_triple" json:"course_name"`
	Section    string    `gorm:"size:5;not null;uniqueIndex:idx_class_triple" json:"section"`
	Semester   string    `gorm:"size:2;not null;uniqueIndex:idx_class_triple" json:"semester"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Students []User    `gorm:"foreignKey:ClassID" json:"students,omitempty"`
	Subjects []Subject `gorm:"foreignKey:ClassID" json:"subjects,omitempty"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

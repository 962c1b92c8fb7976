package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin" // content managers (subjects, resources)
	RoleUser  UserRole = "user"  // students
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  string     `gorm:"size:50;not null" json:"first_name"`
	LastName   string     `gorm:"size:50;not null" json:"last_name"`
	Email      string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password   string     `gorm:"type:text;not null" json:"-"`
	Role       UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CourseName string     `gorm:"size:20;not null" json:"course_name"` // Btech | Mtech
	Section    string     `gorm:"size:5;not null" json:"section"`      // A | B | C | D | CE
	Semester   string     `gorm:"size:2;not null" json:"semester"`     // 1..8
	RollNumber string     `gorm:"size:50;uniqueIndex;not null" json:"roll_number"`
	ClassID    *uuid.UUID `gorm:"type:uuid" json:"class_id"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

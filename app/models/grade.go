package models

import "time"

// Grade represents a grade level, e.g. Grade 1, Grade 8
type Grade struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Students    []*Student `json:"students,omitempty" gorm:"foreignKey:CurrentGradeID;references:ID"`
}

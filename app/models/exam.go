package models

import "time"

// Exam represents one exam sitting, e.g. Semester 1 Exam, CAT 1
type Exam struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name           string        `json:"name" gorm:"not null" validate:"required"`
	AcademicYearID string        `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SemesterID     *string       `json:"semester_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	MaxMarks       int           `json:"max_marks" gorm:"default:100" validate:"gt=0"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
	Semester       *Semester     `json:"semester,omitempty" gorm:"foreignKey:SemesterID;references:ID"`
}

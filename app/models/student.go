package models

import "time"

// Student represents a registered student
type Student struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentNumber  string     `json:"student_number" gorm:"uniqueIndex;not null" validate:"required"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	ContactInfo    string     `json:"contact_info,omitempty"`
	CurrentGradeID *string    `json:"current_grade_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	CurrentGrade   *Grade     `json:"current_grade,omitempty" gorm:"foreignKey:CurrentGradeID;references:ID"`
}

// Enrollment links a student to a grade for one academic year
type Enrollment struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID string        `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	GradeID        string        `json:"grade_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	Student        *Student      `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
	Grade          *Grade        `json:"grade,omitempty" gorm:"foreignKey:GradeID;references:ID"`
}

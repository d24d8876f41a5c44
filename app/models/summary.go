package models

import "time"

// SemesterResult is the computed summary for a student in one semester.
// It is derived data: rows exist only as the output of a computation run
// and are fully replaced on recomputation.
type SemesterResult struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID string    `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SemesterID     string    `json:"semester_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TotalMarks     float64   `json:"total_marks" gorm:"not null;type:decimal(8,2)"`
	AverageScore   float64   `json:"average_score" gorm:"not null;type:decimal(6,2)"`
	Rank           int       `json:"rank" gorm:"not null"`
	ComputedAt     time.Time `json:"computed_at" gorm:"autoCreateTime"`
	Student        *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// YearlyResult is the computed summary for a student across a whole
// academic year. Always recomputed from raw exam results, never composed
// from semester summaries, so students with uneven semester coverage are
// not misweighted.
type YearlyResult struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID string    `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TotalMarks     float64   `json:"total_marks" gorm:"not null;type:decimal(8,2)"`
	AverageScore   float64   `json:"average_score" gorm:"not null;type:decimal(6,2)"`
	Rank           int       `json:"rank" gorm:"not null"`
	ComputedAt     time.Time `json:"computed_at" gorm:"autoCreateTime"`
	Student        *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

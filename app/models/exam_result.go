package models

import "time"

// ExamResult stores a student's marks for one subject in one exam.
// Re-entering marks for the same (student, exam, subject) overwrites
// the prior value.
type ExamResult struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExamID    string    `json:"exam_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID string    `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Marks     float64   `json:"marks" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Student   *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Exam      *Exam     `json:"exam,omitempty" gorm:"foreignKey:ExamID;references:ID"`
	Subject   *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

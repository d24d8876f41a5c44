package models

import "time"

// Semester represents one semester within an academic year
type Semester struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AcademicYearID string        `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name           string        `json:"name" gorm:"not null" validate:"required"`
	StartDate      CustomDate    `json:"start_date" gorm:"not null;type:date"`
	EndDate        CustomDate    `json:"end_date" gorm:"not null;type:date"`
	IsCurrent      bool          `json:"is_current" gorm:"default:false"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
}

// IsCurrentByDate checks if the semester is current based on today's date
func (s *Semester) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(s.StartDate.Time) && now.Before(s.EndDate.Time)
}

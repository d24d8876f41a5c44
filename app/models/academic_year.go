package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate allows parsing dates in YYYY-MM-DD format
type CustomDate struct {
	time.Time
}

// UnmarshalJSON parses dates in YYYY-MM-DD format
func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	// Handle null or empty
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}

	// Remove quotes
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}

	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}

	if t, ok := value.(time.Time); ok {
		cd.Time = t
		return nil
	}

	return fmt.Errorf("cannot scan %T into CustomDate", value)
}

// Value implements the Valuer interface for database writing
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// AcademicYear represents one school year, e.g. 2023/2024
type AcademicYear struct {
	ID        string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string      `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate CustomDate  `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate   CustomDate  `json:"end_date" gorm:"not null;type:date" validate:"required"`
	IsCurrent bool        `json:"is_current" gorm:"default:false;index"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Semesters []*Semester `json:"semesters,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
}

// IsCurrentByDate checks if the academic year is current based on today's date
func (ay *AcademicYear) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(ay.StartDate.Time) && now.Before(ay.EndDate.Time)
}

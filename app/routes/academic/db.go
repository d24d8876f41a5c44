package academic

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAllAcademicYears fetches all academic years, newest first
func GetAllAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch academic years: %w", err)
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		err := rows.Scan(&year.ID, &year.Name, &year.StartDate, &year.EndDate,
			&year.IsCurrent, &year.CreatedAt, &year.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan academic year: %w", err)
		}
		years = append(years, &year)
	}

	return years, nil
}

// GetAcademicYearByID fetches a single academic year
func GetAcademicYearByID(db *sql.DB, yearID string) (*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years WHERE id = $1`

	var year models.AcademicYear
	err := db.QueryRow(query, yearID).Scan(&year.ID, &year.Name, &year.StartDate,
		&year.EndDate, &year.IsCurrent, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch academic year: %w", err)
	}

	return &year, nil
}

// CreateAcademicYear inserts a new academic year
func CreateAcademicYear(db *sql.DB, year *models.AcademicYear) error {
	query := `INSERT INTO academic_years (name, start_date, end_date, is_current)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, year.Name, year.StartDate, year.EndDate, year.IsCurrent).
		Scan(&year.ID, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create academic year: %w", err)
	}

	return nil
}

// UpdateAcademicYear updates an existing academic year
func UpdateAcademicYear(db *sql.DB, year *models.AcademicYear) error {
	query := `UPDATE academic_years
			  SET name = $1, start_date = $2, end_date = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING updated_at`

	err := db.QueryRow(query, year.Name, year.StartDate, year.EndDate, year.ID).Scan(&year.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update academic year: %w", err)
	}

	return nil
}

// DeleteAcademicYear removes an academic year
func DeleteAcademicYear(db *sql.DB, yearID string) error {
	result, err := db.Exec(`DELETE FROM academic_years WHERE id = $1`, yearID)
	if err != nil {
		return fmt.Errorf("failed to delete academic year: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("academic year not found")
	}

	return nil
}

// SetCurrentAcademicYear marks one academic year as current and clears the
// flag on all others in one transaction
func SetCurrentAcademicYear(db *sql.DB, yearID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_years SET is_current = false WHERE is_current = true`); err != nil {
		return fmt.Errorf("failed to clear current academic year: %w", err)
	}

	result, err := tx.Exec(`UPDATE academic_years SET is_current = true WHERE id = $1`, yearID)
	if err != nil {
		return fmt.Errorf("failed to set current academic year: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("academic year not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// GetAllSemesters fetches all semesters with their academic year names
func GetAllSemesters(db *sql.DB) ([]*models.Semester, error) {
	query := `
		SELECT s.id, s.academic_year_id, s.name, s.start_date, s.end_date, s.is_current,
			   s.created_at, s.updated_at, ay.name
		FROM semesters s
		JOIN academic_years ay ON s.academic_year_id = ay.id
		ORDER BY ay.start_date DESC, s.start_date
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		var year models.AcademicYear
		err := rows.Scan(&semester.ID, &semester.AcademicYearID, &semester.Name,
			&semester.StartDate, &semester.EndDate, &semester.IsCurrent,
			&semester.CreatedAt, &semester.UpdatedAt, &year.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester: %w", err)
		}
		year.ID = semester.AcademicYearID
		semester.AcademicYear = &year
		semesters = append(semesters, &semester)
	}

	return semesters, nil
}

// GetSemesterByID fetches a single semester
func GetSemesterByID(db *sql.DB, semesterID string) (*models.Semester, error) {
	query := `SELECT id, academic_year_id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM semesters WHERE id = $1`

	var semester models.Semester
	err := db.QueryRow(query, semesterID).Scan(&semester.ID, &semester.AcademicYearID,
		&semester.Name, &semester.StartDate, &semester.EndDate, &semester.IsCurrent,
		&semester.CreatedAt, &semester.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester: %w", err)
	}

	return &semester, nil
}

// GetSemestersByAcademicYear fetches the semesters of one academic year
func GetSemestersByAcademicYear(db *sql.DB, yearID string) ([]*models.Semester, error) {
	query := `SELECT id, academic_year_id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM semesters WHERE academic_year_id = $1 ORDER BY start_date`

	rows, err := db.Query(query, yearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		err := rows.Scan(&semester.ID, &semester.AcademicYearID, &semester.Name,
			&semester.StartDate, &semester.EndDate, &semester.IsCurrent,
			&semester.CreatedAt, &semester.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester: %w", err)
		}
		semesters = append(semesters, &semester)
	}

	return semesters, nil
}

// CreateSemester inserts a new semester
func CreateSemester(db *sql.DB, semester *models.Semester) error {
	query := `INSERT INTO semesters (academic_year_id, name, start_date, end_date, is_current)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, semester.AcademicYearID, semester.Name,
		semester.StartDate, semester.EndDate, semester.IsCurrent).
		Scan(&semester.ID, &semester.CreatedAt, &semester.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create semester: %w", err)
	}

	return nil
}

// UpdateSemester updates an existing semester
func UpdateSemester(db *sql.DB, semester *models.Semester) error {
	query := `UPDATE semesters
			  SET name = $1, start_date = $2, end_date = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING academic_year_id, updated_at`

	err := db.QueryRow(query, semester.Name, semester.StartDate, semester.EndDate, semester.ID).
		Scan(&semester.AcademicYearID, &semester.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update semester: %w", err)
	}

	return nil
}

// DeleteSemester removes a semester
func DeleteSemester(db *sql.DB, semesterID string) error {
	result, err := db.Exec(`DELETE FROM semesters WHERE id = $1`, semesterID)
	if err != nil {
		return fmt.Errorf("failed to delete semester: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("semester not found")
	}

	return nil
}

// SetCurrentSemester marks one semester as current within its academic year
func SetCurrentSemester(db *sql.DB, semesterID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var yearID string
	err = tx.QueryRow(`SELECT academic_year_id FROM semesters WHERE id = $1`, semesterID).Scan(&yearID)
	if err != nil {
		return fmt.Errorf("failed to look up semester: %w", err)
	}

	if _, err := tx.Exec(`UPDATE semesters SET is_current = false WHERE academic_year_id = $1`, yearID); err != nil {
		return fmt.Errorf("failed to clear current semester: %w", err)
	}

	if _, err := tx.Exec(`UPDATE semesters SET is_current = true WHERE id = $1`, semesterID); err != nil {
		return fmt.Errorf("failed to set current semester: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

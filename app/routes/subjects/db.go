package subjects

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAllSubjects fetches all subjects ordered by name
func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM subjects ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Description, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}

	return subjects, nil
}

// SearchSubjects fetches subjects whose name matches the query
func SearchSubjects(db *sql.DB, search string) ([]*models.Subject, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM subjects WHERE name ILIKE $1 ORDER BY name`

	rows, err := db.Query(query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Description, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}

	return subjects, nil
}

// GetSubjectByID fetches a single subject
func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM subjects WHERE id = $1`

	var subject models.Subject
	err := db.QueryRow(query, subjectID).Scan(&subject.ID, &subject.Name, &subject.Description, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject: %w", err)
	}

	return &subject, nil
}

// CreateSubject inserts a new subject
func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (name, description)
			  VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, subject.Name, subject.Description).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}

	return nil
}

// UpdateSubject updates an existing subject
func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects
			  SET name = $1, description = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING updated_at`

	err := db.QueryRow(query, subject.Name, subject.Description, subject.ID).Scan(&subject.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
	}

	return nil
}

// DeleteSubject removes a subject
func DeleteSubject(db *sql.DB, subjectID string) error {
	result, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("subject not found")
	}

	return nil
}

package grades

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAllGrades fetches all grade levels ordered by name
func GetAllGrades(db *sql.DB) ([]*models.Grade, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM grades ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(&grade.ID, &grade.Name, &grade.Description, &grade.CreatedAt, &grade.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, &grade)
	}

	return grades, nil
}

// GetGradeByID fetches a single grade level
func GetGradeByID(db *sql.DB, gradeID string) (*models.Grade, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at
			  FROM grades WHERE id = $1`

	var grade models.Grade
	err := db.QueryRow(query, gradeID).Scan(&grade.ID, &grade.Name, &grade.Description, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade: %w", err)
	}

	return &grade, nil
}

// CreateGrade inserts a new grade level
func CreateGrade(db *sql.DB, grade *models.Grade) error {
	query := `INSERT INTO grades (name, description)
			  VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, grade.Name, grade.Description).
		Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create grade: %w", err)
	}

	return nil
}

// UpdateGrade updates an existing grade level
func UpdateGrade(db *sql.DB, grade *models.Grade) error {
	query := `UPDATE grades
			  SET name = $1, description = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING updated_at`

	err := db.QueryRow(query, grade.Name, grade.Description, grade.ID).Scan(&grade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	return nil
}

// DeleteGrade removes a grade level
func DeleteGrade(db *sql.DB, gradeID string) error {
	result, err := db.Exec(`DELETE FROM grades WHERE id = $1`, gradeID)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("grade not found")
	}

	return nil
}

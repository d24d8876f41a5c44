package exams

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAllExams fetches exams, optionally filtered by academic year and
// semester, with year/semester names attached
func GetAllExams(db *sql.DB, academicYearID, semesterID string) ([]*models.Exam, error) {
	query := `
		SELECT e.id, e.name, e.academic_year_id, e.semester_id, e.max_marks,
			   e.created_at, e.updated_at, ay.name, s.name
		FROM exams e
		JOIN academic_years ay ON e.academic_year_id = ay.id
		LEFT JOIN semesters s ON e.semester_id = s.id
		WHERE 1=1
	`
	args := []interface{}{}

	if academicYearID != "" {
		args = append(args, academicYearID)
		query += fmt.Sprintf(" AND e.academic_year_id = $%d", len(args))
	}
	if semesterID != "" {
		args = append(args, semesterID)
		query += fmt.Sprintf(" AND e.semester_id = $%d", len(args))
	}

	query += " ORDER BY ay.start_date DESC, e.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		var exam models.Exam
		var yearName string
		var semesterName sql.NullString

		err := rows.Scan(&exam.ID, &exam.Name, &exam.AcademicYearID, &exam.SemesterID,
			&exam.MaxMarks, &exam.CreatedAt, &exam.UpdatedAt, &yearName, &semesterName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}

		exam.AcademicYear = &models.AcademicYear{ID: exam.AcademicYearID, Name: yearName}
		if exam.SemesterID != nil && semesterName.Valid {
			exam.Semester = &models.Semester{ID: *exam.SemesterID, Name: semesterName.String}
		}
		exams = append(exams, &exam)
	}

	return exams, nil
}

// GetExamByID fetches a single exam
func GetExamByID(db *sql.DB, examID string) (*models.Exam, error) {
	query := `SELECT id, name, academic_year_id, semester_id, max_marks, created_at, updated_at
			  FROM exams WHERE id = $1`

	var exam models.Exam
	err := db.QueryRow(query, examID).Scan(&exam.ID, &exam.Name, &exam.AcademicYearID,
		&exam.SemesterID, &exam.MaxMarks, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam: %w", err)
	}

	return &exam, nil
}

// CreateExam inserts a new exam. When a semester is given it must belong
// to the exam's academic year.
func CreateExam(db *sql.DB, exam *models.Exam) error {
	if exam.SemesterID != nil {
		var yearID string
		err := db.QueryRow(`SELECT academic_year_id FROM semesters WHERE id = $1`, *exam.SemesterID).Scan(&yearID)
		if err != nil {
			return fmt.Errorf("failed to look up semester: %w", err)
		}
		if yearID != exam.AcademicYearID {
			return fmt.Errorf("semester does not belong to the given academic year")
		}
	}

	query := `INSERT INTO exams (name, academic_year_id, semester_id, max_marks)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, exam.Name, exam.AcademicYearID, exam.SemesterID, exam.MaxMarks).
		Scan(&exam.ID, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}

	return nil
}

// UpdateExam updates an existing exam's name and max marks
func UpdateExam(db *sql.DB, exam *models.Exam) error {
	query := `UPDATE exams
			  SET name = $1, max_marks = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING academic_year_id, semester_id, updated_at`

	err := db.QueryRow(query, exam.Name, exam.MaxMarks, exam.ID).
		Scan(&exam.AcademicYearID, &exam.SemesterID, &exam.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}

	return nil
}

// DeleteExam removes an exam
func DeleteExam(db *sql.DB, examID string) error {
	result, err := db.Exec(`DELETE FROM exams WHERE id = $1`, examID)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("exam not found")
	}

	return nil
}

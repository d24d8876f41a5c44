package results

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetResultsByExamID fetches all results for a specific exam with student
// and subject details attached
func GetResultsByExamID(db *sql.DB, examID string) ([]*models.ExamResult, error) {
	query := `
		SELECT r.id, r.student_id, r.exam_id, r.subject_id, r.marks, r.created_at, r.updated_at,
			   s.student_number, s.name, sub.name
		FROM exam_results r
		JOIN students s ON r.student_id = s.id
		JOIN subjects sub ON r.subject_id = sub.id
		WHERE r.exam_id = $1
		ORDER BY s.name, sub.name
	`

	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		var result models.ExamResult
		var student models.Student
		var subject models.Subject

		err := rows.Scan(&result.ID, &result.StudentID, &result.ExamID, &result.SubjectID,
			&result.Marks, &result.CreatedAt, &result.UpdatedAt,
			&student.StudentNumber, &student.Name, &subject.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		student.ID = result.StudentID
		subject.ID = result.SubjectID
		result.Student = &student
		result.Subject = &subject
		results = append(results, &result)
	}

	return results, nil
}

// GetResultsByStudent fetches all of a student's exam results, optionally
// limited to one academic year
func GetResultsByStudent(db *sql.DB, studentID, academicYearID string) ([]*models.ExamResult, error) {
	query := `
		SELECT r.id, r.student_id, r.exam_id, r.subject_id, r.marks, r.created_at, r.updated_at,
			   e.name, e.max_marks, sub.name
		FROM exam_results r
		JOIN exams e ON r.exam_id = e.id
		JOIN subjects sub ON r.subject_id = sub.id
		WHERE r.student_id = $1
	`
	args := []interface{}{studentID}

	if academicYearID != "" {
		args = append(args, academicYearID)
		query += fmt.Sprintf(" AND e.academic_year_id = $%d", len(args))
	}

	query += " ORDER BY e.name, sub.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student results: %w", err)
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		var result models.ExamResult
		var exam models.Exam
		var subject models.Subject

		err := rows.Scan(&result.ID, &result.StudentID, &result.ExamID, &result.SubjectID,
			&result.Marks, &result.CreatedAt, &result.UpdatedAt,
			&exam.Name, &exam.MaxMarks, &subject.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		exam.ID = result.ExamID
		subject.ID = result.SubjectID
		result.Exam = &exam
		result.Subject = &subject
		results = append(results, &result)
	}

	return results, nil
}

// UpsertResult inserts a result or overwrites the prior marks for the same
// (student, exam, subject)
func UpsertResult(db *sql.DB, result *models.ExamResult) error {
	query := `
		INSERT INTO exam_results (student_id, exam_id, subject_id, marks)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, exam_id, subject_id)
		DO UPDATE SET marks = EXCLUDED.marks, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(query, result.StudentID, result.ExamID, result.SubjectID, result.Marks).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// BatchUpsertResults saves multiple results at once in one transaction
func BatchUpsertResults(db *sql.DB, results []*models.ExamResult) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsertStmt, err := tx.Prepare(`
		INSERT INTO exam_results (student_id, exam_id, subject_id, marks)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, exam_id, subject_id)
		DO UPDATE SET marks = EXCLUDED.marks, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	defer upsertStmt.Close()

	for _, result := range results {
		err := upsertStmt.QueryRow(result.StudentID, result.ExamID, result.SubjectID, result.Marks).
			Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to save result for student %s: %w", result.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}

	return nil
}

// DeleteResult removes a result
func DeleteResult(db *sql.DB, resultID string) error {
	result, err := db.Exec(`DELETE FROM exam_results WHERE id = $1`, resultID)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("result not found")
	}

	return nil
}

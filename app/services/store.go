package services

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// SQLStore backs the aggregation engine with the shared PostgreSQL
// database. It implements both ResultSource and SummarySink.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// checkSemesterScope verifies that the semester belongs to the academic
// year before any result rows are fetched.
func (s *SQLStore) checkSemesterScope(academicYearID, semesterID string) error {
	var yearID string
	query := `SELECT academic_year_id FROM semesters WHERE id = $1`

	err := s.DB.QueryRow(query, semesterID).Scan(&yearID)
	if err == sql.ErrNoRows {
		return ErrScopeMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to look up semester: %w", err)
	}

	if yearID != academicYearID {
		return ErrScopeMismatch
	}
	return nil
}

// ResultsForSemester returns all exam results whose exam belongs to the
// given (academic year, semester) pair
func (s *SQLStore) ResultsForSemester(academicYearID, semesterID string) ([]*models.ExamResult, error) {
	if err := s.checkSemesterScope(academicYearID, semesterID); err != nil {
		return nil, err
	}

	query := `
		SELECT er.id, er.student_id, er.exam_id, er.subject_id, er.marks
		FROM exam_results er
		JOIN exams e ON er.exam_id = e.id
		WHERE e.academic_year_id = $1 AND e.semester_id = $2
		ORDER BY er.student_id, er.exam_id, er.subject_id
	`

	return s.queryResults(query, academicYearID, semesterID)
}

// ResultsForYear returns all exam results whose exam belongs to the given
// academic year, regardless of semester
func (s *SQLStore) ResultsForYear(academicYearID string) ([]*models.ExamResult, error) {
	query := `
		SELECT er.id, er.student_id, er.exam_id, er.subject_id, er.marks
		FROM exam_results er
		JOIN exams e ON er.exam_id = e.id
		WHERE e.academic_year_id = $1
		ORDER BY er.student_id, er.exam_id, er.subject_id
	`

	return s.queryResults(query, academicYearID)
}

func (s *SQLStore) queryResults(query string, args ...interface{}) ([]*models.ExamResult, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam results: %w", err)
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		var r models.ExamResult
		if err := rows.Scan(&r.ID, &r.StudentID, &r.ExamID, &r.SubjectID, &r.Marks); err != nil {
			return nil, fmt.Errorf("failed to scan exam result: %w", err)
		}
		results = append(results, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exam results: %w", err)
	}

	return results, nil
}

// ReplaceSemesterResults deletes all semester summary rows for the scope
// and inserts the new set in one transaction. A reader never observes the
// scope half-written; on failure the prior rows survive the rollback.
func (s *SQLStore) ReplaceSemesterResults(academicYearID, semesterID string, rows []*models.SemesterResult) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM semester_results WHERE academic_year_id = $1 AND semester_id = $2`,
		academicYearID, semesterID)
	if err != nil {
		return fmt.Errorf("failed to clear semester results: %w", err)
	}

	insertStmt, err := tx.Prepare(`
		INSERT INTO semester_results (student_id, academic_year_id, semester_id, total_marks, average_score, rank)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, computed_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer insertStmt.Close()

	for _, row := range rows {
		err := insertStmt.QueryRow(
			row.StudentID,
			row.AcademicYearID,
			row.SemesterID,
			row.TotalMarks,
			row.AverageScore,
			row.Rank,
		).Scan(&row.ID, &row.ComputedAt)

		if err != nil {
			return fmt.Errorf("failed to insert semester result for student %s: %w", row.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit semester results: %w", err)
	}

	return nil
}

// ReplaceYearlyResults deletes all yearly summary rows for the academic
// year and inserts the new set in one transaction
func (s *SQLStore) ReplaceYearlyResults(academicYearID string, rows []*models.YearlyResult) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM yearly_results WHERE academic_year_id = $1`, academicYearID)
	if err != nil {
		return fmt.Errorf("failed to clear yearly results: %w", err)
	}

	insertStmt, err := tx.Prepare(`
		INSERT INTO yearly_results (student_id, academic_year_id, total_marks, average_score, rank)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, computed_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer insertStmt.Close()

	for _, row := range rows {
		err := insertStmt.QueryRow(
			row.StudentID,
			row.AcademicYearID,
			row.TotalMarks,
			row.AverageScore,
			row.Rank,
		).Scan(&row.ID, &row.ComputedAt)

		if err != nil {
			return fmt.Errorf("failed to insert yearly result for student %s: %w", row.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit yearly results: %w", err)
	}

	return nil
}

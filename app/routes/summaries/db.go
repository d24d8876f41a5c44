package summaries

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetSemesterResultsForScope fetches the computed semester standings for a
// scope, best rank first
func GetSemesterResultsForScope(db *sql.DB, academicYearID, semesterID string) ([]*models.SemesterResult, error) {
	query := `
		SELECT sr.id, sr.student_id, sr.academic_year_id, sr.semester_id,
			   sr.total_marks, sr.average_score, sr.rank, sr.computed_at,
			   s.student_number, s.name
		FROM semester_results sr
		JOIN students s ON sr.student_id = s.id
		WHERE sr.academic_year_id = $1 AND sr.semester_id = $2
		ORDER BY sr.rank, s.name
	`

	rows, err := db.Query(query, academicYearID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester results: %w", err)
	}
	defer rows.Close()

	var results []*models.SemesterResult
	for rows.Next() {
		var result models.SemesterResult
		var student models.Student

		err := rows.Scan(&result.ID, &result.StudentID, &result.AcademicYearID, &result.SemesterID,
			&result.TotalMarks, &result.AverageScore, &result.Rank, &result.ComputedAt,
			&student.StudentNumber, &student.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester result: %w", err)
		}

		student.ID = result.StudentID
		result.Student = &student
		results = append(results, &result)
	}

	return results, nil
}

// GetYearlyResultsForScope fetches the computed yearly standings for an
// academic year, best rank first
func GetYearlyResultsForScope(db *sql.DB, academicYearID string) ([]*models.YearlyResult, error) {
	query := `
		SELECT yr.id, yr.student_id, yr.academic_year_id,
			   yr.total_marks, yr.average_score, yr.rank, yr.computed_at,
			   s.student_number, s.name
		FROM yearly_results yr
		JOIN students s ON yr.student_id = s.id
		WHERE yr.academic_year_id = $1
		ORDER BY yr.rank, s.name
	`

	rows, err := db.Query(query, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yearly results: %w", err)
	}
	defer rows.Close()

	var results []*models.YearlyResult
	for rows.Next() {
		var result models.YearlyResult
		var student models.Student

		err := rows.Scan(&result.ID, &result.StudentID, &result.AcademicYearID,
			&result.TotalMarks, &result.AverageScore, &result.Rank, &result.ComputedAt,
			&student.StudentNumber, &student.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan yearly result: %w", err)
		}

		student.ID = result.StudentID
		result.Student = &student
		results = append(results, &result)
	}

	return results, nil
}

// GetSummariesForStudent fetches all of one student's semester and yearly
// summaries, newest year first
func GetSummariesForStudent(db *sql.DB, studentID string) ([]*models.SemesterResult, []*models.YearlyResult, error) {
	semesterQuery := `
		SELECT sr.id, sr.student_id, sr.academic_year_id, sr.semester_id,
			   sr.total_marks, sr.average_score, sr.rank, sr.computed_at
		FROM semester_results sr
		JOIN academic_years ay ON sr.academic_year_id = ay.id
		JOIN semesters sem ON sr.semester_id = sem.id
		WHERE sr.student_id = $1
		ORDER BY ay.start_date DESC, sem.start_date
	`

	rows, err := db.Query(semesterQuery, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch semester results: %w", err)
	}
	defer rows.Close()

	var semesterResults []*models.SemesterResult
	for rows.Next() {
		var result models.SemesterResult
		err := rows.Scan(&result.ID, &result.StudentID, &result.AcademicYearID, &result.SemesterID,
			&result.TotalMarks, &result.AverageScore, &result.Rank, &result.ComputedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan semester result: %w", err)
		}
		semesterResults = append(semesterResults, &result)
	}

	yearlyQuery := `
		SELECT yr.id, yr.student_id, yr.academic_year_id,
			   yr.total_marks, yr.average_score, yr.rank, yr.computed_at
		FROM yearly_results yr
		JOIN academic_years ay ON yr.academic_year_id = ay.id
		WHERE yr.student_id = $1
		ORDER BY ay.start_date DESC
	`

	yearlyRows, err := db.Query(yearlyQuery, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch yearly results: %w", err)
	}
	defer yearlyRows.Close()

	var yearlyResults []*models.YearlyResult
	for yearlyRows.Next() {
		var result models.YearlyResult
		err := yearlyRows.Scan(&result.ID, &result.StudentID, &result.AcademicYearID,
			&result.TotalMarks, &result.AverageScore, &result.Rank, &result.ComputedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan yearly result: %w", err)
		}
		yearlyResults = append(yearlyResults, &result)
	}

	return semesterResults, yearlyResults, nil
}

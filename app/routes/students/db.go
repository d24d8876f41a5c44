package students

import (
	"database/sql"
	"fmt"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAllStudents fetches students with their current grade, optionally
// filtered by a search string or grade
func GetAllStudents(db *sql.DB, search, gradeID string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_number, s.name, COALESCE(s.contact_info, ''), s.current_grade_id,
			   s.created_at, s.updated_at, g.id, g.name
		FROM students s
		LEFT JOIN grades g ON s.current_grade_id = g.id
		WHERE 1=1
	`
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.student_number ILIKE $%d)", len(args), len(args))
	}
	if gradeID != "" {
		args = append(args, gradeID)
		query += fmt.Sprintf(" AND s.current_grade_id = $%d", len(args))
	}

	query += " ORDER BY s.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var gID, gName sql.NullString

		err := rows.Scan(&student.ID, &student.StudentNumber, &student.Name, &student.ContactInfo,
			&student.CurrentGradeID, &student.CreatedAt, &student.UpdatedAt, &gID, &gName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}

		if gID.Valid {
			student.CurrentGrade = &models.Grade{ID: gID.String, Name: gName.String}
		}
		students = append(students, &student)
	}

	return students, nil
}

// GetStudentByID fetches a single student
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT id, student_number, name, COALESCE(contact_info, ''), current_grade_id, created_at, updated_at
			  FROM students WHERE id = $1`

	var student models.Student
	err := db.QueryRow(query, studentID).Scan(&student.ID, &student.StudentNumber, &student.Name,
		&student.ContactInfo, &student.CurrentGradeID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	return &student, nil
}

// CreateStudent inserts a new student
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (student_number, name, contact_info, current_grade_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, student.StudentNumber, student.Name, student.ContactInfo, student.CurrentGradeID).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// UpdateStudent updates an existing student
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET student_number = $1, name = $2, contact_info = $3, current_grade_id = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING updated_at`

	err := db.QueryRow(query, student.StudentNumber, student.Name, student.ContactInfo,
		student.CurrentGradeID, student.ID).Scan(&student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

// DeleteStudent removes a student
func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// GetEnrollmentsByStudent fetches a student's enrollments, newest year first
func GetEnrollmentsByStudent(db *sql.DB, studentID string) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.academic_year_id, e.grade_id, e.created_at, ay.name, g.name
		FROM enrollments e
		JOIN academic_years ay ON e.academic_year_id = ay.id
		JOIN grades g ON e.grade_id = g.id
		WHERE e.student_id = $1
		ORDER BY ay.start_date DESC
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var yearName, gradeName string

		err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.AcademicYearID,
			&enrollment.GradeID, &enrollment.CreatedAt, &yearName, &gradeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}

		enrollment.AcademicYear = &models.AcademicYear{ID: enrollment.AcademicYearID, Name: yearName}
		enrollment.Grade = &models.Grade{ID: enrollment.GradeID, Name: gradeName}
		enrollments = append(enrollments, &enrollment)
	}

	return enrollments, nil
}

// CreateEnrollment enrolls a student in a grade for an academic year. A
// student can only be enrolled once per academic year; re-enrolling moves
// them to the given grade.
func CreateEnrollment(db *sql.DB, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, academic_year_id, grade_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, academic_year_id)
		DO UPDATE SET grade_id = EXCLUDED.grade_id
		RETURNING id, created_at
	`

	err := db.QueryRow(query, enrollment.StudentID, enrollment.AcademicYearID, enrollment.GradeID).
		Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}

// DeleteEnrollment removes an enrollment
func DeleteEnrollment(db *sql.DB, enrollmentID string) error {
	result, err := db.Exec(`DELETE FROM enrollments WHERE id = $1`, enrollmentID)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("enrollment not found")
	}

	return nil
}

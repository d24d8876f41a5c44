package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

var validate = validator.New()

// GetStudentsAPI returns students, optionally filtered by search or grade
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := GetAllStudents(db, c.Query("q"), c.Query("grade_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// GetStudentAPI returns one student with their enrollment history
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := GetStudentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	enrollments, err := GetEnrollmentsByStudent(db, student.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	return c.JSON(fiber.Map{
		"student":     student,
		"enrollments": enrollments,
	})
}

// CreateStudentAPI registers a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		StudentNumber  string  `json:"student_number" validate:"required"`
		Name           string  `json:"name" validate:"required"`
		ContactInfo    string  `json:"contact_info"`
		CurrentGradeID *string `json:"current_grade_id" validate:"omitempty,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	student := &models.Student{
		StudentNumber:  req.StudentNumber,
		Name:           req.Name,
		ContactInfo:    req.ContactInfo,
		CurrentGradeID: req.CurrentGradeID,
	}

	if err := CreateStudent(db, student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudentAPI updates an existing student
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student.ID = c.Params("id")
	if student.StudentNumber == "" || student.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_number and name are required"})
	}

	if err := UpdateStudent(db, &student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student: " + err.Error()})
	}

	return c.JSON(student)
}

// DeleteStudentAPI removes a student
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteStudent(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// EnrollStudentAPI enrolls a student in a grade for an academic year
func EnrollStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		AcademicYearID string `json:"academic_year_id" validate:"required,uuid"`
		GradeID        string `json:"grade_id" validate:"required,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	enrollment := &models.Enrollment{
		StudentID:      c.Params("id"),
		AcademicYearID: req.AcademicYearID,
		GradeID:        req.GradeID,
	}

	if err := CreateEnrollment(db, enrollment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll student: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// DeleteEnrollmentAPI removes an enrollment
func DeleteEnrollmentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteEnrollment(db, c.Params("enrollmentId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete enrollment: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Enrollment deleted successfully"})
}

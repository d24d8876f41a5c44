package exams

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

var validate = validator.New()

// GetExamsAPI returns exams, optionally filtered by year and semester
func GetExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	exams, err := GetAllExams(db, c.Query("academic_year_id"), c.Query("semester_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{
		"exams": exams,
		"count": len(exams),
	})
}

// GetExamAPI returns a specific exam
func GetExamAPI(c *fiber.Ctx, db *sql.DB) error {
	exam, err := GetExamByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	return c.JSON(exam)
}

// CreateExamAPI creates a new exam
func CreateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name           string  `json:"name" validate:"required"`
		AcademicYearID string  `json:"academic_year_id" validate:"required,uuid"`
		SemesterID     *string `json:"semester_id" validate:"omitempty,uuid"`
		MaxMarks       int     `json:"max_marks" validate:"omitempty,gt=0"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	if req.MaxMarks == 0 {
		req.MaxMarks = 100
	}

	exam := &models.Exam{
		Name:           req.Name,
		AcademicYearID: req.AcademicYearID,
		SemesterID:     req.SemesterID,
		MaxMarks:       req.MaxMarks,
	}

	if err := CreateExam(db, exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create exam: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(exam)
}

// UpdateExamAPI updates an exam's name and max marks
func UpdateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var exam models.Exam
	if err := c.BodyParser(&exam); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exam.ID = c.Params("id")
	if exam.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := UpdateExam(db, &exam); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update exam: " + err.Error()})
	}

	return c.JSON(exam)
}

// DeleteExamAPI removes an exam
func DeleteExamAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteExam(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete exam: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Exam deleted successfully"})
}

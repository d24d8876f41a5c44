package results

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
	"github.com/Philconrad24/Student-Management-System/app/routes/exams"
)

var validate = validator.New()

// GetResultsByExam returns all results for a specific exam
func GetResultsByExam(c *fiber.Ctx, db *sql.DB) error {
	examID := c.Query("exam_id")
	if examID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "exam_id is required"})
	}

	results, err := GetResultsByExamID(db, examID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// GetStudentResults returns all results for a specific student
func GetStudentResults(c *fiber.Ctx, db *sql.DB) error {
	results, err := GetResultsByStudent(db, c.Params("id"), c.Query("academic_year_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// BatchSaveResults handles batch entry of marks for one exam. Re-entered
// marks overwrite the prior value for the same (student, exam, subject).
func BatchSaveResults(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		ExamID  string `json:"exam_id" validate:"required,uuid"`
		Results []struct {
			StudentID string  `json:"student_id" validate:"required,uuid"`
			SubjectID string  `json:"subject_id" validate:"required,uuid"`
			Marks     float64 `json:"marks" validate:"gte=0"`
		} `json:"results" validate:"required,min=1,dive"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	// Marks may not exceed the exam's maximum
	exam, err := exams.GetExamByID(db, request.ExamID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	var results []*models.ExamResult
	for _, r := range request.Results {
		if r.Marks > float64(exam.MaxMarks) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Marks cannot exceed the exam maximum",
			})
		}

		results = append(results, &models.ExamResult{
			StudentID: r.StudentID,
			ExamID:    request.ExamID,
			SubjectID: r.SubjectID,
			Marks:     r.Marks,
		})
	}

	if err := BatchUpsertResults(db, results); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save results: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Results saved successfully",
		"count":   len(results),
	})
}

// SaveSingleResult saves one mark entry
func SaveSingleResult(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		StudentID string  `json:"student_id" validate:"required,uuid"`
		ExamID    string  `json:"exam_id" validate:"required,uuid"`
		SubjectID string  `json:"subject_id" validate:"required,uuid"`
		Marks     float64 `json:"marks" validate:"gte=0"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	result := &models.ExamResult{
		StudentID: req.StudentID,
		ExamID:    req.ExamID,
		SubjectID: req.SubjectID,
		Marks:     req.Marks,
	}

	if err := UpsertResult(db, result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save result: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// DeleteSingleResult removes one result
func DeleteSingleResult(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteResult(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete result: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Result deleted successfully"})
}

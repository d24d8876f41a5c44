package summaries

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/services"
)

var validate = validator.New()

// ComputeSemesterSummariesAPI recomputes the semester standings for one
// (academic year, semester) scope and returns the new rows
func ComputeSemesterSummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		AcademicYearID string `json:"academic_year_id" validate:"required,uuid"`
		SemesterID     string `json:"semester_id" validate:"required,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	store := services.NewSQLStore(db)
	rows, err := services.ComputeSemesterResults(store, store, req.AcademicYearID, req.SemesterID)
	if err != nil {
		if errors.Is(err, services.ErrScopeMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Semester does not belong to the given academic year"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute semester results: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Semester results computed",
		"results": rows,
		"count":   len(rows),
	})
}

// ComputeYearlySummariesAPI recomputes the yearly standings for one
// academic year and returns the new rows
func ComputeYearlySummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		AcademicYearID string `json:"academic_year_id" validate:"required,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	store := services.NewSQLStore(db)
	rows, err := services.ComputeYearlyResults(store, store, req.AcademicYearID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute yearly results: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Yearly results computed",
		"results": rows,
		"count":   len(rows),
	})
}

// GetSemesterSummariesAPI returns the stored semester standings for a scope
func GetSemesterSummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	academicYearID := c.Query("academic_year_id")
	semesterID := c.Query("semester_id")
	if academicYearID == "" || semesterID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "academic_year_id and semester_id are required"})
	}

	results, err := GetSemesterResultsForScope(db, academicYearID, semesterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch semester results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// GetYearlySummariesAPI returns the stored yearly standings for a year
func GetYearlySummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	academicYearID := c.Query("academic_year_id")
	if academicYearID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "academic_year_id is required"})
	}

	results, err := GetYearlyResultsForScope(db, academicYearID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch yearly results"})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// GetStudentSummariesAPI returns one student's semester and yearly summaries
func GetStudentSummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	semesterResults, yearlyResults, err := GetSummariesForStudent(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student summaries"})
	}

	return c.JSON(fiber.Map{
		"semester_results": semesterResults,
		"yearly_results":   yearlyResults,
	})
}

package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetGradesAPI returns all grade levels
func GetGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	grades, err := GetAllGrades(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

// GetGradeAPI returns a specific grade level
func GetGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	grade, err := GetGradeByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Grade not found"})
	}

	return c.JSON(grade)
}

// CreateGradeAPI creates a new grade level
func CreateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var grade models.Grade
	if err := c.BodyParser(&grade); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if grade.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := CreateGrade(db, &grade); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create grade: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(grade)
}

// UpdateGradeAPI updates an existing grade level
func UpdateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var grade models.Grade
	if err := c.BodyParser(&grade); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	grade.ID = c.Params("id")
	if grade.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := UpdateGrade(db, &grade); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update grade: " + err.Error()})
	}

	return c.JSON(grade)
}

// DeleteGradeAPI removes a grade level
func DeleteGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteGrade(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete grade: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Grade deleted successfully"})
}

package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := c.Query("q", "")

	var subjects []*models.Subject
	var err error

	if search == "" {
		subjects, err = GetAllSubjects(db)
	} else {
		subjects, err = SearchSubjects(db, search)
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func GetSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	subject, err := GetSubjectByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	return c.JSON(subject)
}

func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if subject.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := CreateSubject(db, &subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create subject",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(subject)
}

func UpdateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	subject.ID = c.Params("id")
	if subject.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := UpdateSubject(db, &subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update subject"})
	}

	return c.JSON(subject)
}

func DeleteSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteSubject(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete subject: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

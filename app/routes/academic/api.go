package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// GetAcademicYearsAPI returns all academic years
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := GetAllAcademicYears(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve academic years"})
	}

	return c.JSON(years)
}

// GetAcademicYearAPI returns a specific academic year by ID
func GetAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := GetAcademicYearByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Academic year not found"})
	}

	return c.JSON(year)
}

// CreateAcademicYearAPI creates a new academic year
func CreateAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
	}

	if year.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	// Validate dates
	if year.EndDate.Time.Before(year.StartDate.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := CreateAcademicYear(db, &year); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create academic year: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(year)
}

// UpdateAcademicYearAPI updates an existing academic year
func UpdateAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
	}

	year.ID = c.Params("id")

	if year.EndDate.Time.Before(year.StartDate.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := UpdateAcademicYear(db, &year); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update academic year: " + err.Error()})
	}

	return c.JSON(year)
}

// DeleteAcademicYearAPI removes an academic year
func DeleteAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteAcademicYear(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete academic year: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Academic year deleted successfully"})
}

// SetCurrentAcademicYearAPI marks an academic year as the current one
func SetCurrentAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := SetCurrentAcademicYear(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set current academic year: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Current academic year updated"})
}

// GetSemestersAPI returns all semesters
func GetSemestersAPI(c *fiber.Ctx, db *sql.DB) error {
	semesters, err := GetAllSemesters(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve semesters"})
	}

	return c.JSON(semesters)
}

// GetSemesterAPI returns a specific semester by ID
func GetSemesterAPI(c *fiber.Ctx, db *sql.DB) error {
	semester, err := GetSemesterByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Semester not found"})
	}

	return c.JSON(semester)
}

// GetSemestersByYearAPI returns the semesters of one academic year
func GetSemestersByYearAPI(c *fiber.Ctx, db *sql.DB) error {
	semesters, err := GetSemestersByAcademicYear(db, c.Params("academicYearId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve semesters"})
	}

	return c.JSON(semesters)
}

// CreateSemesterAPI creates a new semester within an academic year
func CreateSemesterAPI(c *fiber.Ctx, db *sql.DB) error {
	var semester models.Semester
	if err := c.BodyParser(&semester); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
	}

	if semester.Name == "" || semester.AcademicYearID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and academic_year_id are required"})
	}

	if semester.EndDate.Time.Before(semester.StartDate.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := CreateSemester(db, &semester); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create semester: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(semester)
}

// UpdateSemesterAPI updates an existing semester
func UpdateSemesterAPI(c *fiber.Ctx, db *sql.DB) error {
	var semester models.Semester
	if err := c.BodyParser(&semester); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
	}

	semester.ID = c.Params("id")

	if semester.EndDate.Time.Before(semester.StartDate.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := UpdateSemester(db, &semester); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update semester: " + err.Error()})
	}

	return c.JSON(semester)
}

// DeleteSemesterAPI removes a semester
func DeleteSemesterAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := DeleteSemester(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete semester: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Semester deleted successfully"})
}

// SetCurrentSemesterAPI marks a semester as the current one within its year
func SetCurrentSemesterAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := SetCurrentSemester(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set current semester: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Current semester updated"})
}

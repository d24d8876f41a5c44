package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupAcademicRoutes registers the academic year and semester routes
func SetupAcademicRoutes(app *fiber.App, db *sql.DB) {
	years := app.Group("/api/academic-years")
	years.Use(auth.AuthMiddleware)
	years.Get("/", func(c *fiber.Ctx) error { return GetAcademicYearsAPI(c, db) })
	years.Get("/:id", func(c *fiber.Ctx) error { return GetAcademicYearAPI(c, db) })
	years.Post("/", func(c *fiber.Ctx) error { return CreateAcademicYearAPI(c, db) })
	years.Put("/:id", func(c *fiber.Ctx) error { return UpdateAcademicYearAPI(c, db) })
	years.Delete("/:id", func(c *fiber.Ctx) error { return DeleteAcademicYearAPI(c, db) })
	years.Put("/:id/set-current", func(c *fiber.Ctx) error { return SetCurrentAcademicYearAPI(c, db) })

	// Semesters by academic year
	years.Get("/:academicYearId/semesters", func(c *fiber.Ctx) error { return GetSemestersByYearAPI(c, db) })

	semesters := app.Group("/api/semesters")
	semesters.Use(auth.AuthMiddleware)
	semesters.Get("/", func(c *fiber.Ctx) error { return GetSemestersAPI(c, db) })
	semesters.Get("/:id", func(c *fiber.Ctx) error { return GetSemesterAPI(c, db) })
	semesters.Post("/", func(c *fiber.Ctx) error { return CreateSemesterAPI(c, db) })
	semesters.Put("/:id", func(c *fiber.Ctx) error { return UpdateSemesterAPI(c, db) })
	semesters.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSemesterAPI(c, db) })
	semesters.Put("/:id/set-current", func(c *fiber.Ctx) error { return SetCurrentSemesterAPI(c, db) })
}

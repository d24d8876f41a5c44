package summaries

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupSummariesRoutes sets up the summary computation and read routes
func SetupSummariesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/summaries")
	api.Use(auth.AuthMiddleware)

	// Computation triggers
	api.Post("/semester", func(c *fiber.Ctx) error { return ComputeSemesterSummariesAPI(c, db) })
	api.Post("/yearly", func(c *fiber.Ctx) error { return ComputeYearlySummariesAPI(c, db) })

	// Reads
	api.Get("/semester", func(c *fiber.Ctx) error { return GetSemesterSummariesAPI(c, db) })
	api.Get("/yearly", func(c *fiber.Ctx) error { return GetYearlySummariesAPI(c, db) })
	api.Get("/student/:id", func(c *fiber.Ctx) error { return GetStudentSummariesAPI(c, db) })
}

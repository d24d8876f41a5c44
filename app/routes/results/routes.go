package results

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupResultsRoutes sets up all exam-result entry routes
func SetupResultsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetResultsByExam(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return SaveSingleResult(c, db) })
	api.Post("/batch", func(c *fiber.Ctx) error { return BatchSaveResults(c, db) })
	api.Get("/student/:id", func(c *fiber.Ctx) error { return GetStudentResults(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSingleResult(c, db) })
}

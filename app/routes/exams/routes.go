package exams

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupExamRoutes sets up all exam routes
func SetupExamRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetExamsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetExamAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateExamAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateExamAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteExamAPI(c, db) })
}

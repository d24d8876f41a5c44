package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupGradesRoutes sets up all grade-level routes
func SetupGradesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetGradesAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetGradeAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateGradeAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateGradeAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteGradeAPI(c, db) })
}

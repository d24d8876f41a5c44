package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupSubjectsRoutes sets up all subject routes
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetSubjectAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateSubjectAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, db) })
}

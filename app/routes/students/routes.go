package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
)

// SetupStudentsRoutes sets up all student and enrollment routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })

	// Enrollments
	api.Post("/:id/enrollments", func(c *fiber.Ctx) error { return EnrollStudentAPI(c, db) })
	api.Delete("/:id/enrollments/:enrollmentId", func(c *fiber.Ctx) error { return DeleteEnrollmentAPI(c, db) })
}

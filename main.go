package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Philconrad24/Student-Management-System/app/config"
	"github.com/Philconrad24/Student-Management-System/app/database"
	"github.com/Philconrad24/Student-Management-System/app/routes/academic"
	"github.com/Philconrad24/Student-Management-System/app/routes/auth"
	"github.com/Philconrad24/Student-Management-System/app/routes/exams"
	"github.com/Philconrad24/Student-Management-System/app/routes/grades"
	"github.com/Philconrad24/Student-Management-System/app/routes/results"
	"github.com/Philconrad24/Student-Management-System/app/routes/students"
	"github.com/Philconrad24/Student-Management-System/app/routes/subjects"
	"github.com/Philconrad24/Student-Management-System/app/routes/summaries"
	"github.com/Philconrad24/Student-Management-System/app/services"
)

// customErrorHandler returns errors as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db := config.GetDB()

	// Start the nightly summary recompute job
	services.StartScheduler(db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app, db)
	grades.SetupGradesRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	academic.SetupAcademicRoutes(app, db)
	exams.SetupExamRoutes(app, db)
	results.SetupResultsRoutes(app, db)
	summaries.SetupSummariesRoutes(app, db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	log.Printf("Starting server on %s", port)
	if err := app.Listen(port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

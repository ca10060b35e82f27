package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"sms-timetable/app/config"
	"sms-timetable/app/database"
	"sms-timetable/app/routes/filters"
	"sms-timetable/app/routes/rooms"
	"sms-timetable/app/routes/sessions"
	"sms-timetable/app/routes/timetable"
	"sms-timetable/app/services"
)

// customErrorHandler returns JSON for API requests and plain pages otherwise
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).SendString(err.Error())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Database migrations failed:", err)
	}

	sessionStore := database.NewSessionDB(db)
	roomStore := database.NewRoomDB(db)

	loader := services.NewLoader(sessionStore, cfg.Days)
	editor := services.NewEditor(sessionStore, loader, cfg.SchoolYear)
	registry := services.NewRoomRegistry(roomStore)
	filterState := services.NewFilterRegistry()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/timetable")
	})

	sessions.SetupSessionRoutes(app, &sessions.Handler{
		Loader:      loader,
		Editor:      editor,
		DefaultYear: cfg.SchoolYear,
	})

	rooms.SetupRoomRoutes(app, &rooms.Handler{Registry: registry})

	timetable.SetupTimetableRoutes(app, &timetable.Handler{
		Loader:      loader,
		Days:        cfg.Days,
		Slots:       cfg.Slots,
		DefaultYear: cfg.SchoolYear,
	})

	filters.SetupFilterRoutes(app, &filters.Handler{Registry: filterState})

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Printf("Server starting on %s", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}

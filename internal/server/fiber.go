package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New creates a Fiber app with the baseline middleware stack. The recover
// middleware backs the error taxonomy's catch-all: a panicking handler
// becomes a 500, never a crashed process.
func New(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: appName,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	return app
}

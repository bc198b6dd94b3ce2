// Package app wires the HTTP routes onto a Fiber server.
package app

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/parinyadagon/diagtest/internal/server"
	"github.com/parinyadagon/diagtest/internal/service/testgen"
)

const (
	serviceName    = "Diagnostic Test Generator API"
	serviceVersion = "1.0.0"
)

// NewServer creates the Fiber app and registers all routes against the
// provided generation service.
func NewServer(svc *testgen.Service) *fiber.App {
	app := server.New(serviceName)

	// GET /
	// Service descriptor: name, version, endpoint map.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": serviceName,
			"version": serviceVersion,
			"endpoints": fiber.Map{
				"/generate-test": "POST - Generate a diagnostic test",
				"/health":        "GET - Check API health",
			},
		})
	})

	// GET /health
	// Reports whether an OpenAI credential is currently present in the
	// environment. No outbound call is made.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":            "healthy",
			"openai_configured": os.Getenv("OPENAI_API_KEY") != "",
		})
	})

	// POST /generate-test
	app.Post("/generate-test", func(c *fiber.Ctx) error {
		var req testgen.TestRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"detail": []testgen.FieldError{{Field: "body", Message: "invalid request body"}},
			})
		}

		resp, err := svc.Generate(c.Context(), req)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(resp)
	})

	return app
}

// errorResponse maps a pipeline error to its HTTP representation. Validation
// failures carry field-level detail; everything else collapses to a 500 with
// a detail string naming the failure class.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *testgen.ErrValidation
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": verr.Fields,
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("test generation failed")

	var cfgErr *testgen.ErrConfiguration
	if errors.As(err, &cfgErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "OpenAI API key not configured",
		})
	}
	// ErrUpstream, ErrMalformedOutput and ErrShapeMismatch each render their
	// own message; anything unexpected falls through with the same shape.
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": err.Error(),
	})
}

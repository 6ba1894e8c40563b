// Package server builds the Fiber application: middleware, error handling,
// the health route and every registered API route.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

// RouteRegistrar is implemented by handlers that mount their own routes.
type RouteRegistrar interface {
	RegisterRoutes(router fiber.Router)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New returns a configured Fiber app with every registrar's routes mounted at the root.
func New(logger zerolog.Logger, store Pinger, registrars ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "catalog",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	accessLog := logger.With().Str("component", "http").Logger()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: &accessLog,
		Format: "${locals:requestid} ${status} ${method} ${path} ${latency}",
	}))

	app.Get("/health", healthHandler(store))

	for _, r := range registrars {
		r.RegisterRoutes(app)
	}
	return app
}

func healthHandler(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "connected"
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			database = "unavailable"
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
		})
	}
}

// errorHandler answers every error a handler did not translate itself.
// Fiber errors keep their status; anything else is an opaque 500.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		event := logger.Warn()
		if code >= fiber.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).
			Interface("request_id", c.Locals("requestid")).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", code).
			Msg("request failed")

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}

package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// envelope is the body of every JSON API response. Exactly one of Data and
// Error is set.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Status: statusOK, Data: data})
}

// jsonError returns an error envelope with the given HTTP status code.
// Rejected requests are logged at debug level, server faults as errors.
func jsonError(c fiber.Ctx, status int, message string) error {
	level := slog.LevelDebug
	if status >= fiber.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Context(), level, "api request failed", "path", c.Path(), "status", status, "error", message)

	return c.Status(status).JSON(envelope{Status: statusError, Error: message})
}

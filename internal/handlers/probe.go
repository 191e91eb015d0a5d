package handlers

import (
	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/knowledge"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store *knowledge.Store
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(store *knowledge.Store) *ProbeHandler {
	return &ProbeHandler{store: store}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once a knowledge store with at least one topic is loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.store == nil || h.store.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "knowledge base not loaded",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"topics": h.store.Len(),
	})
}

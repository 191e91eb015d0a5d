package api

import (
	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/knowledge"
	"smartedubot/internal/models"
)

// TopicsHandler lists the topics the bot knows about.
type TopicsHandler struct {
	store *knowledge.Store
}

// NewTopicsHandler creates a new API topics handler.
func NewTopicsHandler(store *knowledge.Store) *TopicsHandler {
	return &TopicsHandler{store: store}
}

// List returns every topic with its trigger keywords.
func (h *TopicsHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, models.NewTopicSummaries(h.store))
}

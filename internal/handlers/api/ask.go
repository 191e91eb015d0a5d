package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/config"
	"smartedubot/internal/matcher"
	"smartedubot/internal/models"
	"smartedubot/internal/validation"
)

// AskHandler answers queries via JSON API.
type AskHandler struct {
	matcher *matcher.Matcher
	cfg     *config.Config
}

// NewAskHandler creates a new API ask handler.
func NewAskHandler(m *matcher.Matcher, cfg *config.Config) *AskHandler {
	return &AskHandler{matcher: m, cfg: cfg}
}

// Ask resolves the query in the request body and returns the answer.
func (h *AskHandler) Ask(c fiber.Ctx) error {
	var req models.AskRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateQuery(req.Query, h.cfg.MaxQueryLength); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	res := h.matcher.ResolveResult(req.Query)
	slog.Debug("query resolved", "outcome", res.Outcome, "topic", res.TopicID, "score", res.Score)

	return jsonSuccess(c, models.NewAskResponse(req.Query, res))
}

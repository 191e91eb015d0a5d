package api

import (
	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/analytics"
	"smartedubot/internal/models"
)

// AnalyticsHandler reports how often each topic was asked about.
type AnalyticsHandler struct {
	counter *analytics.Counter
}

// NewAnalyticsHandler creates a new API analytics handler.
func NewAnalyticsHandler(counter *analytics.Counter) *AnalyticsHandler {
	return &AnalyticsHandler{counter: counter}
}

// Report returns topic counts ordered by count descending.
func (h *AnalyticsHandler) Report(c fiber.Ctx) error {
	return jsonSuccess(c, models.NewAnalyticsResponse(analytics.NewReport(h.counter)))
}

package handlers

import (
	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/config"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
	"smartedubot/internal/models"
	"smartedubot/internal/validation"
)

// ChatHandler serves the browser chat page.
type ChatHandler struct {
	matcher *matcher.Matcher
	store   *knowledge.Store
	cfg     *config.Config
}

// NewChatHandler creates a new chat page handler.
func NewChatHandler(m *matcher.Matcher, store *knowledge.Store, cfg *config.Config) *ChatHandler {
	return &ChatHandler{matcher: m, store: store, cfg: cfg}
}

// Index renders the chat page with the topic table.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.pageData(fiber.Map{}))
}

// Ask handles the chat form and re-renders the page with the answer.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	var req models.AskRequest
	if err := c.Bind().Form(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	if valid, msg := validation.ValidateQuery(req.Query, h.cfg.MaxQueryLength); !valid {
		return c.Status(fiber.StatusBadRequest).Render("index", h.pageData(fiber.Map{
			"Query": req.Query,
			"Error": msg,
		}))
	}

	res := h.matcher.ResolveResult(req.Query)
	return c.Render("index", h.pageData(fiber.Map{
		"Query":  req.Query,
		"Answer": models.NewAskResponse(req.Query, res),
	}))
}

func (h *ChatHandler) pageData(data fiber.Map) fiber.Map {
	data["Topics"] = models.NewTopicSummaries(h.store)
	return MergeBranding(data, h.cfg)
}

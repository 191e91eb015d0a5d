package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"smartedubot/internal/analytics"
	"smartedubot/internal/handlers"
	"smartedubot/internal/handlers/api"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
	"smartedubot/internal/metrics"
	"smartedubot/internal/middleware"
)

// Deps are the shared components the routes are served from.
type Deps struct {
	Store   *knowledge.Store
	Counter *analytics.Counter
	Matcher *matcher.Matcher
	Metrics *metrics.Metrics

	// Verifier guards the analytics endpoint. When nil and OIDC is
	// configured, one is discovered from the issuer.
	Verifier middleware.TokenVerifier
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	verifier := deps.Verifier
	if verifier == nil && s.Cfg.IsOIDCEnabled() {
		v, err := middleware.NewOIDCVerifier(ctx, s.Cfg.OIDCIssuer, s.Cfg.OIDCClientID)
		if err != nil {
			return err
		}
		verifier = v
	}
	if verifier == nil {
		slog.Info("analytics endpoint is public. Set OIDC_ISSUER to require a bearer token.")
	}
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(deps.Matcher, deps.Store, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.Store)
	askHandler := api.NewAskHandler(deps.Matcher, s.Cfg)
	topicsHandler := api.NewTopicsHandler(deps.Store)
	analyticsHandler := api.NewAnalyticsHandler(deps.Counter)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if deps.Metrics != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/ask", askHandler.Ask)
	apiGroup.Get("/topics", topicsHandler.List)
	apiGroup.Get("/analytics", authMiddleware.RequireBearer, analyticsHandler.Report)

	// Chat page
	s.App.Get("/", chatHandler.Index)
	s.App.Post("/ask", chatHandler.Ask)

	return nil
}

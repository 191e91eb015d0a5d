package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"

	"smartedubot/internal/validation"
)

// ErrUnauthorized is returned when a request carries no usable bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// TokenVerifier checks a raw bearer token and returns its subject.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

// OIDCVerifier verifies ID tokens issued by an OIDC provider.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the provider at issuer and returns a verifier
// that accepts tokens for clientID. An empty clientID skips the audience check.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	if valid, msg := validation.ValidateURL(issuer); !valid {
		return nil, fmt.Errorf("invalid OIDC issuer: %s", msg)
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{
			ClientID:          clientID,
			SkipClientIDCheck: clientID == "",
		}),
	}, nil
}

// Verify validates the token signature, issuer, expiry and audience.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}
	return token.Subject, nil
}

// AuthMiddleware guards endpoints with bearer tokens.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware instance. A nil verifier
// disables the guard.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireBearer rejects requests without a valid bearer token and stores the
// token subject in c.Locals("subject").
func (m *AuthMiddleware) RequireBearer(c fiber.Ctx) error {
	if m.verifier == nil {
		return c.Next()
	}

	raw, err := extractBearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return unauthorized(c)
	}

	subject, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		slog.Warn("rejected bearer token", "ip", c.IP(), "error", err)
		return unauthorized(c)
	}

	c.Locals("subject", subject)
	return c.Next()
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  ErrUnauthorized.Error(),
	})
}

// extractBearerToken returns the token from an "Authorization: Bearer <token>" header.
func extractBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrUnauthorized
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}

// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"
	"time"

	"smartedubot/internal/analytics"
	"smartedubot/internal/config"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
)

// Now is the instant FixedClock-based bots report.
var Now = time.Date(2025, time.January, 5, 14, 30, 0, 0, time.Local)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) matcher.Clock {
	return matcher.ClockFunc(func() time.Time { return t })
}

// Bot bundles a matcher with the store and counter it was built from.
type Bot struct {
	Store   *knowledge.Store
	Counter *analytics.Counter
	Matcher *matcher.Matcher
}

// NewBot builds a matcher over the built-in topics with a fixed clock.
// Extra options are applied after the clock so tests can override it.
func NewBot(t *testing.T, opts ...matcher.Option) *Bot {
	t.Helper()

	store := knowledge.Default()
	counter := analytics.NewCounter()
	opts = append([]matcher.Option{matcher.WithClock(FixedClock(Now))}, opts...)

	return &Bot{
		Store:   store,
		Counter: counter,
		Matcher: matcher.New(store, counter, opts...),
	}
}

// Config returns a configuration suitable for tests: no OIDC, no Redis,
// generous rate limit.
func Config() *config.Config {
	return &config.Config{
		Env:            "test",
		ServerAddr:     ":0",
		BaseURL:        "http://localhost:3000",
		RateLimitMax:   1000,
		MaxQueryLength: 500,
		LogLevel:       "error",
		SiteTitle:      "SmartEduBot",
		SiteTagline:    "Your Intelligent College Assistant",
	}
}

// TopicResponse returns the response text of a built-in topic.
func TopicResponse(t *testing.T, id string) string {
	t.Helper()
	topic, ok := knowledge.Default().Get(id)
	if !ok {
		t.Fatalf("unknown topic %q", id)
	}
	return topic.Response
}

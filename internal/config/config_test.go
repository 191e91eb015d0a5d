package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartedubot/internal/knowledge"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "RATE_LIMIT_MAX", "REDIS_URL", "OIDC_ISSUER",
		"CONFIG_FILE", "MAX_QUERY_LENGTH", "ANALYTICS_LOG_INTERVAL", "LOG_LEVEL", "SITE_TITLE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.IsOIDCEnabled())
	assert.Equal(t, "config.yaml", cfg.ConfigFile)
	assert.Equal(t, 500, cfg.MaxQueryLength)
	assert.Zero(t, cfg.AnalyticsLogInterval)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "SmartEduBot", cfg.SiteTitle)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("OIDC_ISSUER", "https://auth.example.edu")
	t.Setenv("ANALYTICS_LOG_INTERVAL", "5m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.False(t, cfg.IsDev())
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.True(t, cfg.IsOIDCEnabled())
	assert.Equal(t, 5*time.Minute, cfg.AnalyticsLogInterval)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("ANALYTICS_LOG_INTERVAL", "soon")

	cfg := Load()
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Zero(t, cfg.AnalyticsLogInterval)
}

func TestLoadYAMLConfig_MissingFile(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)

	store, err := cfg.BuildStore()
	require.NoError(t, err)
	assert.Equal(t, knowledge.Default().Len(), store.Len())
	assert.Nil(t, cfg.GetSuggestions())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadYAMLConfig_MergesTopics(t *testing.T) {
	path := writeConfig(t, `
topics:
  - id: exams
    response: "Exams start in May."
    keywords: [exam, exams, Semester]
    category: ACADEMICS
  - id: hostel
    response: "Hostel applications close in July."
    keywords: [hostel, dorm]
    priority: 2
suggestions:
  - exam schedule
  - hostel facilities
`)

	cfg, err := LoadYAMLConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Topics, 2)
	assert.Equal(t, 1, cfg.Topics[0].Priority, "priority defaults to 1")
	assert.Equal(t, []string{"exam schedule", "hostel facilities"}, cfg.GetSuggestions())

	store, err := cfg.BuildStore()
	require.NoError(t, err)
	assert.Equal(t, 9, store.Len())

	exams, ok := store.Get("exams")
	require.True(t, ok)
	assert.Equal(t, []string{"exam", "exams", "semester"}, exams.Keywords)

	hostel, ok := store.Get("hostel")
	require.True(t, ok)
	assert.Equal(t, "Hostel applications close in July.", hostel.Response)

	ids := make([]string, 0, store.Len())
	for _, topic := range store.All() {
		ids = append(ids, topic.ID)
	}
	assert.Equal(t, "hostel", ids[3], "replaced topic keeps its position")
	assert.Equal(t, "exams", ids[8])
}

func TestLoadYAMLConfig_InvalidTopic(t *testing.T) {
	path := writeConfig(t, `
topics:
  - id: broken
    response: "nothing"
    keywords: []
`)

	cfg, err := LoadYAMLConfig(path)
	require.NoError(t, err)

	_, err = cfg.BuildStore()
	require.Error(t, err)
	assert.ErrorIs(t, err, knowledge.ErrConfiguration)
}

func TestLoadYAMLConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "topics: [this is: not valid")

	_, err := LoadYAMLConfig(path)
	require.Error(t, err)
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartedubot/internal/knowledge"
	"smartedubot/internal/shell"
	"smartedubot/internal/testutil"
)

func useConfig(t *testing.T, yamlBody string) {
	t.Helper()

	c := testutil.Config()
	c.ConfigFile = filepath.Join(t.TempDir(), "config.yaml")
	if yamlBody != "" {
		require.NoError(t, os.WriteFile(c.ConfigFile, []byte(yamlBody), 0o600))
	}

	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func newCmd(in string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "What are the fees?", joinArgs([]string{"What", "are", "the", "fees?"}))
	assert.Equal(t, "hostel", joinArgs([]string{" hostel "}))
	assert.Empty(t, joinArgs(nil))
}

func TestRunAsk(t *testing.T) {
	useConfig(t, "")
	cmd, out := newCmd("")

	require.NoError(t, runAsk(cmd, []string{"What", "are", "the", "fees", "for", "B.Tech?"}))
	assert.Equal(t, shell.BotPrefix+testutil.TopicResponse(t, "fees")+"\n", out.String())
}

func TestRunAsk_TopicFile(t *testing.T) {
	useConfig(t, `
topics:
  - id: exams
    response: "📝 Exams start in May."
    keywords: [exam, exams, timetable]
suggestions:
  - exam schedule
`)

	cmd, out := newCmd("")
	require.NoError(t, runAsk(cmd, []string{"When", "are", "the", "exams?"}))
	assert.Equal(t, shell.BotPrefix+"📝 Exams start in May.\n", out.String())

	cmd, out = newCmd("")
	require.NoError(t, runAsk(cmd, []string{"xyz"}))
	assert.Contains(t, out.String(), "• exam schedule")
	assert.NotContains(t, out.String(), "• fee structure")
}

func TestRunAsk_InvalidTopicFile(t *testing.T) {
	useConfig(t, `
topics:
  - id: broken
    response: ""
    keywords: [x]
`)

	cmd, _ := newCmd("")
	err := runAsk(cmd, []string{"hello"})
	assert.ErrorIs(t, err, knowledge.ErrConfiguration)
}

func TestRunChat(t *testing.T) {
	useConfig(t, "")
	cmd, out := newCmd("hostel\nexit\n")

	require.NoError(t, runChat(cmd, nil))
	assert.Contains(t, out.String(), shell.Welcome)
	assert.Contains(t, out.String(), shell.BotPrefix+testutil.TopicResponse(t, "hostel"))
	assert.True(t, strings.HasSuffix(out.String(), "• hostel: 1 times\n"))
}

func TestNewApp_MetricsObserveMatcher(t *testing.T) {
	useConfig(t, "")

	a, err := newApp(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, a.store.Len())

	a.matcher.Resolve("library")
	assert.Equal(t, 1, a.counter.Count("library"))
}

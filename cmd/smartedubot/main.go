package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"smartedubot/internal/config"
)

var (
	configFile string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "smartedubot",
	Short: "SmartEduBot - Your Intelligent College Assistant",
	Long: `SmartEduBot answers common questions about admissions, courses, fees,
hostel, placements, library, scholarships and campus life.

Run without arguments to start the interactive console chat.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if configFile != "" {
			cfg.ConfigFile = configFile
		}
		setupLogging(cfg)
		return nil
	},
	RunE: runChat,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive console chat",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Long: `Resolves one question and prints the bot's reply.

Example:
  smartedubot ask What are the fees for B.Tech?`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat page, JSON API and metrics over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML file with extra topics (default: $CONFIG_FILE or config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs a text slog handler on stderr.
func setupLogging(c *config.Config) {
	level := c.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

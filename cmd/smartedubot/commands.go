package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"smartedubot/internal/jobs"
	"smartedubot/internal/server"
	"smartedubot/internal/shell"
)

// runChat starts the console read-eval-print loop on the command's streams.
func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return shell.New(a.matcher, a.store, a.counter, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// runAsk answers one question passed as arguments.
func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	res := a.matcher.ResolveResult(joinArgs(args))
	slog.Debug("query resolved", "outcome", res.Outcome, "topic", res.TopicID, "score", res.Score)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), shell.BotPrefix+res.Response)
	return err
}

// runServe runs the HTTP server until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		Store:   a.store,
		Counter: a.counter,
		Matcher: a.matcher,
		Metrics: a.metrics,
	}); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	go jobs.NewAnalyticsLogger(a.counter, cfg.AnalyticsLogInterval, nil).Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	slog.Info("server started", "addr", cfg.ServerAddr, "topics", a.store.Len())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exited")
	return nil
}

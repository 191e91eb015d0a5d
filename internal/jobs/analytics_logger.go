package jobs

import (
	"context"
	"log/slog"
	"time"

	"smartedubot/internal/analytics"
)

// AnalyticsLogger periodically logs the topic frequency report.
type AnalyticsLogger struct {
	counter  *analytics.Counter
	interval time.Duration
	logger   *slog.Logger
}

// NewAnalyticsLogger creates a new analytics logger. A nil logger uses slog.Default().
func NewAnalyticsLogger(counter *analytics.Counter, interval time.Duration, logger *slog.Logger) *AnalyticsLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsLogger{
		counter:  counter,
		interval: interval,
		logger:   logger,
	}
}

// Start logs a snapshot every interval until ctx is cancelled, then logs a
// final one. It returns immediately when the interval is not positive.
func (a *AnalyticsLogger) Start(ctx context.Context) {
	if a.interval <= 0 {
		return
	}
	a.logger.Info("analytics logger started", "interval", a.interval)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logSnapshot()
			a.logger.Info("analytics logger stopped")
			return
		case <-ticker.C:
			a.logSnapshot()
		}
	}
}

func (a *AnalyticsLogger) logSnapshot() {
	report := analytics.NewReport(a.counter)
	if report.Empty() {
		a.logger.Info("analytics snapshot", "topics", 0)
		return
	}

	attrs := make([]any, 0, 2+2*len(report.Entries))
	attrs = append(attrs, "topics", len(report.Entries))
	for _, e := range report.Entries {
		attrs = append(attrs, "topic."+e.ID, e.Count)
	}
	a.logger.Info("analytics snapshot", attrs...)
}

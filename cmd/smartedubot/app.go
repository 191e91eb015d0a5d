package main

import (
	"fmt"

	"smartedubot/internal/analytics"
	"smartedubot/internal/config"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
	"smartedubot/internal/metrics"
)

// app holds the components every command shares.
type app struct {
	store   *knowledge.Store
	counter *analytics.Counter
	metrics *metrics.Metrics
	matcher *matcher.Matcher
}

// newApp loads the topic file and wires the matcher to the counter and metrics.
func newApp(c *config.Config, opts ...matcher.Option) (*app, error) {
	yamlCfg, err := config.LoadYAMLConfig(c.ConfigFile)
	if err != nil {
		return nil, err
	}

	store, err := yamlCfg.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build knowledge store: %w", err)
	}

	counter := analytics.NewCounter()
	met := metrics.New(counter)

	opts = append([]matcher.Option{
		matcher.WithObserver(met.Observe),
		matcher.WithSuggestions(yamlCfg.GetSuggestions()),
	}, opts...)

	return &app{
		store:   store,
		counter: counter,
		metrics: met,
		matcher: matcher.New(store, counter, opts...),
	}, nil
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartedubot/internal/analytics"
	"smartedubot/internal/matcher"
)

var (
	topicMatchesDesc = prometheus.NewDesc(
		"smartedubot_topic_matches_total",
		"Total queries resolved to each topic",
		[]string{"topic"},
		nil,
	)
)

// TopicCollector is a custom Prometheus collector that reads the frequency
// counter on each scrape.
type TopicCollector struct {
	counter *analytics.Counter
}

// NewTopicCollector creates a collector over counter.
func NewTopicCollector(counter *analytics.Counter) *TopicCollector {
	return &TopicCollector{counter: counter}
}

// Describe sends the metric descriptor to the channel.
func (c *TopicCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- topicMatchesDesc
}

// Collect emits one counter per topic seen so far.
func (c *TopicCollector) Collect(ch chan<- prometheus.Metric) {
	for id, n := range c.counter.Snapshot() {
		ch <- prometheus.MustNewConstMetric(
			topicMatchesDesc,
			prometheus.CounterValue,
			float64(n),
			id,
		)
	}
}

// Metrics owns the registry the /metrics endpoint serves.
type Metrics struct {
	Registry *prometheus.Registry
	queries  *prometheus.CounterVec
}

// New registers the topic collector, the outcome counters and the Go runtime
// collectors on a fresh registry.
func New(counter *analytics.Counter) *Metrics {
	reg := prometheus.NewRegistry()

	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "smartedubot_queries_total",
		Help: "Total queries by resolution outcome",
	}, []string{"outcome"})
	for _, o := range matcher.Outcomes {
		queries.WithLabelValues(string(o))
	}

	reg.MustRegister(
		NewTopicCollector(counter),
		queries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{Registry: reg, queries: queries}
}

// Observe records a resolution outcome. It satisfies matcher.Observer.
func (m *Metrics) Observe(r matcher.Result) {
	m.queries.WithLabelValues(string(r.Outcome)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Package matcher resolves free-text queries to canned responses. Each topic
// in the knowledge store is scored by keyword overlap; the best-scoring topic
// wins and is recorded in the frequency counter. Queries no topic scores on
// fall through to a short list of small-talk heuristics.
package matcher

import (
	"slices"

	"smartedubot/internal/analytics"
	"smartedubot/internal/knowledge"
)

// Outcome labels how a query was resolved.
type Outcome string

const (
	OutcomeResolved Outcome = "resolved"
	OutcomeGreeting Outcome = "greeting"
	OutcomeThanks   Outcome = "thanks"
	OutcomeIdentity Outcome = "identity"
	OutcomeTime     Outcome = "time"
	OutcomeUnknown  Outcome = "unknown"
)

// Outcomes lists every outcome in a stable order.
var Outcomes = []Outcome{
	OutcomeResolved,
	OutcomeGreeting,
	OutcomeThanks,
	OutcomeIdentity,
	OutcomeTime,
	OutcomeUnknown,
}

// Result describes one resolution.
type Result struct {
	Response string
	// TopicID is empty for fallback outcomes.
	TopicID string
	Score   int
	Outcome Outcome
}

// Observer is told about every resolution.
type Observer func(Result)

// Matcher scores queries against a knowledge store.
type Matcher struct {
	store       *knowledge.Store
	counter     *analytics.Counter
	clock       Clock
	observer    Observer
	suggestions []string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithClock sets the clock used by the time/date reply.
func WithClock(c Clock) Option {
	return func(m *Matcher) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithObserver registers a callback invoked once per resolution.
func WithObserver(o Observer) Option {
	return func(m *Matcher) { m.observer = o }
}

// WithSuggestions replaces the topics listed by the generic reply.
func WithSuggestions(s []string) Option {
	return func(m *Matcher) {
		if len(s) > 0 {
			m.suggestions = slices.Clone(s)
		}
	}
}

// New creates a matcher over store that records winners in counter.
func New(store *knowledge.Store, counter *analytics.Counter, opts ...Option) *Matcher {
	m := &Matcher{
		store:       store,
		counter:     counter,
		clock:       SystemClock,
		suggestions: DefaultSuggestions,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolve returns the response for raw input. It never fails: input no
// topic scores on gets a fallback reply.
func (m *Matcher) Resolve(raw string) string {
	return m.ResolveResult(raw).Response
}

// ResolveResult is Resolve with the details of how the answer was chosen.
func (m *Matcher) ResolveResult(raw string) Result {
	lowered, clean := Normalize(raw)

	res, ok := m.bestTopic(clean)
	if ok {
		m.counter.Increment(res.TopicID)
	} else {
		res = m.fallback(lowered)
	}

	if m.observer != nil {
		m.observer(res)
	}
	return res
}

func (m *Matcher) bestTopic(clean string) (Result, bool) {
	var best candidate
	found := false

	m.store.Range(func(t knowledge.Topic) bool {
		c := candidate{topic: t, score: CalculateMatchScore(clean, t)}
		if c.score > 0 && (!found || c.beats(best)) {
			best = c
			found = true
		}
		return true
	})

	if !found {
		return Result{}, false
	}
	return Result{
		Response: best.topic.Response,
		TopicID:  best.topic.ID,
		Score:    best.score,
		Outcome:  OutcomeResolved,
	}, true
}

func (m *Matcher) fallback(lowered string) Result {
	for _, rule := range fallbackRules {
		if !rule.matches(lowered) {
			continue
		}
		if reply, ok := rule.reply(m); ok {
			return Result{Response: reply, Outcome: rule.outcome}
		}
		break
	}
	return Result{Response: GenericReply(m.suggestions), Outcome: OutcomeUnknown}
}

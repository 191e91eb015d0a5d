package models

import (
	"github.com/google/uuid"

	"smartedubot/internal/analytics"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
)

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Query string `json:"query" form:"query"`
}

// AskResponse contains the answer to a single query.
type AskResponse struct {
	ID       uuid.UUID `json:"id"`
	Query    string    `json:"query"`
	Response string    `json:"response"`
	Topic    string    `json:"topic,omitempty"`
	Score    int       `json:"score"`
	Outcome  string    `json:"outcome"`
}

// NewAskResponse wraps a resolution result with a fresh answer id.
func NewAskResponse(query string, r matcher.Result) AskResponse {
	return AskResponse{
		ID:       uuid.New(),
		Query:    query,
		Response: r.Response,
		Topic:    r.TopicID,
		Score:    r.Score,
		Outcome:  string(r.Outcome),
	}
}

// TopicSummary describes a topic for the help listing.
type TopicSummary struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Priority int      `json:"priority"`
	Keywords []string `json:"keywords"`
}

// NewTopicSummaries lists the store's topics in display order.
func NewTopicSummaries(store *knowledge.Store) []TopicSummary {
	topics := store.All()
	out := make([]TopicSummary, len(topics))
	for i, t := range topics {
		out[i] = TopicSummary{
			ID:       t.ID,
			Category: t.Category,
			Priority: t.Priority,
			Keywords: t.Keywords,
		}
	}
	return out
}

// AnalyticsResponse contains the frequency report.
type AnalyticsResponse struct {
	Entries []analytics.Entry `json:"entries"`
	Message string            `json:"message,omitempty"`
}

// NewAnalyticsResponse converts a report, adding the empty message when
// nothing has been asked yet.
func NewAnalyticsResponse(r analytics.Report) AnalyticsResponse {
	if r.Empty() {
		return AnalyticsResponse{Entries: []analytics.Entry{}, Message: analytics.EmptyMessage}
	}
	return AnalyticsResponse{Entries: r.Entries}
}

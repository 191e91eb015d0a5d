package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// EmptyMessage is shown when no query has resolved to a topic yet.
const EmptyMessage = "No questions asked yet."

// Entry is one row of the frequency report.
type Entry struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// Report is an ordered view of a Counter.
type Report struct {
	Entries []Entry
}

// NewReport orders the counter's entries by count descending. Equal counts
// are ordered by id so the listing is reproducible.
func NewReport(c *Counter) Report {
	snapshot := c.Snapshot()

	entries := make([]Entry, 0, len(snapshot))
	for id, n := range snapshot {
		entries = append(entries, Entry{ID: id, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ID < entries[j].ID
	})

	return Report{Entries: entries}
}

// Empty reports whether no topic has been counted.
func (r Report) Empty() bool {
	return len(r.Entries) == 0
}

// String renders the console listing.
func (r Report) String() string {
	if r.Empty() {
		return EmptyMessage
	}

	var b strings.Builder
	b.WriteString("📊 *Question Analytics:*")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "\n• %s: %d times", e.ID, e.Count)
	}
	return b.String()
}

package shell

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"smartedubot/internal/knowledge"
)

const (
	topicHeader   = "Topic"
	keywordHeader = "Keywords to use"

	// keywordsShown is how many keywords of each topic the help table lists.
	keywordsShown = 3

	minTopicWidth   = 17
	minKeywordWidth = 27
)

type helpRow struct {
	topic    string
	keywords string
}

// RenderTopicTable draws the box table of topics and their leading keywords.
func RenderTopicTable(store *knowledge.Store) string {
	rows := make([]helpRow, 0, store.Len())
	topicW, keywordW := minTopicWidth, minKeywordWidth

	store.Range(func(t knowledge.Topic) bool {
		kws := t.Keywords
		if len(kws) > keywordsShown {
			kws = kws[:keywordsShown]
		}
		r := helpRow{topic: displayName(t.ID), keywords: strings.Join(kws, ", ")}
		topicW = max(topicW, runewidth.StringWidth(r.topic))
		keywordW = max(keywordW, runewidth.StringWidth(r.keywords))
		rows = append(rows, r)
		return true
	})

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(left + strings.Repeat("─", topicW+2) + mid + strings.Repeat("─", keywordW+2) + right + "\n")
	}
	line := func(topic, keywords string) {
		b.WriteString("│ " + runewidth.FillRight(topic, topicW) + " │ " + runewidth.FillRight(keywords, keywordW) + " │\n")
	}

	rule("┌", "┬", "┐")
	line(topicHeader, keywordHeader)
	rule("├", "┼", "┤")
	for _, r := range rows {
		line(r.topic, r.keywords)
	}
	rule("└", "┴", "┘")

	return b.String()
}

// displayName capitalizes a topic id for display: "placements" -> "Placements".
func displayName(id string) string {
	name := strings.ReplaceAll(id, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

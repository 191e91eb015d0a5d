package matcher

import (
	"strings"

	"smartedubot/internal/knowledge"
)

const (
	substringPoints = 2
	wholeWordBonus  = 3
)

// CalculateMatchScore scores clean input, as returned by Normalize, against a
// topic's keywords. Each keyword found as a substring is worth 2 points; one
// that also stands as a whole word is worth 3 more. Keywords compare
// case-insensitively.
func CalculateMatchScore(clean string, topic knowledge.Topic) int {
	score := 0
	for i, kw := range topic.Keywords {
		if !strings.Contains(clean, strings.ToLower(kw)) {
			continue
		}
		score += substringPoints
		if topic.KeywordPattern(i).MatchString(clean) {
			score += wholeWordBonus
		}
	}
	return score
}

type candidate struct {
	topic knowledge.Topic
	score int
}

// beats reports whether c should win over best. Ties go to the lower
// priority value, then to the lexicographically smaller id.
func (c candidate) beats(best candidate) bool {
	if c.score != best.score {
		return c.score > best.score
	}
	if c.topic.Priority != best.topic.Priority {
		return c.topic.Priority < best.topic.Priority
	}
	return c.topic.ID < best.topic.ID
}

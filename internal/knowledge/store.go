// Package knowledge holds the fixed set of topic records the matcher scores
// queries against. A Store is built once at startup and is read-only after.
package knowledge

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"smartedubot/internal/validation"
)

// Topic is a single canned-answer entry.
type Topic struct {
	ID       string
	Response string
	Keywords []string
	Category string
	// Priority breaks ties between equally scored topics: lower wins.
	Priority int

	patterns []*regexp.Regexp
}

// KeywordPattern returns the lower-case whole-word pattern for the i-th keyword.
// Topics built by New carry precompiled patterns; bare literals compile on
// every call.
func (t Topic) KeywordPattern(i int) *regexp.Regexp {
	if i < len(t.patterns) && t.patterns[i] != nil {
		return t.patterns[i]
	}
	return compileWholeWord(t.Keywords[i])
}

func compileWholeWord(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
}

// Store maps topic ids to topics. Insertion order is kept for display only.
type Store struct {
	byID   map[string]int
	topics []Topic
}

// New validates the given topics and builds a store. Keywords are normalized
// to lower case. Any malformed topic fails the whole construction with an
// error wrapping ErrConfiguration.
func New(topics ...Topic) (*Store, error) {
	s := &Store{
		byID:   make(map[string]int, len(topics)),
		topics: make([]Topic, 0, len(topics)),
	}

	for _, t := range topics {
		if !validation.ValidateTopicID(t.ID) {
			return nil, fmt.Errorf("%w: topic id %q is invalid", ErrConfiguration, t.ID)
		}
		if _, exists := s.byID[t.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate topic id %q", ErrConfiguration, t.ID)
		}
		if t.Response == "" {
			return nil, fmt.Errorf("%w: topic %q has an empty response", ErrConfiguration, t.ID)
		}
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("%w: topic %q has no keywords", ErrConfiguration, t.ID)
		}

		keywords := make([]string, len(t.Keywords))
		patterns := make([]*regexp.Regexp, len(t.Keywords))
		for i, kw := range t.Keywords {
			kw = validation.NormalizeKeyword(kw)
			if !validation.ValidateKeyword(kw) {
				return nil, fmt.Errorf("%w: topic %q keyword %q can never match", ErrConfiguration, t.ID, t.Keywords[i])
			}
			keywords[i] = kw
			patterns[i] = compileWholeWord(kw)
		}

		t.Keywords = keywords
		t.patterns = patterns
		s.byID[t.ID] = len(s.topics)
		s.topics = append(s.topics, t)
	}

	return s, nil
}

// Get returns the topic with the given id.
func (s *Store) Get(id string) (Topic, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Topic{}, false
	}
	return clone(s.topics[i]), true
}

// Has reports whether a topic with the given id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// All returns copies of every topic in insertion order.
func (s *Store) All() []Topic {
	out := make([]Topic, len(s.topics))
	for i, t := range s.topics {
		out[i] = clone(t)
	}
	return out
}

// Range calls fn for each topic in insertion order until fn returns false.
// The topic passed to fn shares its keyword slice with the store and must not be modified.
func (s *Store) Range(fn func(Topic) bool) {
	for _, t := range s.topics {
		if !fn(t) {
			return
		}
	}
}

// Len returns the number of topics.
func (s *Store) Len() int {
	return len(s.topics)
}

func clone(t Topic) Topic {
	t.Keywords = slices.Clone(t.Keywords)
	return t
}

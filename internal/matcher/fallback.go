package matcher

import "strings"

// Fallback replies.
const (
	GreetingReply = "👋 Hello! I'm SmartEduBot. How can I assist you with college information today?"
	ThanksReply   = "You're welcome! 😊 Feel free to ask if you need more information."
	IdentityReply = "I'm SmartEduBot, your intelligent college assistant! 🤖"
	TimePrefix    = "⏰ Current time: "
)

// DefaultSuggestions are listed by the generic reply.
var DefaultSuggestions = []string{
	"admission process",
	"course details",
	"fee structure",
	"hostel facilities",
	"placement records",
	"campus life",
}

// fallbackRule pairs a containment check with a reply. reply returns false
// when it cannot produce an answer, which sends the query to the generic reply.
type fallbackRule struct {
	outcome Outcome
	terms   []string
	reply   func(m *Matcher) (string, bool)
}

func (r fallbackRule) matches(lowered string) bool {
	for _, term := range r.terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func constant(s string) func(*Matcher) (string, bool) {
	return func(*Matcher) (string, bool) { return s, true }
}

// fallbackRules are evaluated in order; the first match wins.
var fallbackRules = []fallbackRule{
	{outcome: OutcomeGreeting, terms: []string{"hi", "hello", "hey"}, reply: constant(GreetingReply)},
	{outcome: OutcomeThanks, terms: []string{"thank", "thanks"}, reply: constant(ThanksReply)},
	{outcome: OutcomeIdentity, terms: []string{"name", "who are you"}, reply: constant(IdentityReply)},
	{outcome: OutcomeTime, terms: []string{"time", "date"}, reply: (*Matcher).currentTime},
}

func (m *Matcher) currentTime() (string, bool) {
	now := m.clock.Now()
	if now.IsZero() {
		return "", false
	}
	return TimePrefix + now.Format(TimestampLayout), true
}

// GenericReply lists the given suggestions.
func GenericReply(suggestions []string) string {
	return "🤔 I'm not sure I understand. Try asking about:\n" +
		"• " + strings.Join(suggestions, "\n• ") +
		"\n\nOr type 'help' for more options."
}

package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasAllTopics(t *testing.T) {
	s := Default()

	ids := make([]string, 0, s.Len())
	for _, topic := range s.All() {
		ids = append(ids, topic.ID)
	}
	assert.Equal(t, []string{
		"admission", "courses", "fees", "hostel",
		"placements", "library", "scholarship", "campus",
	}, ids)
}

func TestDefault_Keywords(t *testing.T) {
	s := Default()

	tests := map[string][]string{
		"admission":   {"admission", "apply", "application", "admit", "enroll"},
		"courses":     {"courses", "programs", "degrees", "btech", "mba", "mca"},
		"fees":        {"fees", "fee", "tuition", "cost", "payment"},
		"hostel":      {"hostel", "accommodation", "stay", "lodging"},
		"placements":  {"placement", "job", "career", "recruitment", "company"},
		"library":     {"library", "books", "study", "research"},
		"scholarship": {"scholarship", "financial aid", "waiver", "free"},
		"campus":      {"campus", "infrastructure", "facilities", "building"},
	}

	for id, want := range tests {
		t.Run(id, func(t *testing.T) {
			topic, ok := s.Get(id)
			require.True(t, ok)
			assert.Equal(t, want, topic.Keywords)
			assert.NotEmpty(t, topic.Response)
			assert.NotEmpty(t, topic.Category)
		})
	}
}

func TestDefault_ResponsesVerbatim(t *testing.T) {
	s := Default()

	tests := []struct {
		id   string
		want string
	}{
		{
			id: "admission",
			want: "🎓 *Admission Process:*\n" +
				"• Online applications open: June 1st\n" +
				"• Eligibility: 12th grade with 60% minimum\n" +
				"• Required documents: Marksheet, ID proof, Photographs\n" +
				"• Apply at: www.ourcollege.edu.in/admissions",
		},
		{
			id: "courses",
			want: "📚 *Available Programs:*\n\n" +
				"🔹 *Engineering:*\n" +
				"   • B.Tech (CS, IT, Mechanical, Civil, ECE)\n" +
				"   • M.Tech (AI, Data Science, Structural Eng)\n\n" +
				"🔹 *Management:*\n" +
				"   • BBA, MBA (Finance, Marketing, HR)\n\n" +
				"🔹 *Computer Applications:*\n" +
				"   • BCA, MCA\n\n" +
				"💡 *Duration:* 3-4 years | *Seats:* 60-120 per course",
		},
		{
			id: "fees",
			want: "💰 *Fee Structure (Annual):*\n\n" +
				"• B.Tech: ₹95,000 + ₹15,000 (development fee)\n" +
				"• M.Tech: ₹85,000 + ₹12,000 (development fee)\n" +
				"• MBA: ₹1,15,000 + ₹20,000 (development fee)\n" +
				"• MCA: ₹75,000 + ₹10,000 (development fee)\n\n" +
				"💳 *Payment Options:* Installments available",
		},
		{
			id: "hostel",
			want: "🏠 *Hostel Facilities:*\n\n" +
				"✅ Separate hostels for Boys & Girls\n" +
				"✅ AC/Non-AC rooms available\n" +
				"✅ WiFi, Laundry, Gym, Common Room\n" +
				"✅ Mess with vegetarian & non-vegetarian options\n" +
				"✅ 24/7 Security & Medical facilities\n\n" +
				"💵 *Hostel Fees:* ₹45,000 - ₹85,000 per year",
		},
		{
			id: "placements",
			want: "🏢 *Placement Statistics (2024):*\n\n" +
				"📊 *Overall Placement Rate:* 92%\n" +
				"💼 *Highest Package:* ₹42 LPA (Amazon)\n" +
				"💰 *Average Package:* ₹8.5 LPA\n\n" +
				"🏆 *Top Recruiters:*\n" +
				"• Tech: Google, Microsoft, Amazon, TCS, Infosys\n" +
				"• Finance: Goldman Sachs, Morgan Stanley\n" +
				"• Consulting: Deloitte, PwC, EY\n\n" +
				"🎯 *Training:* Dedicated placement cell with mock interviews",
		},
		{
			id: "library",
			want: "📖 *Central Library:*\n\n" +
				"🕐 *Timings:* 8:00 AM - 10:00 PM (Mon-Sat)\n" +
				"📚 *Collection:* 50,000+ books, 100+ journals\n" +
				"💻 *Digital Resources:*\n" +
				"   • Online databases access\n" +
				"   • E-books and E-journals\n" +
				"   • Computer lab with internet\n\n" +
				"🎧 *Study Spaces:* Silent zones, Group study rooms",
		},
		{
			id: "scholarship",
			want: "🎗️ *Scholarship Programs:*\n\n" +
				"• Merit-based: 100% fee waiver for top rankers\n" +
				"• Sports quota: Up to 50% fee waiver\n" +
				"• EWS category: As per government norms\n" +
				"• SC/ST scholarships available\n\n" +
				"📝 Apply within 15 days of admission",
		},
		{
			id: "campus",
			want: "🏛️ *Campus Highlights:*\n\n" +
				"• 50-acre green campus\n" +
				"• Smart classrooms with projectors\n" +
				"• 10+ specialized laboratories\n" +
				"• Sports complex & swimming pool\n" +
				"• Cafeteria & food court\n" +
				"• Medical center with ambulance",
		},
	}

	require.Len(t, tests, s.Len())
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			topic, ok := s.Get(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, topic.Response)
		})
	}
}

func TestNew_ConfigurationErrors(t *testing.T) {
	valid := Topic{ID: "fees", Response: "fees text", Keywords: []string{"fee"}}

	tests := []struct {
		name   string
		topics []Topic
		msg    string
	}{
		{
			name:   "empty id",
			topics: []Topic{{Response: "x", Keywords: []string{"x"}}},
			msg:    "topic id",
		},
		{
			name:   "duplicate id",
			topics: []Topic{valid, valid},
			msg:    "duplicate topic id",
		},
		{
			name:   "no keywords",
			topics: []Topic{{ID: "hostel", Response: "x"}},
			msg:    "no keywords",
		},
		{
			name:   "empty response",
			topics: []Topic{{ID: "hostel", Keywords: []string{"hostel"}}},
			msg:    "empty response",
		},
		{
			name:   "punctuated keyword",
			topics: []Topic{{ID: "courses", Response: "x", Keywords: []string{"b.tech"}}},
			msg:    "can never match",
		},
		{
			name:   "blank keyword",
			topics: []Topic{{ID: "courses", Response: "x", Keywords: []string{"   "}}},
			msg:    "can never match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.topics...)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNew_NormalizesKeywords(t *testing.T) {
	s, err := New(Topic{ID: "aid", Response: "x", Keywords: []string{" Financial Aid", "WAIVER"}})
	require.NoError(t, err)

	topic, ok := s.Get("aid")
	require.True(t, ok)
	assert.Equal(t, []string{"financial aid", "waiver"}, topic.Keywords)
	assert.True(t, topic.KeywordPattern(0).MatchString("need financial aid now"))
	assert.False(t, topic.KeywordPattern(1).MatchString("waivers"))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := Default()

	topic, ok := s.Get("hostel")
	require.True(t, ok)
	topic.Keywords[0] = "mutated"

	again, _ := s.Get("hostel")
	assert.Equal(t, "hostel", again.Keywords[0])
}

func TestStore_GetMissing(t *testing.T) {
	s := Default()

	_, ok := s.Get("cafeteria")
	assert.False(t, ok)
	assert.False(t, s.Has("cafeteria"))
	assert.True(t, s.Has("campus"))
}

func TestStore_RangeStopsEarly(t *testing.T) {
	s := Default()

	var seen []string
	s.Range(func(t Topic) bool {
		seen = append(seen, t.ID)
		return len(seen) < 3
	})
	assert.Equal(t, []string{"admission", "courses", "fees"}, seen)
}

func TestTopic_KeywordPatternOnLiteral(t *testing.T) {
	topic := Topic{ID: "x", Keywords: []string{"job"}}

	assert.True(t, topic.KeywordPattern(0).MatchString("any job openings"))
	assert.False(t, topic.KeywordPattern(0).MatchString("jobs"))
}

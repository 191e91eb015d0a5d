package knowledge

// builtinTopics is the compiled-in college knowledge base.
var builtinTopics = []Topic{
	{
		ID: "admission",
		Response: "🎓 *Admission Process:*\n" +
			"• Online applications open: June 1st\n" +
			"• Eligibility: 12th grade with 60% minimum\n" +
			"• Required documents: Marksheet, ID proof, Photographs\n" +
			"• Apply at: www.ourcollege.edu.in/admissions",
		Keywords: []string{"admission", "apply", "application", "admit", "enroll"},
		Category: "ADMISSION",
		Priority: 1,
	},
	{
		ID: "courses",
		Response: "📚 *Available Programs:*\n\n" +
			"🔹 *Engineering:*\n" +
			"   • B.Tech (CS, IT, Mechanical, Civil, ECE)\n" +
			"   • M.Tech (AI, Data Science, Structural Eng)\n\n" +
			"🔹 *Management:*\n" +
			"   • BBA, MBA (Finance, Marketing, HR)\n\n" +
			"🔹 *Computer Applications:*\n" +
			"   • BCA, MCA\n\n" +
			"💡 *Duration:* 3-4 years | *Seats:* 60-120 per course",
		Keywords: []string{"courses", "programs", "degrees", "btech", "mba", "mca"},
		Category: "ACADEMICS",
		Priority: 1,
	},
	{
		ID: "fees",
		Response: "💰 *Fee Structure (Annual):*\n\n" +
			"• B.Tech: ₹95,000 + ₹15,000 (development fee)\n" +
			"• M.Tech: ₹85,000 + ₹12,000 (development fee)\n" +
			"• MBA: ₹1,15,000 + ₹20,000 (development fee)\n" +
			"• MCA: ₹75,000 + ₹10,000 (development fee)\n\n" +
			"💳 *Payment Options:* Installments available",
		Keywords: []string{"fees", "fee", "tuition", "cost", "payment"},
		Category: "FINANCE",
		Priority: 2,
	},
	{
		ID: "hostel",
		Response: "🏠 *Hostel Facilities:*\n\n" +
			"✅ Separate hostels for Boys & Girls\n" +
			"✅ AC/Non-AC rooms available\n" +
			"✅ WiFi, Laundry, Gym, Common Room\n" +
			"✅ Mess with vegetarian & non-vegetarian options\n" +
			"✅ 24/7 Security & Medical facilities\n\n" +
			"💵 *Hostel Fees:* ₹45,000 - ₹85,000 per year",
		Keywords: []string{"hostel", "accommodation", "stay", "lodging"},
		Category: "CAMPUS_LIFE",
		Priority: 2,
	},
	{
		ID: "placements",
		Response: "🏢 *Placement Statistics (2024):*\n\n" +
			"📊 *Overall Placement Rate:* 92%\n" +
			"💼 *Highest Package:* ₹42 LPA (Amazon)\n" +
			"💰 *Average Package:* ₹8.5 LPA\n\n" +
			"🏆 *Top Recruiters:*\n" +
			"• Tech: Google, Microsoft, Amazon, TCS, Infosys\n" +
			"• Finance: Goldman Sachs, Morgan Stanley\n" +
			"• Consulting: Deloitte, PwC, EY\n\n" +
			"🎯 *Training:* Dedicated placement cell with mock interviews",
		Keywords: []string{"placement", "job", "career", "recruitment", "company"},
		Category: "CAREER",
		Priority: 1,
	},
	{
		ID: "library",
		Response: "📖 *Central Library:*\n\n" +
			"🕐 *Timings:* 8:00 AM - 10:00 PM (Mon-Sat)\n" +
			"📚 *Collection:* 50,000+ books, 100+ journals\n" +
			"💻 *Digital Resources:*\n" +
			"   • Online databases access\n" +
			"   • E-books and E-journals\n" +
			"   • Computer lab with internet\n\n" +
			"🎧 *Study Spaces:* Silent zones, Group study rooms",
		Keywords: []string{"library", "books", "study", "research"},
		Category: "FACILITIES",
		Priority: 3,
	},
	{
		ID: "scholarship",
		Response: "🎗️ *Scholarship Programs:*\n\n" +
			"• Merit-based: 100% fee waiver for top rankers\n" +
			"• Sports quota: Up to 50% fee waiver\n" +
			"• EWS category: As per government norms\n" +
			"• SC/ST scholarships available\n\n" +
			"📝 Apply within 15 days of admission",
		Keywords: []string{"scholarship", "financial aid", "waiver", "free"},
		Category: "FINANCE",
		Priority: 2,
	},
	{
		ID: "campus",
		Response: "🏛️ *Campus Highlights:*\n\n" +
			"• 50-acre green campus\n" +
			"• Smart classrooms with projectors\n" +
			"• 10+ specialized laboratories\n" +
			"• Sports complex & swimming pool\n" +
			"• Cafeteria & food court\n" +
			"• Medical center with ambulance",
		Keywords: []string{"campus", "infrastructure", "facilities", "building"},
		Category: "FACILITIES",
		Priority: 3,
	},
}

// BuiltinTopics returns a copy of the compiled-in topics.
func BuiltinTopics() []Topic {
	out := make([]Topic, len(builtinTopics))
	for i, t := range builtinTopics {
		out[i] = clone(t)
	}
	return out
}

// Default builds the store from the compiled-in topics.
func Default() *Store {
	s, err := New(builtinTopics...)
	if err != nil {
		panic("knowledge: builtin topics: " + err.Error())
	}
	return s
}

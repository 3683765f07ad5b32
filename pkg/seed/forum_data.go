package seed

// CategoryRecord is one row of the static forum category dataset.
type CategoryRecord struct {
	Slug        string
	Title       string
	Description string
	Position    int
}

// PostRecord is one starter post; CategorySlug ties it to its category.
type PostRecord struct {
	CategorySlug string
	Title        string
	Body         string
	Author       string
	Pinned       bool
}

// Categories is the fixed forum structure, ordered by Position.
var Categories = []CategoryRecord{
	{Slug: "announcements", Title: "Announcements", Description: "News from the mrgcar team.", Position: 1},
	{Slug: "general", Title: "General Discussion", Description: "Anything on wheels.", Position: 2},
	{Slug: "buying-advice", Title: "Buying Advice", Description: "Help choosing your next car.", Position: 3},
	{Slug: "maintenance", Title: "Maintenance & Repair", Description: "Keep it running.", Position: 4},
	{Slug: "electric", Title: "Electric & Hybrid", Description: "Batteries, charging, range.", Position: 5},
	{Slug: "marketplace", Title: "Marketplace Feedback", Description: "Questions about listings.", Position: 6},
}

// Posts are the starter threads.
var Posts = []PostRecord{
	{
		CategorySlug: "announcements",
		Title:        "Welcome to the mrgcar forum",
		Body:         "Introduce yourself and read the house rules before posting. Be kind, stay on topic, no private sale spam outside the marketplace section.",
		Author:       "mrgcar-team",
		Pinned:       true,
	},
	{
		CategorySlug: "announcements",
		Title:        "Listing photos are live",
		Body:         "You can now attach a photo to every listing. Existing listings can be updated from the seller dashboard.",
		Author:       "mrgcar-team",
	},
	{
		CategorySlug: "general",
		Title:        "What was your first car?",
		Body:         "Mine was a 1998 Fabia with roll-up windows and a cassette deck. Still miss it. What did you start with?",
		Author:       "petrolhead42",
	},
	{
		CategorySlug: "buying-advice",
		Title:        "Estate or SUV for a family of five?",
		Body:         "Two kids, a dog, and a lot of camping gear. The Octavia combi looks great on paper but the Kuga has more ground clearance. Experiences?",
		Author:       "weekendcamper",
	},
	{
		CategorySlug: "maintenance",
		Title:        "DSG service interval reality check",
		Body:         "Dealer says every 60k km, the internet says oil and filter every 40k to be safe. What do you actually do?",
		Author:       "gearboxsceptic",
	},
	{
		CategorySlug: "electric",
		Title:        "Winter range drop: what to expect",
		Body:         "First winter with an EV. Seeing about 25% less range at -10C with the heat pump running. Is that normal?",
		Author:       "ampere-hour",
	},
	{
		CategorySlug: "marketplace",
		Title:        "How do I report a suspicious listing?",
		Body:         "Found a listing priced way under market with stock photos. Is there a report button or should I mail support?",
		Author:       "carefulbuyer",
	},
}

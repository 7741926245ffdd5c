package model

var categories = [NumCategories]categoryInfo{
	Ocean: {
		key:   "ocean",
		name:  "Ocean Threats",
		color: "#3B82F6",
		items: []ThreatItem{
			{
				ID:       "plastic",
				Title:    "Plastic Pollution",
				Problem:  "Turtles mistake plastic bags for jellyfish and eat them, causing intestinal blockages and death.",
				Solution: "Use reusable bags, reduce single-use plastics, and participate in beach cleanups.",
				Icon:     "🥤",
				Color:    "#3B82F6",
			},
			{
				ID:       "fishing",
				Title:    "Fishing Nets & Gear",
				Problem:  "Abandoned fishing gear entangles turtles, causing injury, preventing them from feeding, and sometimes drowning them.",
				Solution: `Support sustainable fishing practices and organizations that clean up "ghost nets" from the ocean.`,
				Icon:     "🎣",
				Color:    "#1D4ED8",
			},
			{
				ID:       "boats",
				Title:    "Boat Strikes",
				Problem:  "Collisions with boats can injure or kill turtles when they surface to breathe.",
				Solution: "Follow speed restrictions in turtle habitats and watch for turtles when boating.",
				Icon:     "🚤",
				Color:    "#2563EB",
			},
		},
	},
	Beach: {
		key:   "beach",
		name:  "Beach Dangers",
		color: "#EAB308",
		items: []ThreatItem{
			{
				ID:       "development",
				Title:    "Coastal Development",
				Problem:  "Construction on nesting beaches destroys habitat and creates light pollution that disorients hatchlings.",
				Solution: "Support turtle-friendly lighting and protected beach areas for nesting.",
				// 🏗️ carries a variation selector that renders at
				// inconsistent widths across terminals.
				Icon:  "🏗",
				Color: "#CA8A04",
			},
			{
				ID:       "nests",
				Title:    "Nest Disturbance",
				Problem:  "Human activity and predators can damage or destroy turtle nests and eggs.",
				Solution: "Keep distance from marked turtle nests and participate in nest monitoring programs.",
				Icon:     "🥚",
				Color:    "#EAB308",
			},
			{
				ID:       "lights",
				Title:    "Light Pollution",
				Problem:  "Artificial lights confuse hatchlings, causing them to crawl away from the ocean instead of toward it.",
				Solution: "Use turtle-friendly lighting near beaches and close curtains at night during hatching season.",
				Icon:     "💡",
				Color:    "#FACC15",
			},
		},
	},
	Climate: {
		key:   "climate",
		name:  "Climate Impacts",
		color: "#EF4444",
		items: []ThreatItem{
			{
				ID:       "warming",
				Title:    "Rising Temperatures",
				Problem:  "Warmer sand produces more female turtles, disrupting the natural gender balance of populations.",
				Solution: "Support climate change initiatives and organizations working on turtle conservation.",
				Icon:     "🌡",
				Color:    "#EF4444",
			},
			{
				ID:       "habitat",
				Title:    "Habitat Loss",
				Problem:  "Rising sea levels and stronger storms from climate change erode nesting beaches.",
				Solution: "Support coastal habitat protection and restoration projects.",
				Icon:     "🌊",
				Color:    "#DC2626",
			},
			{
				ID:       "coral",
				Title:    "Coral Reef Damage",
				Problem:  "Climate change damages coral reefs where many turtles feed and find shelter.",
				Solution: "Reduce your carbon footprint and support marine protected areas.",
				Icon:     "🪸",
				Color:    "#F87171",
			},
		},
	},
}

var actionTips = [...]ActionTip{
	{
		Title:       "Reduce Plastic Use",
		Description: "Bring reusable bags, bottles, and straws to cut down on plastic waste that might end up in the ocean.",
		Icon:        "♻",
	},
	{
		Title:       "Join Beach Cleanups",
		Description: "Participate in organized beach cleanups to remove harmful debris from turtle habitats.",
		Icon:        "🧹",
	},
	{
		Title:       "Support Conservation",
		Description: "Donate to or volunteer with turtle conservation organizations working to protect turtles.",
		Icon:        "🐢",
	},
	{
		Title:       "Spread Awareness",
		Description: "Share what you've learned about turtle conservation with friends and family.",
		Icon:        "📢",
	},
}

var funFacts = [...]FunFact{
	"Some sea turtles can hold their breath underwater for over 4 hours!",
	"Leatherback turtles can dive deeper than 3,000 feet—deeper than many whales!",
	"Sea turtles have existed for more than 100 million years, surviving the dinosaurs!",
	"Baby turtles can swim for 24-48 hours straight after reaching the ocean!",
	"Sea turtles return to the same beach where they were born to lay their eggs.",
}

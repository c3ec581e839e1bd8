// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package classifier

// categoryKeywords maps each category to its ordered list of lowercase
// keywords. Categorization is a pure substring count over this table —
// configuration, not learning. Order matters twice: the first category to
// reach the highest count wins ties, and tag generation takes the first
// matching keywords in table order.
var categoryKeywords = []categoryEntry{
	{"coding", []string{
		"code", "debug", "python", "javascript", "function", "bug", "error",
		"compile", "api", "algorithm", "programming", "script", "variable",
		"syntax", "git",
	}},
	{"writing", []string{
		"write", "essay", "article", "blog", "story", "edit", "grammar",
		"paragraph", "draft", "summarize", "rewrite", "tone",
	}},
	{"marketing", []string{
		"marketing", "seo", "campaign", "audience", "brand", "social media",
		"advertising", "conversion", "engagement", "newsletter",
	}},
	{"business", []string{
		"business", "strategy", "revenue", "meeting", "proposal", "budget",
		"startup", "investor", "pitch", "roadmap", "kpi",
	}},
	{"creative", []string{
		"creative", "design", "art", "music", "poem", "brainstorm", "idea",
		"imagine", "character", "scene",
	}},
	{"education", []string{
		"learn", "teach", "explain", "study", "course", "lesson", "student",
		"homework", "quiz", "concept",
	}},
}

type categoryEntry struct {
	name     string
	keywords []string
}

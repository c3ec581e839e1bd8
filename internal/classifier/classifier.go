// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package classifier provides keyword-based auto-categorization, tag
// generation, and canned answer templates for prompts. Everything here is
// a deterministic function of static tables and the input text.
package classifier

import (
	"regexp"
	"strings"

	"promptvault/internal/models"
)

// Tag generation limits.
const (
	maxWordTags    = 5
	maxKeywordTags = 3
	minTokenLen    = 4
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

// Categorize picks the category whose keywords appear most often as
// substrings of the text. Ties keep the first-seen leader; a zero score
// across the board falls back to the general category.
func Categorize(text string) string {
	lowered := strings.ToLower(text)

	best := models.CategoryGeneral
	bestCount := 0
	for _, entry := range categoryKeywords {
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				count++
			}
		}
		if count > bestCount {
			best = entry.name
			bestCount = count
		}
	}
	return best
}

// GenerateTags derives a tag set from the text and its category: the
// category name itself, up to three of the category's keywords that
// literally occur in the text, and up to five words longer than three
// characters. The union is deduplicated preserving first occurrence.
func GenerateTags(text, category string) []string {
	lowered := strings.ToLower(text)

	var words []string
	for _, tok := range strings.Fields(nonWord.ReplaceAllString(lowered, "")) {
		if len(tok) >= minTokenLen {
			words = append(words, tok)
			if len(words) == maxWordTags {
				break
			}
		}
	}

	var matched []string
	for _, kw := range keywordsFor(category) {
		if strings.Contains(lowered, kw) {
			matched = append(matched, kw)
			if len(matched) == maxKeywordTags {
				break
			}
		}
	}

	tags := make([]string, 0, 1+len(matched)+len(words))
	seen := make(map[string]bool)
	for _, t := range append(append([]string{category}, matched...), words...) {
		if t != "" && !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

// keywordsFor returns the keyword list for a category, or nil when the
// category has no table entry (e.g. general).
func keywordsFor(category string) []string {
	for _, entry := range categoryKeywords {
		if entry.name == category {
			return entry.keywords
		}
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"promptvault/internal/models"
)

// Sort keys accepted by Query. An unrecognized key leaves the filtered
// order unchanged.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortMostViewed   = "mostViewed"
	SortRating       = "rating"
	SortAlphabetical = "alphabetical"
)

// DateRange bounds a timestamp filter, inclusive on both ends.
type DateRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// QueryFilter composes optional filters conjunctively. Zero values mean
// "no constraint"; Folder "all" matches everything.
type QueryFilter struct {
	Folder    string
	Category  string
	Search    string
	MinRating int
	DateRange *DateRange
	SortBy    string
}

// Query filters and sorts a working copy of the record list. The
// underlying document order is never mutated.
func (s *Store) Query(f QueryFilter) []models.Prompt {
	s.mu.Lock()
	working := make([]models.Prompt, 0, len(s.doc.Prompts))
	for _, p := range s.doc.Prompts {
		if matches(p, f) {
			working = append(working, p.Clone())
		}
	}
	s.mu.Unlock()

	sortPrompts(working, f.SortBy)
	return working
}

// matches applies every set filter; all must pass.
func matches(p models.Prompt, f QueryFilter) bool {
	if f.Folder != "" && f.Folder != models.FolderAll && p.Folder != f.Folder {
		return false
	}
	if f.Category != "" && f.Category != models.FolderAll && p.Category != f.Category {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.DateRange != nil && (p.Timestamp < f.DateRange.Start || p.Timestamp > f.DateRange.End) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Question), needle) &&
			!strings.Contains(strings.ToLower(p.Answer), needle) &&
			!tagMatch(p.Tags, needle) {
			return false
		}
	}
	return true
}

func tagMatch(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// sortPrompts orders the working copy in place.
func sortPrompts(prompts []models.Prompt, sortBy string) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Timestamp > prompts[j].Timestamp
		})
	case SortOldest:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Timestamp < prompts[j].Timestamp
		})
	case SortMostViewed:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Views > prompts[j].Views
		})
	case SortRating:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Rating > prompts[j].Rating
		})
	case SortAlphabetical:
		// Collators are not safe for concurrent use, so build one per sort.
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(prompts, func(i, j int) bool {
			return c.CompareString(prompts[i].Question, prompts[j].Question) < 0
		})
	}
}

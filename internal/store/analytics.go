// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"promptvault/internal/models"
)

// recentWindow is the lookback used for the "recent" analytics bucket.
const recentWindow = 30 * 24 * time.Hour

// CategoryScore is one entry of the per-category mean score ranking.
type CategoryScore struct {
	Category string  `json:"category"`
	AvgScore float64 `json:"avgScore"`
	Count    int     `json:"count"`
}

// Stats aggregates the full record set in a single pass. Means are
// rounded to one decimal. StorageBytes is the backend's size estimate.
type Stats struct {
	TotalPrompts  int             `json:"totalPrompts"`
	TotalViews    int             `json:"totalViews"`
	AvgScore      float64         `json:"avgScore"`
	AvgRating     float64         `json:"avgRating"`
	ByCategory    map[string]int  `json:"byCategory"`
	ByFolder      map[string]int  `json:"byFolder"`
	TopCategories []CategoryScore `json:"topCategories"`
	RecentCount   int             `json:"recentCount"`
	RecentPercent float64         `json:"recentPercent"`
	StorageBytes  int64           `json:"storageBytes"`
}

// Stats computes analytics over the current document. Pure with respect
// to the document — nothing is mutated.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	prompts := make([]models.Prompt, len(s.doc.Prompts))
	copy(prompts, s.doc.Prompts)
	s.mu.Unlock()

	stats := Stats{
		TotalPrompts: len(prompts),
		ByCategory:   make(map[string]int),
		ByFolder:     make(map[string]int),
	}

	cutoff := time.Now().Add(-recentWindow).UnixMilli()
	scoreSums := make(map[string]int)
	var scoreTotal, ratingTotal int

	for _, p := range prompts {
		stats.TotalViews += p.Views
		scoreTotal += p.Score
		ratingTotal += p.Rating
		stats.ByCategory[p.Category]++
		stats.ByFolder[p.Folder]++
		scoreSums[p.Category] += p.Score
		if p.Timestamp >= cutoff {
			stats.RecentCount++
		}
	}

	if len(prompts) > 0 {
		n := float64(len(prompts))
		stats.AvgScore = round1(float64(scoreTotal) / n)
		stats.AvgRating = round1(float64(ratingTotal) / n)
		stats.RecentPercent = round1(float64(stats.RecentCount) / n * 100)
	}

	for category, count := range stats.ByCategory {
		stats.TopCategories = append(stats.TopCategories, CategoryScore{
			Category: category,
			AvgScore: round1(float64(scoreSums[category]) / float64(count)),
			Count:    count,
		})
	}
	sort.Slice(stats.TopCategories, func(i, j int) bool {
		a, b := stats.TopCategories[i], stats.TopCategories[j]
		if a.AvgScore != b.AvgScore {
			return a.AvgScore > b.AvgScore
		}
		return a.Category < b.Category
	})

	size, err := s.backend.Size(ctx)
	if err != nil {
		slog.Warn("storage size estimate failed", "error", err)
	}
	stats.StorageBytes = size

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

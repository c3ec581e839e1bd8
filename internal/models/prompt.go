// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Prompt is a single question/answer record in the vault.
//
// Timestamps are millisecond epoch values to stay wire-compatible with
// exports produced by earlier versions. Timestamp is set once at creation
// and drives the newest/oldest sort; UpdatedAt changes on every edit but
// is deliberately not used for recency ordering.
type Prompt struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Folder    string   `json:"folder"`
	Rating    int      `json:"rating"`
	Views     int      `json:"views"`
	Score     int      `json:"score"`
	Timestamp int64    `json:"timestamp"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Rating bounds. Rating mutations clamp out-of-range values; document
// validation rejects them.
const (
	MinRating = 0
	MaxRating = 5
)

// Score bounds for the synthetic quality score assigned at creation.
const (
	MinScore = 7
	MaxScore = 10
)

// NowMillis returns the current time as a millisecond epoch value.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ClampRating forces a rating into the [MinRating, MaxRating] range.
func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Clone returns a deep copy of the prompt.
func (p Prompt) Clone() Prompt {
	c := p
	c.Tags = append([]string(nil), p.Tags...)
	return c
}

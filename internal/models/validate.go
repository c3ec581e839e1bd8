// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// ValidationResult is the outcome of a structural document check.
// Validation never fails with an error — it reports problems as a list
// so the caller can decide whether to discard, log, or surface them.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateDocument performs the structural check applied to loaded and
// imported documents. Every prompt needs a non-empty id, question, answer
// and category, and ratings must sit inside the allowed range. Type errors
// are caught earlier by JSON decoding, so this only inspects values.
func ValidateDocument(doc Document) ValidationResult {
	var errs []string

	seen := make(map[string]bool, len(doc.Prompts))
	for i, p := range doc.Prompts {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("record %d: missing id", i))
		} else if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("record %d: duplicate id %q", i, p.ID))
		} else {
			seen[p.ID] = true
		}
		if p.Question == "" {
			errs = append(errs, fmt.Sprintf("record %d: missing question", i))
		}
		if p.Answer == "" {
			errs = append(errs, fmt.Sprintf("record %d: missing answer", i))
		}
		if p.Category == "" {
			errs = append(errs, fmt.Sprintf("record %d: missing category", i))
		}
		if p.Rating < MinRating || p.Rating > MaxRating {
			errs = append(errs, fmt.Sprintf("record %d: rating %d out of range", i, p.Rating))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"promptvault/internal/classifier"
	"promptvault/internal/models"
)

// sampleQuestions seed an empty vault so the UI never starts blank.
// Categories, tags and answers are derived the same way AddPrompt derives
// them, so the samples exercise the real pipeline.
var sampleQuestions = []string{
	"How do I debug this Python function that keeps raising a KeyError?",
	"Write a blog article introduction about remote work productivity",
	"What marketing campaign would reach a developer audience best?",
	"Explain the concept of compound interest to a teenager",
	"Brainstorm character ideas for a short story set on a space station",
}

// seedSampleDataLocked populates the record list with sample prompts.
// Callers must hold s.mu and ensure the list is empty. Returns the number
// of records seeded.
func (s *Store) seedSampleDataLocked() int {
	for _, question := range sampleQuestions {
		category := classifier.Categorize(question)
		now := models.NowMillis()
		p := models.Prompt{
			ID:        uuid.NewString(),
			Question:  question,
			Answer:    classifier.AnswerTemplate(category),
			Category:  category,
			Tags:      classifier.GenerateTags(question, category),
			Folder:    models.FolderDefault,
			Score:     models.MinScore + rand.Intn(models.MaxScore-models.MinScore+1),
			Timestamp: now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.doc.Prompts = append([]models.Prompt{p}, s.doc.Prompts...)
	}

	slog.Info("seeded sample prompts", "count", len(sampleQuestions))
	return len(sampleQuestions)
}

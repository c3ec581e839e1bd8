// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"promptvault/internal/classifier"
	"promptvault/internal/models"
)

// AddOptions carries the optional overrides for AddPrompt. Empty fields
// are derived: category from the keyword table, tags from the text, score
// randomly within its range, folder defaulting to the default folder.
type AddOptions struct {
	Category string
	Tags     []string
	Folder   string
	Rating   int
	Score    int
}

// PromptUpdate is the shallow-merge patch for UpdatePrompt. Nil fields are
// left untouched. When Question changes and Category/Tags are not supplied
// in the same update, both are re-derived from the new question.
type PromptUpdate struct {
	Question *string  `json:"question"`
	Answer   *string  `json:"answer"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
	Folder   *string  `json:"folder"`
	Rating   *int     `json:"rating"`
}

// AddPrompt creates a record from the question, deriving whatever the
// caller did not supply, and prepends it to the record list.
func (s *Store) AddPrompt(question, answer string, opts AddOptions) (models.Prompt, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Prompt{}, fmt.Errorf("question must not be empty")
	}

	category := opts.Category
	if category == "" {
		category = classifier.Categorize(question)
	}
	tags := opts.Tags
	if tags == nil {
		tags = classifier.GenerateTags(question, category)
	}
	if answer == "" {
		answer = classifier.AnswerTemplate(category)
	}
	score := opts.Score
	if score == 0 {
		score = models.MinScore + rand.Intn(models.MaxScore-models.MinScore+1)
	}

	now := models.NowMillis()
	p := models.Prompt{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		Category:  category,
		Tags:      tags,
		Folder:    opts.Folder,
		Rating:    models.ClampRating(opts.Rating),
		Score:     score,
		Timestamp: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Folder == "" {
		p.Folder = models.FolderDefault
	}

	s.mu.Lock()
	if !s.doc.HasFolder(p.Folder) {
		p.Folder = models.FolderDefault
	}
	s.doc.Prompts = append([]models.Prompt{p}, s.doc.Prompts...)
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicPromptAdded, p.Clone())
	return p, nil
}

// UpdatePrompt shallow-merges the patch onto the record with the given id
// and refreshes updatedAt. Returns ErrNotFound for a missing id.
func (s *Store) UpdatePrompt(id string, patch PromptUpdate) (models.Prompt, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Prompt{}, fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}

	p := &s.doc.Prompts[idx]
	questionChanged := false
	if patch.Question != nil && strings.TrimSpace(*patch.Question) != "" && *patch.Question != p.Question {
		p.Question = strings.TrimSpace(*patch.Question)
		questionChanged = true
	}
	if patch.Answer != nil {
		p.Answer = *patch.Answer
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	} else if questionChanged {
		p.Category = classifier.Categorize(p.Question)
	}
	if patch.Tags != nil {
		p.Tags = dedupe(patch.Tags)
	} else if questionChanged {
		p.Tags = classifier.GenerateTags(p.Question, p.Category)
	}
	if patch.Folder != nil && s.doc.HasFolder(*patch.Folder) {
		p.Folder = *patch.Folder
	}
	if patch.Rating != nil {
		p.Rating = models.ClampRating(*patch.Rating)
	}
	p.UpdatedAt = models.NowMillis()

	updated := p.Clone()
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicPromptUpdated, updated)
	return updated, nil
}

// DeletePrompt removes the record with the given id. Returns ErrNotFound
// for a missing id.
func (s *Store) DeletePrompt(id string) (models.Prompt, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Prompt{}, fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}
	removed := s.doc.Prompts[idx].Clone()
	s.doc.Prompts = append(s.doc.Prompts[:idx], s.doc.Prompts[idx+1:]...)
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicPromptDeleted, removed)
	return removed, nil
}

// BatchDelete removes every record it can, continuing past missing ids
// (each logged), and returns the successfully deleted records. Emits a
// single batchDeleted event with that list when at least one record was
// removed; deleting nothing emits nothing.
func (s *Store) BatchDelete(ids []string) []models.Prompt {
	deleted := make([]models.Prompt, 0, len(ids))

	s.mu.Lock()
	for _, id := range ids {
		idx := s.indexLocked(id)
		if idx < 0 {
			slog.Warn("batch delete: prompt not found", "id", id)
			continue
		}
		deleted = append(deleted, s.doc.Prompts[idx].Clone())
		s.doc.Prompts = append(s.doc.Prompts[:idx], s.doc.Prompts[idx+1:]...)
	}
	if len(deleted) > 0 {
		s.markDirtyLocked()
	}
	s.mu.Unlock()

	if len(deleted) > 0 {
		s.scheduleSave()
		s.bus.Publish(TopicBatchDeleted, deleted)
	}
	return deleted
}

// GetPrompt returns the record and whether it exists. Read paths use the
// found flag instead of an error.
func (s *Store) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.doc.Prompts[idx].Clone(), true
	}
	return models.Prompt{}, false
}

// IncrementViews bumps the record's view counter. Silent no-op when the
// id is unknown.
func (s *Store) IncrementViews(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.doc.Prompts[idx].Views++
	s.doc.Prompts[idx].UpdatedAt = models.NowMillis()
	updated := s.doc.Prompts[idx].Clone()
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicViewsIncremented, updated)
}

// UpdateRating sets the record's rating, clamped to the allowed range.
// Silent no-op when the id is unknown.
func (s *Store) UpdateRating(id string, rating int) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.doc.Prompts[idx].Rating = models.ClampRating(rating)
	s.doc.Prompts[idx].UpdatedAt = models.NowMillis()
	updated := s.doc.Prompts[idx].Clone()
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicRatingUpdated, updated)
}

// indexLocked finds the record position for an id, -1 when absent.
// Callers must hold s.mu.
func (s *Store) indexLocked(id string) int {
	for i := range s.doc.Prompts {
		if s.doc.Prompts[i].ID == id {
			return i
		}
	}
	return -1
}

// dedupe removes duplicate tags preserving first occurrence.
func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

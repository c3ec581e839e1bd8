// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "promptvault/internal/models"

// Topics published by the store. Payload shapes:
//
//	TopicInitialized     models.Document (full snapshot)
//	TopicSaved           SavedEvent
//	TopicSaveError       string (error text)
//	TopicPromptAdded     models.Prompt
//	TopicPromptUpdated   models.Prompt
//	TopicPromptDeleted   models.Prompt
//	TopicViewsIncremented models.Prompt
//	TopicRatingUpdated   models.Prompt
//	TopicFolderAdded     string (folder name)
//	TopicFolderDeleted   FolderDeletedEvent
//	TopicPromptsMoved    PromptsMovedEvent
//	TopicBatchDeleted    []models.Prompt
//	TopicDataImported    DataImportedEvent
//	TopicDataCleared     models.Document (fresh snapshot)
//	TopicSampleDataAdded int (number of seeded prompts)
const (
	TopicInitialized      = "initialized"
	TopicSaved            = "saved"
	TopicSaveError        = "saveError"
	TopicPromptAdded      = "promptAdded"
	TopicPromptUpdated    = "promptUpdated"
	TopicPromptDeleted    = "promptDeleted"
	TopicViewsIncremented = "viewsIncremented"
	TopicRatingUpdated    = "ratingUpdated"
	TopicFolderAdded      = "folderAdded"
	TopicFolderDeleted    = "folderDeleted"
	TopicPromptsMoved     = "promptsMoved"
	TopicBatchDeleted     = "batchDeleted"
	TopicDataImported     = "dataImported"
	TopicDataCleared      = "dataCleared"
	TopicSampleDataAdded  = "sampleDataAdded"
)

// Topics returns every topic the store publishes, in a stable order.
// The SSE endpoint subscribes to all of them.
func Topics() []string {
	return []string{
		TopicInitialized, TopicSaved, TopicSaveError,
		TopicPromptAdded, TopicPromptUpdated, TopicPromptDeleted,
		TopicViewsIncremented, TopicRatingUpdated,
		TopicFolderAdded, TopicFolderDeleted, TopicPromptsMoved,
		TopicBatchDeleted, TopicDataImported, TopicDataCleared,
		TopicSampleDataAdded,
	}
}

// SavedEvent is the payload for TopicSaved.
type SavedEvent struct {
	LastModified int64 `json:"lastModified"`
	Bytes        int   `json:"bytes"`
}

// FolderDeletedEvent is the payload for TopicFolderDeleted.
type FolderDeletedEvent struct {
	Folder     string `json:"folder"`
	Reassigned int    `json:"reassigned"`
}

// PromptsMovedEvent is the payload for TopicPromptsMoved.
type PromptsMovedEvent struct {
	Prompts []models.Prompt `json:"records"`
	Folder  string          `json:"folder"`
}

// DataImportedEvent is the payload for TopicDataImported.
type DataImportedEvent struct {
	Count int  `json:"count"`
	Merge bool `json:"merge"`
}

package hfconfig

import (
	"time"

	"vipcourses/models"
)

// nextRevision snapshots the config's current content, styling, rules and
// flags as version+1. Revisions are archival only; nothing ever applies one
// back onto the live document.
func nextRevision(cfg *models.HeaderFooterConfig, actor, notes string) models.Revision {
	return models.Revision{
		Version:      cfg.Version + 1,
		Content:      cfg.Content,
		Styling:      cfg.Styling,
		DisplayRules: cfg.DisplayRules,
		IsActive:     cfg.IsActive,
		IsPublished:  cfg.IsPublished,
		UpdatedAt:    time.Now(),
		UpdatedBy:    actor,
		Notes:        notes,
	}
}

// applyRevision bumps the document's version and appends the snapshot.
func applyRevision(cfg *models.HeaderFooterConfig, rev models.Revision) {
	cfg.Version = rev.Version
	cfg.Revisions = append(cfg.Revisions, rev)
}

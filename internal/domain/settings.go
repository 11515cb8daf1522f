package domain

import (
	"context"
	"errors"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// UpdateContent replaces the site copy. The settings row carries the
// automations document beside the content, so the current stored
// sibling is read back and written together with the new content.
func (s *Store) UpdateContent(ctx context.Context, ident access.Identity, content models.SiteContent) (Result, error) {
	if err := requireEditor(ident); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.content = content
	s.mu.Unlock()

	contentRec, err := models.ToRecord(content)
	if err != nil {
		return notPersisted(err), nil
	}
	automations := s.siblingDocument(ctx, "automations")
	if automations == nil {
		rec, err := models.ToRecord(s.Automations())
		if err != nil {
			return notPersisted(err), nil
		}
		automations = rec
	}

	row := store.Record{
		"id":          store.SettingsRowID,
		"content":     map[string]any(contentRec),
		"automations": map[string]any(automations),
	}
	if _, err := s.backend.Upsert(ctx, store.SiteSettings, row); err != nil {
		s.log.Warn("persisting site content failed", zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

// UpdateAutomations replaces the automation toggles, preserving the
// stored content sibling.
func (s *Store) UpdateAutomations(ctx context.Context, ident access.Identity, automations models.AutomationSettings) (Result, error) {
	if err := requireEditor(ident); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.automations = automations
	s.mu.Unlock()

	automationsRec, err := models.ToRecord(automations)
	if err != nil {
		return notPersisted(err), nil
	}
	content := s.siblingDocument(ctx, "content")
	if content == nil {
		rec, err := models.ToRecord(s.Content())
		if err != nil {
			return notPersisted(err), nil
		}
		content = rec
	}

	row := store.Record{
		"id":          store.SettingsRowID,
		"content":     map[string]any(content),
		"automations": map[string]any(automationsRec),
	}
	if _, err := s.backend.Upsert(ctx, store.SiteSettings, row); err != nil {
		s.log.Warn("persisting automations failed", zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

// siblingDocument reads one half of the settings row from the backend,
// or nil when the row or the half is missing.
func (s *Store) siblingDocument(ctx context.Context, key string) store.Record {
	settings, err := s.backend.SelectOne(ctx, store.SiteSettings, "id", store.SettingsRowID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("reading settings sibling failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	doc := subDocument(settings, key)
	if len(doc) == 0 {
		return nil
	}
	return doc
}

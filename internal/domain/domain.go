// Package domain holds the in-memory snapshot of the site and applies
// every mutation to it before writing through to the persistence layer.
// Mutations never roll back: a failed write leaves local state in place
// and surfaces through the returned Result instead.
package domain

import (
	"context"
	"errors"
	"sync"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/mail"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// LoadState tracks hydration of a collection group.
type LoadState int

const (
	LoadUninitialized LoadState = iota
	LoadLoading
	LoadReady
)

// Mailer is the outbound email collaborator. Sends may fail or no-op;
// the domain logs and moves on.
type Mailer interface {
	SendContactAutoReply(to string, data mail.ContactAutoReplyData) error
	SendApplicationNotify(to string, data mail.ApplicationNotifyData) error
	SendApplicationApproved(to, html string) error
}

// Options tunes domain behavior.
type Options struct {
	// RecoveryLogin enables the built-in owner credential.
	RecoveryLogin bool
}

// Store is the domain store. Construct it with New; it is never a
// package global.
type Store struct {
	backend store.Store
	mailer  Mailer
	log     *zap.Logger
	opts    Options

	mu           sync.RWMutex
	projects     []models.Project
	content      models.SiteContent
	automations  models.AutomationSettings
	messages     []models.Message
	applications []models.JobApplication
	admins       []models.AdminUser
	publicState  LoadState
	privState    LoadState
}

// New builds a domain store over the given backend. Call LoadPublic
// before serving traffic.
func New(backend store.Store, mailer Mailer, log *zap.Logger, opts Options) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		backend:     backend,
		mailer:      mailer,
		log:         log,
		opts:        opts,
		content:     models.DefaultSiteContent(),
		automations: models.DefaultAutomations(),
	}
}

// LoadPublic hydrates projects and settings. Backend failures are
// logged and masked; the snapshot falls back to defaults so the site
// renders either way.
func (s *Store) LoadPublic(ctx context.Context) {
	content := models.DefaultSiteContent()
	automations := models.DefaultAutomations()
	var projects []models.Project

	recs, err := s.backend.SelectAll(ctx, store.Projects, store.OrderBy("date", false))
	if err != nil {
		s.log.Warn("loading projects failed, using defaults", zap.Error(err))
	} else {
		for _, rec := range recs {
			var p models.Project
			if err := models.FromRecord(rec, &p); err != nil {
				s.log.Warn("skipping undecodable project", zap.Error(err))
				continue
			}
			projects = append(projects, p)
		}
	}
	if len(projects) == 0 {
		projects = models.DefaultProjects()
	}

	settings, err := s.backend.SelectOne(ctx, store.SiteSettings, "id", store.SettingsRowID)
	switch {
	case err == nil:
		if doc := subDocument(settings, "content"); len(doc) > 0 {
			if err := models.FromRecord(doc, &content); err != nil {
				s.log.Warn("decoding site content failed, using defaults", zap.Error(err))
			}
		}
		if doc := subDocument(settings, "automations"); len(doc) > 0 {
			if err := models.FromRecord(doc, &automations); err != nil {
				s.log.Warn("decoding automations failed, using defaults", zap.Error(err))
			}
		}
	case errors.Is(err, store.ErrNotFound):
		// First boot, defaults apply until the operator saves.
	default:
		s.log.Warn("loading settings failed, using defaults", zap.Error(err))
	}

	s.mu.Lock()
	s.projects = projects
	s.content = content
	s.automations = automations
	s.publicState = LoadReady
	s.mu.Unlock()
}

// ensurePrivileged hydrates messages, applications and the admin roster
// on first authenticated access.
func (s *Store) ensurePrivileged(ctx context.Context) {
	s.mu.Lock()
	if s.privState != LoadUninitialized {
		s.mu.Unlock()
		return
	}
	s.privState = LoadLoading
	s.mu.Unlock()

	var messages []models.Message
	if recs, err := s.backend.SelectAll(ctx, store.Messages, store.OrderBy("date", false)); err != nil {
		s.log.Warn("loading messages failed", zap.Error(err))
	} else {
		for _, rec := range recs {
			var m models.Message
			if err := models.FromRecord(rec, &m); err == nil {
				messages = append(messages, m)
			}
		}
	}

	var applications []models.JobApplication
	if recs, err := s.backend.SelectAll(ctx, store.Applications, store.OrderBy("date", false)); err != nil {
		s.log.Warn("loading applications failed", zap.Error(err))
	} else {
		for _, rec := range recs {
			var a models.JobApplication
			if err := models.FromRecord(rec, &a); err == nil {
				applications = append(applications, a)
			}
		}
	}

	admins := s.fetchAdmins(ctx)

	s.mu.Lock()
	s.messages = messages
	s.applications = applications
	s.admins = admins
	s.privState = LoadReady
	s.mu.Unlock()
}

func (s *Store) fetchAdmins(ctx context.Context) []models.AdminUser {
	recs, err := s.backend.SelectAll(ctx, store.Admins)
	if err != nil {
		s.log.Warn("loading admins failed", zap.Error(err))
		return nil
	}
	var admins []models.AdminUser
	for _, rec := range recs {
		var a models.AdminUser
		if err := models.FromRecord(rec, &a); err == nil {
			admins = append(admins, a)
		}
	}
	return admins
}

// Content returns the current site copy.
func (s *Store) Content() models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Automations returns the current automation toggles.
func (s *Store) Automations() models.AutomationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.automations
}

// MaintenanceActive reports whether the public site is gated.
func (s *Store) MaintenanceActive() bool {
	return s.Automations().MaintenanceMode
}

// ApplicationsOpen reports whether join submissions are accepted.
func (s *Store) ApplicationsOpen() bool {
	return s.Automations().ApplicationsEnabled
}

// subDocument extracts a nested document field from a settings record.
func subDocument(rec store.Record, key string) store.Record {
	doc, ok := rec[key].(map[string]any)
	if !ok {
		return nil
	}
	return store.Record(doc)
}

// requireEditor rejects anonymous callers and roles below editor.
func requireEditor(ident access.Identity) error {
	if ident.IsZero() || !access.CanEdit(ident.Role) {
		return ErrForbidden
	}
	return nil
}

package domain

import (
	"context"
	"errors"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// Login checks a credential pair against the admins collection. The
// recovery credential, when enabled, grants owner access even with an
// empty or unreachable backend and repairs the seed data so ordinary
// logins work afterwards. Every failure collapses into
// ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, code string) (models.AdminUser, error) {
	if s.opts.RecoveryLogin && email == models.RecoveryEmail && code == models.RecoveryAccessCode {
		s.repairSeed(ctx)
		return models.RecoveryAdmin(), nil
	}

	rec, err := s.backend.SelectOne(ctx, store.Admins, "email", email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("login lookup failed", zap.Error(err))
		}
		return models.AdminUser{}, ErrInvalidCredentials
	}
	var admin models.AdminUser
	if err := models.FromRecord(rec, &admin); err != nil {
		s.log.Warn("decoding admin failed", zap.Error(err))
		return models.AdminUser{}, ErrInvalidCredentials
	}
	if admin.AccessCode == "" || admin.AccessCode != code {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	if !admin.Role.Valid() {
		admin.Role = access.RoleEditor
	}
	return admin, nil
}

// Logout purges the privileged collections from the snapshot. They
// reload on the next authenticated access.
func (s *Store) Logout() {
	s.mu.Lock()
	s.messages = nil
	s.applications = nil
	s.admins = nil
	s.privState = LoadUninitialized
	s.mu.Unlock()
}

// repairSeed makes sure the settings row and the recovery admin exist.
// Idempotent; every failure is logged and swallowed so the recovery
// login itself never fails.
func (s *Store) repairSeed(ctx context.Context) {
	_, err := s.backend.SelectOne(ctx, store.SiteSettings, "id", store.SettingsRowID)
	if errors.Is(err, store.ErrNotFound) {
		contentRec, cErr := models.ToRecord(s.Content())
		automationsRec, aErr := models.ToRecord(s.Automations())
		if cErr != nil || aErr != nil {
			s.log.Warn("encoding settings seed failed", zap.Errors("errors", []error{cErr, aErr}))
		} else {
			row := store.Record{
				"id":          store.SettingsRowID,
				"content":     map[string]any(contentRec),
				"automations": map[string]any(automationsRec),
			}
			if _, err := s.backend.Insert(ctx, store.SiteSettings, row); err != nil {
				s.log.Warn("seeding settings row failed", zap.Error(err))
			}
		}
	} else if err != nil {
		s.log.Warn("checking settings row failed", zap.Error(err))
	}

	_, err = s.backend.SelectOne(ctx, store.Admins, "email", models.RecoveryEmail)
	if errors.Is(err, store.ErrNotFound) {
		rec := store.Record{
			"email":       models.RecoveryEmail,
			"access_code": models.RecoveryAccessCode,
			"name":        models.RecoveryAdminName,
			"role":        string(access.RoleOwner),
		}
		if _, err := s.backend.Insert(ctx, store.Admins, rec); err != nil {
			s.log.Warn("seeding recovery admin failed", zap.Error(err))
		}
	} else if err != nil {
		s.log.Warn("checking recovery admin failed", zap.Error(err))
	}
}

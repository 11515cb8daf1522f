package domain

import (
	"context"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// Admins returns the dashboard roster. Owner only.
func (s *Store) Admins(ctx context.Context, ident access.Identity) ([]models.AdminUser, error) {
	if ident.IsZero() || !access.CanManageTeam(ident.Role) {
		return nil, ErrForbidden
	}
	s.ensurePrivileged(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AdminUser, len(s.admins))
	copy(out, s.admins)
	return out, nil
}

// AddAdmin creates a dashboard account. Owner only. On a successful
// write the roster is re-read so the stored id is authoritative.
func (s *Store) AddAdmin(ctx context.Context, ident access.Identity, admin models.AdminUser) (models.AdminUser, Result, error) {
	if ident.IsZero() || !access.CanManageTeam(ident.Role) {
		return models.AdminUser{}, Result{}, ErrForbidden
	}
	if !admin.Role.Valid() {
		return models.AdminUser{}, Result{}, ErrForbidden
	}
	s.ensurePrivileged(ctx)

	rec := store.Record{
		"name":        admin.Name,
		"email":       admin.Email,
		"access_code": admin.AccessCode,
		"role":        string(admin.Role),
	}
	stored, err := s.backend.Insert(ctx, store.Admins, rec)
	if err != nil {
		s.log.Warn("persisting admin failed", zap.String("email", admin.Email), zap.Error(err))
		if admin.ID == "" {
			admin.ID = localID()
		}
		s.mu.Lock()
		s.admins = append(s.admins, admin)
		s.mu.Unlock()
		return admin, notPersisted(err), nil
	}

	if err := models.FromRecord(stored, &admin); err != nil {
		s.log.Warn("decoding stored admin failed", zap.Error(err))
	}
	admins := s.fetchAdmins(ctx)
	s.mu.Lock()
	if admins != nil {
		s.admins = admins
	} else {
		s.admins = append(s.admins, admin)
	}
	s.mu.Unlock()
	return admin, persisted(), nil
}

// DeleteAdmin removes an account from the roster. Owner only; the
// caller cannot remove themselves and the last account always stays.
func (s *Store) DeleteAdmin(ctx context.Context, ident access.Identity, id string) (Result, error) {
	if ident.IsZero() || !access.CanManageTeam(ident.Role) {
		return Result{}, ErrForbidden
	}
	s.ensurePrivileged(ctx)

	s.mu.Lock()
	var target *models.AdminUser
	for i := range s.admins {
		if s.admins[i].ID == id {
			target = &s.admins[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return Result{}, ErrNotFound
	}
	if target.ID == ident.ID || target.Email == ident.Email {
		s.mu.Unlock()
		return Result{}, ErrSelfDelete
	}
	if len(s.admins) <= 1 {
		s.mu.Unlock()
		return Result{}, ErrLastAdmin
	}
	kept := s.admins[:0]
	for _, a := range s.admins {
		if a.ID == id {
			continue
		}
		kept = append(kept, a)
	}
	s.admins = kept
	s.mu.Unlock()

	if err := s.backend.Delete(ctx, store.Admins, "id", id); err != nil {
		s.log.Warn("persisting admin delete failed", zap.String("id", id), zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// PublishedProjects returns the public portfolio, newest first.
func (s *Store) PublishedProjects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Project
	for _, p := range s.projects {
		if p.Status == models.ProjectPublished {
			out = append(out, p)
		}
	}
	return out
}

// AllProjects returns every project regardless of status. Dashboard
// only.
func (s *Store) AllProjects(ident access.Identity) ([]models.Project, error) {
	if err := requireEditor(ident); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

// ProjectByID returns one project. Anonymous callers only see
// published projects.
func (s *Store) ProjectByID(id string, ident access.Identity) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			if p.Status != models.ProjectPublished && ident.IsZero() {
				return models.Project{}, ErrNotFound
			}
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// AddProject creates a project. The optimistic copy is prepended to the
// snapshot immediately; on a successful write the stored record
// (carrying the authoritative id) replaces it.
func (s *Store) AddProject(ctx context.Context, ident access.Identity, p models.Project) (models.Project, Result, error) {
	if err := requireEditor(ident); err != nil {
		return models.Project{}, Result{}, err
	}
	if p.Status == "" {
		p.Status = models.ProjectDraft
	}
	if !p.Status.Valid() {
		return models.Project{}, Result{}, ErrInvalidTransition
	}
	if p.Date == "" {
		p.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Links == nil {
		p.Links = []models.LinkItem{}
	}
	p.Views = 0
	if p.ID == "" {
		p.ID = localID()
	}

	rec, err := models.ToRecord(p)
	if err != nil {
		return models.Project{}, Result{}, err
	}

	result := persisted()
	if stored, err := s.backend.Insert(ctx, store.Projects, rec); err != nil {
		s.log.Warn("persisting project failed", zap.String("id", p.ID), zap.Error(err))
		result = notPersisted(err)
	} else if err := models.FromRecord(stored, &p); err != nil {
		s.log.Warn("decoding stored project failed", zap.Error(err))
	}

	s.mu.Lock()
	s.projects = append([]models.Project{p}, s.projects...)
	s.mu.Unlock()
	return p, result, nil
}

// UpdateProject replaces a project wholesale.
func (s *Store) UpdateProject(ctx context.Context, ident access.Identity, p models.Project) (Result, error) {
	if err := requireEditor(ident); err != nil {
		return Result{}, err
	}
	if !p.Status.Valid() {
		return Result{}, ErrInvalidTransition
	}

	s.mu.Lock()
	found := false
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return Result{}, ErrNotFound
	}

	rec, err := models.ToRecord(p)
	if err != nil {
		return notPersisted(err), nil
	}
	if _, err := s.backend.Update(ctx, store.Projects, "id", p.ID, rec); err != nil {
		s.log.Warn("persisting project update failed", zap.String("id", p.ID), zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

// DeleteProject removes a project. Requires admin or owner.
func (s *Store) DeleteProject(ctx context.Context, ident access.Identity, id string) (Result, error) {
	if ident.IsZero() || !access.CanDelete(ident.Role) {
		return Result{}, ErrForbidden
	}

	s.mu.Lock()
	kept := s.projects[:0]
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	s.mu.Unlock()
	if !found {
		return Result{}, ErrNotFound
	}

	if err := s.backend.Delete(ctx, store.Projects, "id", id); err != nil {
		s.log.Warn("persisting project delete failed", zap.String("id", id), zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

// IncrementProjectViews bumps a project's view counter. The local bump
// and the persisted bump are computed independently from the same
// snapshot read; concurrent increments may lose a count, which is an
// accepted property of the counter.
func (s *Store) IncrementProjectViews(ctx context.Context, id string) (int, Result, error) {
	s.mu.Lock()
	newViews := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			newViews = s.projects[i].Views + 1
			s.projects[i].Views = newViews
			break
		}
	}
	s.mu.Unlock()
	if newViews < 0 {
		return 0, Result{}, ErrNotFound
	}

	if _, err := s.backend.Update(ctx, store.Projects, "id", id, store.Record{"views": newViews}); err != nil {
		s.log.Warn("persisting view count failed", zap.String("id", id), zap.Error(err))
		return newViews, notPersisted(err), nil
	}
	return newViews, persisted(), nil
}

// localID mints a fallback id for optimistic records.
func localID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

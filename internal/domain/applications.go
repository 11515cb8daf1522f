package domain

import (
	"context"
	"strings"
	"time"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/mail"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// JoinInput is a join-page application.
type JoinInput struct {
	Name       string
	Email      string
	Role       string
	Portfolio  string
	Motivation string
}

// Applications returns every application, newest first. Dashboard only.
func (s *Store) Applications(ctx context.Context, ident access.Identity) ([]models.JobApplication, error) {
	if err := requireEditor(ident); err != nil {
		return nil, err
	}
	s.ensurePrivileged(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobApplication, len(s.applications))
	copy(out, s.applications)
	return out, nil
}

// AddApplication records a pending application and alerts every admin
// when the notify toggle is on. Rejected while applications are closed.
func (s *Store) AddApplication(ctx context.Context, in JoinInput) (models.JobApplication, Result, error) {
	if !s.ApplicationsOpen() {
		return models.JobApplication{}, Result{}, ErrApplicationsClosed
	}

	app := models.JobApplication{
		ID:         localID(),
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		Portfolio:  in.Portfolio,
		Motivation: in.Motivation,
		Date:       time.Now().UTC().Format(time.RFC3339),
		Status:     models.ApplicationPending,
	}

	rec, err := models.ToRecord(app)
	if err != nil {
		return models.JobApplication{}, Result{}, err
	}

	result := persisted()
	if stored, err := s.backend.Insert(ctx, store.Applications, rec); err != nil {
		s.log.Warn("persisting application failed", zap.Error(err))
		result = notPersisted(err)
	} else if err := models.FromRecord(stored, &app); err != nil {
		s.log.Warn("decoding stored application failed", zap.Error(err))
	}

	s.mu.Lock()
	if s.privState == LoadReady {
		s.applications = append([]models.JobApplication{app}, s.applications...)
	}
	notify := s.automations.NotifyOnApplication
	s.mu.Unlock()

	if notify && s.mailer != nil {
		for _, admin := range s.fetchAdmins(ctx) {
			err := s.mailer.SendApplicationNotify(admin.Email, mail.ApplicationNotifyData{
				Name:      app.Name,
				Role:      app.Role,
				Portfolio: app.Portfolio,
			})
			if err != nil {
				s.log.Warn("application notify failed", zap.String("to", admin.Email), zap.Error(err))
			}
		}
	}
	return app, result, nil
}

// UpdateApplicationStatus moves a pending application to approved or
// declined. Approval sends the operator-edited email to the applicant.
func (s *Store) UpdateApplicationStatus(ctx context.Context, ident access.Identity, id string, status models.ApplicationStatus) (Result, error) {
	if err := requireEditor(ident); err != nil {
		return Result{}, err
	}
	if status != models.ApplicationApproved && status != models.ApplicationDeclined {
		return Result{}, ErrInvalidTransition
	}
	s.ensurePrivileged(ctx)

	s.mu.Lock()
	var target *models.JobApplication
	for i := range s.applications {
		if s.applications[i].ID == id {
			target = &s.applications[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return Result{}, ErrNotFound
	}
	if target.Status != models.ApplicationPending {
		s.mu.Unlock()
		return Result{}, ErrInvalidTransition
	}
	target.Status = status
	applicant := target.Email
	template := s.content.EmailTemplates.ApplicationApproved
	s.mu.Unlock()

	result := persisted()
	if _, err := s.backend.Update(ctx, store.Applications, "id", id, store.Record{"status": string(status)}); err != nil {
		s.log.Warn("persisting application status failed", zap.String("id", id), zap.Error(err))
		result = notPersisted(err)
	}

	if status == models.ApplicationApproved && s.mailer != nil {
		html := "<p>" + strings.ReplaceAll(template, "\n", "<br/>") + "</p>"
		if err := s.mailer.SendApplicationApproved(applicant, html); err != nil {
			s.log.Warn("approval email failed", zap.String("to", applicant), zap.Error(err))
		}
	}
	return result, nil
}

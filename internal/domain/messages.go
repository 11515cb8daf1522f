package domain

import (
	"context"
	"time"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/mail"
	"github.com/gigspace/core/internal/store"
	"go.uber.org/zap"
)

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Messages returns the inbox, newest first. Dashboard only.
func (s *Store) Messages(ctx context.Context, ident access.Identity) ([]models.Message, error) {
	if err := requireEditor(ident); err != nil {
		return nil, err
	}
	s.ensurePrivileged(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// AddMessage records a contact-form message and, when the auto-reply
// toggle is on, acknowledges it by email. Public.
func (s *Store) AddMessage(ctx context.Context, in ContactInput) (models.Message, Result, error) {
	msg := models.Message{
		ID:      localID(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Message,
		Date:    time.Now().UTC().Format(time.RFC3339),
		Read:    false,
	}

	rec, err := models.ToRecord(msg)
	if err != nil {
		return models.Message{}, Result{}, err
	}

	result := persisted()
	if stored, err := s.backend.Insert(ctx, store.Messages, rec); err != nil {
		s.log.Warn("persisting message failed", zap.Error(err))
		result = notPersisted(err)
	} else if err := models.FromRecord(stored, &msg); err != nil {
		s.log.Warn("decoding stored message failed", zap.Error(err))
	}

	s.mu.Lock()
	if s.privState == LoadReady {
		s.messages = append([]models.Message{msg}, s.messages...)
	}
	autoReply := s.automations.AutoReplyContact
	s.mu.Unlock()

	if autoReply && s.mailer != nil {
		err := s.mailer.SendContactAutoReply(msg.Email, mail.ContactAutoReplyData{
			Name:    msg.Name,
			Subject: msg.Subject,
		})
		if err != nil {
			s.log.Warn("contact auto-reply failed", zap.String("to", msg.Email), zap.Error(err))
		}
	}
	return msg, result, nil
}

// MarkMessageRead flags a message as handled.
func (s *Store) MarkMessageRead(ctx context.Context, ident access.Identity, id string) (Result, error) {
	if err := requireEditor(ident); err != nil {
		return Result{}, err
	}
	s.ensurePrivileged(ctx)

	s.mu.Lock()
	found := false
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return Result{}, ErrNotFound
	}

	if _, err := s.backend.Update(ctx, store.Messages, "id", id, store.Record{"read": true}); err != nil {
		s.log.Warn("persisting message read flag failed", zap.String("id", id), zap.Error(err))
		return notPersisted(err), nil
	}
	return persisted(), nil
}

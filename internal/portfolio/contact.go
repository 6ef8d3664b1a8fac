// internal/portfolio/contact.go
package portfolio

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

// SubmitContact stores a message sent through the contact form.
func (s *Service) SubmitContact(ctx context.Context, form model.ContactForm) (model.ContactMessage, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if err := validateContactForm(form); err != nil {
		return model.ContactMessage{}, err
	}

	row, err := s.q.CreateContactMessage(ctx, database.CreateContactMessageParams{
		ID:      pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		s.logger.Error("Failed to store contact message", "error", err)
		return model.ContactMessage{}, err
	}
	msg := database.ToModelContactMessage(row)
	s.logger.Info("Contact message received", "id", msg.ID)
	return msg, nil
}

// ListContactMessages returns received messages, newest first.
func (s *Service) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := s.q.ListContactMessages(ctx)
	if err != nil {
		return nil, err
	}
	messages := make([]model.ContactMessage, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, database.ToModelContactMessage(r))
	}
	return messages, nil
}

func validateContactForm(form model.ContactForm) error {
	fields := map[string]string{}
	if form.Name == "" {
		fields["name"] = "Name is required"
	}
	if form.Email == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(form.Email); err != nil {
		fields["email"] = "Email address is invalid"
	}
	if form.Message == "" {
		fields["message"] = "Message is required"
	}
	if len(fields) > 0 {
		return &custom_errors.ValidationError{Fields: fields}
	}
	return nil
}

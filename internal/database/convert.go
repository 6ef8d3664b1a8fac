package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-site/internal/model"
)

// ToModelProject translates a stored row to the API model.
func ToModelProject(p Project) model.Project {
	return model.Project{
		ID:          p.ID,
		GithubID:    p.GithubID,
		Name:        p.Name,
		FullName:    p.FullName,
		Description: fromText(p.Description),
		HTMLURL:     p.HtmlUrl,
		Homepage:    fromText(p.Homepage),
		DemoURL:     fromText(p.DemoUrl),
		Language:    fromText(p.Language),
		TechStack:   nonNil(p.TechStack),
		Topics:      nonNil(p.Topics),
		StarsCount:  int(p.StargazersCount),
		ForksCount:  int(p.ForksCount),
		PushedAt:    fromTimestamptz(p.PushedAt),
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func ToModelContactMessage(m ContactMessage) model.ContactMessage {
	var id string
	if m.ID.Valid {
		id = uuid.UUID(m.ID.Bytes).String()
	}
	return model.ContactMessage{
		ID:        id,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Time,
	}
}

// Text maps a nil or empty string to SQL NULL.
func Text(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func Timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func fromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func fromTimestamptz(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/database"
	"portfolio-site/internal/database/dbmock"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

func TestService_SubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a trimmed message with a fresh id", func(t *testing.T) {
		mockQ := new(dbmock.MockQuerier)
		s := newTestService(mockQ)
		stored := uuid.New()

		mockQ.On("CreateContactMessage", ctx, mock.MatchedBy(func(p database.CreateContactMessageParams) bool {
			return p.ID.Valid && p.Name == "Ada" && p.Email == "ada@example.com" && p.Message == "Hello"
		})).Return(database.ContactMessage{
			ID:      pgtype.UUID{Bytes: stored, Valid: true},
			Name:    "Ada",
			Email:   "ada@example.com",
			Message: "Hello",
		}, nil).Once()

		msg, err := s.SubmitContact(ctx, model.ContactForm{Name: " Ada ", Email: "ada@example.com ", Message: "Hello\n"})

		require.NoError(t, err)
		assert.Equal(t, stored.String(), msg.ID)
		assert.Equal(t, "Ada", msg.Name)
		mockQ.AssertExpectations(t)
	})

	t.Run("validates fields", func(t *testing.T) {
		mockQ := new(dbmock.MockQuerier)
		s := newTestService(mockQ)

		_, err := s.SubmitContact(ctx, model.ContactForm{Name: "Ada", Email: "not-an-address"})

		var vErr *custom_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, map[string]string{
			"email":   "Email address is invalid",
			"message": "Message is required",
		}, vErr.Fields)
		mockQ.AssertNotCalled(t, "CreateContactMessage", mock.Anything, mock.Anything)
	})
}

func TestService_ListContactMessages(t *testing.T) {
	ctx := context.Background()
	mockQ := new(dbmock.MockQuerier)
	s := newTestService(mockQ)
	mockQ.On("ListContactMessages", ctx).Return([]database.ContactMessage{{Name: "Ada"}}, nil).Once()

	messages, err := s.ListContactMessages(ctx)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Ada", messages[0].Name)

	mockQ.On("ListContactMessages", ctx).Return([]database.ContactMessage(nil), errors.New("boom")).Once()
	_, err = s.ListContactMessages(ctx)
	assert.Error(t, err)
}

// internal/portfolio/service.go
package portfolio

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"portfolio-site/internal/database"
)

// Upper bound (exclusive) of placeholder GitHub IDs given to manual entries.
const placeholderIDRange = 1_000_000

// Service implements the admin form, the project listing and the contact form on top of the store.
type Service struct {
	q      database.Querier
	logger *slog.Logger

	// Overridable in tests.
	now         func() time.Time
	placeholder func() int64
}

// NewService creates a new Service instance.
func NewService(q database.Querier, logger *slog.Logger) *Service {
	return &Service{
		q:           q,
		logger:      logger,
		now:         time.Now,
		placeholder: randomPlaceholderID,
	}
}

// randomPlaceholderID is not checked against stored rows; a collision surfaces as a store error.
func randomPlaceholderID() int64 {
	return rand.Int64N(placeholderIDRange)
}

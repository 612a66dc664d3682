package repository

import (
	"context"
	"errors"

	"gift-card-checker-service/internal/models"
)

// ErrDuplicateCard is returned by Create when duplicate rejection is in effect
// and the card number was already submitted.
var ErrDuplicateCard = errors.New("card number already submitted")

// SubmissionRepository is the storage contract shared by every backend. The
// concrete adapter (postgres, mongodb, memory) is chosen by configuration;
// handlers only ever see this interface.
type SubmissionRepository interface {
	// Create inserts a new submission. The store assigns the identifier and
	// the date_checked timestamp and writes them back into s.
	Create(ctx context.Context, s *models.Submission) error

	// List returns every stored submission, newest first.
	List(ctx context.Context) ([]models.Submission, error)

	// DeleteAll removes every stored submission and reports how many were
	// removed. Deleting from an empty store is a successful no-op.
	DeleteAll(ctx context.Context) (int64, error)

	// Count reports the number of stored submissions.
	Count(ctx context.Context) (int64, error)

	// ExistsByCard reports whether a submission with the given card number exists.
	ExistsByCard(ctx context.Context, cardNumber string) (bool, error)

	// DeleteByCard removes every submission matching the given card number.
	DeleteByCard(ctx context.Context, cardNumber string) (int64, error)

	// Ping probes store connectivity with a trivial round trip.
	Ping(ctx context.Context) error

	// Name identifies the backend in health responses.
	Name() string
}

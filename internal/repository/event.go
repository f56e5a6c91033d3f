package repository

import (
	"context"
	"time"

	"github.com/tbekov/scheduling-assistant/internal/domain"
)

type EventRepository interface {
	Insert(ctx context.Context, e *domain.Event) (*domain.Event, error)
	// ListStartingBetween returns logged events whose start falls in [from, to),
	// ordered by start time ascending.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
}

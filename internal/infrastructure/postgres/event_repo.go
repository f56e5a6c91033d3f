package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tbekov/scheduling-assistant/internal/domain"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	query := `
		INSERT INTO event_log (
			title, description, starts_at, ends_at, timezone,
			attendees, provider_id, event_link, conference_link
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, description, starts_at, ends_at, timezone,
		          attendees, provider_id, event_link, conference_link, created_at`

	row := r.pool.QueryRow(ctx, query,
		e.Title, e.Description, e.StartsAt, e.EndsAt, e.Timezone,
		e.Attendees, e.ProviderID, e.EventLink, e.ConferenceLink,
	)
	return scanEvent(row)
}

func (r *EventRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, starts_at, ends_at, timezone,
		       attendees, provider_id, event_link, conference_link, created_at
		FROM event_log
		WHERE starts_at >= $1 AND starts_at < $2
		ORDER BY starts_at ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt, &e.Timezone,
		&e.Attendees, &e.ProviderID, &e.EventLink, &e.ConferenceLink, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

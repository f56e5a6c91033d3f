package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tbekov/scheduling-assistant/internal/metrics"
	"github.com/tbekov/scheduling-assistant/internal/repository"
)

// Nudger is the attention-getter fired when an event is imminent. The media
// controller satisfies it by pausing whatever is playing.
type Nudger interface {
	Pause(ctx context.Context) error
}

type Worker struct {
	events repository.EventRepository
	nudger Nudger
	logger *slog.Logger

	schedule cron.Schedule
	lead     time.Duration

	// notified tracks provider IDs already reminded so a slow tick does not
	// fire twice for the same event.
	notified map[string]time.Time
}

func New(events repository.EventRepository, nudger Nudger, logger *slog.Logger, cronExpr string, lead time.Duration) (*Worker, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse reminder cron %q: %w", cronExpr, err)
	}

	return &Worker{
		events:   events,
		nudger:   nudger,
		logger:   logger.With("component", "reminder"),
		schedule: schedule,
		lead:     lead,
	}, nil
}

func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("reminder worker started", "lead", w.lead)
	w.notified = make(map[string]time.Time)

	for {
		next := w.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("reminder worker shut down")
			return
		case <-timer.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	now := time.Now()
	events, err := w.events.ListStartingBetween(ctx, now, now.Add(w.lead))
	if err != nil {
		w.logger.Error("reminder list events", "error", err)
		return
	}

	w.expire(now)

	for _, e := range events {
		if _, seen := w.notified[e.ProviderID]; seen {
			continue
		}

		if err := w.nudger.Pause(ctx); err != nil {
			w.logger.Warn("reminder nudge", "event_id", e.ID, "error", err)
		}
		metrics.RemindersFiredTotal.Inc()
		w.logger.Info("reminder fired", "event_id", e.ID, "title", e.Title, "starts_at", e.StartsAt)

		w.notified[e.ProviderID] = e.StartsAt
	}
}

// expire drops dedup entries for events that have already started.
func (w *Worker) expire(now time.Time) {
	for id, startsAt := range w.notified {
		if startsAt.Before(now) {
			delete(w.notified, id)
		}
	}
}

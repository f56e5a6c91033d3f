package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tbekov/scheduling-assistant/internal/calendar"
	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/email"
	"github.com/tbekov/scheduling-assistant/internal/metrics"
	"github.com/tbekov/scheduling-assistant/internal/relativedate"
	"github.com/tbekov/scheduling-assistant/internal/repository"
	"github.com/tbekov/scheduling-assistant/internal/timezone"
)

const defaultDurationMinutes = 60

type EventUsecase struct {
	cal    calendar.Client
	events repository.EventRepository
	email  email.Sender
	logger *slog.Logger

	// now is swappable for tests; production uses time.Now.
	now func() time.Time
}

func NewEventUsecase(cal calendar.Client, events repository.EventRepository, sender email.Sender, logger *slog.Logger) *EventUsecase {
	return &EventUsecase{
		cal:    cal,
		events: events,
		email:  sender,
		logger: logger.With("component", "event_usecase"),
		now:    time.Now,
	}
}

// WithClock overrides the reference-time source. Tests use this to pin "now".
func (u *EventUsecase) WithClock(now func() time.Time) *EventUsecase {
	u.now = now
	return u
}

type CreateEventInput struct {
	Title           string
	Description     string
	RelativeDate    string
	StartHour       *int // mandatory; nil is rejected, never defaulted
	DurationMinutes int
	Timezone        string // "GMT±N"; "" falls back to the system offset
	Attendees       []string
	AddConference   bool
	Recurrence      []string
	SendUpdates     domain.SendUpdates
	NotifyEmail     string // optional confirmation recipient
}

func (u *EventUsecase) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	start, zone, err := u.resolveStart(input.RelativeDate, input.Timezone, input.StartHour)
	if err != nil {
		return nil, err
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}
	end := start.Time.Add(time.Duration(duration) * time.Minute)

	sendUpdates := input.SendUpdates
	if sendUpdates == "" {
		sendUpdates = domain.SendUpdatesNone
	}

	created, err := u.cal.CreateEvent(ctx, calendar.EventInput{
		Title:         input.Title,
		Description:   input.Description,
		Start:         start.Time,
		End:           end,
		ZoneName:      zone.Name(),
		Attendees:     input.Attendees,
		AddConference: input.AddConference,
		Recurrence:    input.Recurrence,
		SendUpdates:   string(sendUpdates),
	})
	if err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}

	event := &domain.Event{
		Title:          input.Title,
		Description:    input.Description,
		StartsAt:       start.Time,
		EndsAt:         end,
		Timezone:       zone.String(),
		Attendees:      input.Attendees,
		ProviderID:     created.ProviderID,
		EventLink:      created.EventLink,
		ConferenceLink: created.ConferenceLink,
	}

	logged, err := u.events.Insert(ctx, event)
	if err != nil {
		// The provider accepted the event; a failed audit write must not
		// report failure to the caller.
		u.logger.Error("event log insert", "provider_id", created.ProviderID, "error", err)
		logged = event
	}

	if input.NotifyEmail != "" {
		u.notify(ctx, input.NotifyEmail, logged)
	}

	return logged, nil
}

type ListEventsInput struct {
	RelativeDate string
	Timezone     string
}

// DayWindow is the listing range for one resolved day: local midnight up to
// 23:59:59 in the requested zone.
type DayWindow struct {
	From time.Time
	To   time.Time
}

func (u *EventUsecase) ListEvents(ctx context.Context, input ListEventsInput) ([]calendar.ListedEvent, DayWindow, error) {
	hour := 0
	start, _, err := u.resolveStart(input.RelativeDate, input.Timezone, &hour)
	if err != nil {
		return nil, DayWindow{}, err
	}

	window := DayWindow{
		From: start.Time,
		To:   start.Time.Add(24*time.Hour - time.Second),
	}

	events, err := u.cal.ListEvents(ctx, window.From, window.To)
	if err != nil {
		return nil, DayWindow{}, fmt.Errorf("list calendar events: %w", err)
	}
	return events, window, nil
}

// resolveStart normalizes the zone and resolves the phrase, counting
// outcomes. Core errors pass through unwrapped so the transport layer can
// classify them with errors.Is.
func (u *EventUsecase) resolveStart(phrase, tz string, hour *int) (relativedate.ResolvedInstant, timezone.FixedOffsetZone, error) {
	if tz == "" {
		tz = systemZone(u.now())
	}

	zone, err := timezone.Normalize(tz)
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues("invalid_timezone").Inc()
		return relativedate.ResolvedInstant{}, timezone.FixedOffsetZone{}, err
	}

	ref := u.now()
	start, err := relativedate.Resolve(phrase, zone, hour, &ref)
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues("error").Inc()
		return relativedate.ResolvedInstant{}, timezone.FixedOffsetZone{}, err
	}

	metrics.ResolutionsTotal.WithLabelValues("ok").Inc()
	return start, zone, nil
}

func (u *EventUsecase) notify(ctx context.Context, to string, e *domain.Event) {
	subject := "Event scheduled: " + e.Title
	body := fmt.Sprintf(
		`<p>%s is scheduled for %s (%s).</p><p><a href="%s">View event</a></p>`,
		e.Title, e.StartsAt.Format("Monday, January 2 at 15:04"), e.Timezone, e.EventLink,
	)
	if err := u.email.Send(ctx, to, subject, body); err != nil {
		// Confirmation email is best-effort.
		u.logger.Warn("confirmation email", "to", to, "error", err)
	}
}

// systemZone renders the host's current UTC offset as a GMT±N string,
// truncating fractional-hour offsets the same way the normalizer would.
func systemZone(now time.Time) string {
	_, offset := now.Zone()
	hours := offset / 3600
	sign := "+"
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	return fmt.Sprintf("GMT%s%d", sign, hours)
}

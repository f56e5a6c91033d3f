package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// SendUpdates mirrors the calendar provider's attendee-notification modes.
type SendUpdates string

const (
	SendUpdatesNone         SendUpdates = "none"
	SendUpdatesAll          SendUpdates = "all"
	SendUpdatesExternalOnly SendUpdates = "externalOnly"
)

// Event is one row of the local event log: a calendar event this service
// created, kept for auditing and reminders. The calendar provider remains the
// source of truth.
type Event struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Timezone    string // user-facing form, e.g. "GMT+5"
	Attendees   []string

	ProviderID     string // event ID at the calendar provider
	EventLink      string
	ConferenceLink *string // nil when no conference was requested

	CreatedAt time.Time
}

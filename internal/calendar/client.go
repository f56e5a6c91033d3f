// Package calendar talks to the calendar provider. It owns the wire
// timestamp format the provider expects; the date-resolution core never
// formats provider timestamps itself.
package calendar

import (
	"context"
	"time"
)

// EventInput is everything needed to create one calendar event.
type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	ZoneName    string // canonical form, e.g. "Etc/GMT-5"

	Attendees     []string
	AddConference bool
	Recurrence    []string // RRULE strings
	SendUpdates   string
}

// CreatedEvent is what the provider reports back after a create.
type CreatedEvent struct {
	ProviderID     string
	EventLink      string
	ConferenceLink *string
}

// ListedEvent is one event in a listing window.
type ListedEvent struct {
	Title          string
	Description    string
	Start          string // provider-native timestamp or all-day date
	End            string
	EventLink      string
	ConferenceLink *string
}

type Client interface {
	CreateEvent(ctx context.Context, input EventInput) (*CreatedEvent, error)
	ListEvents(ctx context.Context, from, to time.Time) ([]ListedEvent, error)
}

// FormatForWire renders t as RFC3339 in UTC with a trailing Z, the form the
// provider's API requires for time-bounded queries.
func FormatForWire(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/tbekov/scheduling-assistant/internal/metrics"
)

// GoogleClient implements Client against the Google Calendar API using the
// installed-app OAuth flow: a credentials.json from the cloud console and a
// previously obtained token.json.
type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
}

func NewGoogleClient(ctx context.Context, credentialsPath, tokenPath, calendarID string) (*GoogleClient, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read token (run the authorization flow first): %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleClient{svc: svc, calendarID: calendarID}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return tok, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, input EventInput) (*CreatedEvent, error) {
	event := &gcal.Event{
		Summary:     input.Title,
		Description: input.Description,
		Start: &gcal.EventDateTime{
			DateTime: FormatForWire(input.Start),
			TimeZone: input.ZoneName,
		},
		End: &gcal.EventDateTime{
			DateTime: FormatForWire(input.End),
			TimeZone: input.ZoneName,
		},
		Recurrence: input.Recurrence,
	}

	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &gcal.EventAttendee{Email: email})
	}

	conferenceVersion := int64(0)
	if input.AddConference {
		conferenceVersion = 1
		event.ConferenceData = &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             fmt.Sprintf("%s-%s", input.Title, FormatForWire(input.Start)),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
	}

	sendUpdates := input.SendUpdates
	if sendUpdates == "" {
		sendUpdates = "none"
	}

	start := time.Now()
	created, err := c.svc.Events.Insert(c.calendarID, event).
		ConferenceDataVersion(conferenceVersion).
		SendUpdates(sendUpdates).
		Context(ctx).
		Do()
	metrics.CalendarCallDuration.WithLabelValues("insert").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	result := &CreatedEvent{
		ProviderID: created.Id,
		EventLink:  created.HtmlLink,
	}
	if input.AddConference && created.ConferenceData != nil && len(created.ConferenceData.EntryPoints) > 0 {
		uri := created.ConferenceData.EntryPoints[0].Uri
		result.ConferenceLink = &uri
	}
	return result, nil
}

func (c *GoogleClient) ListEvents(ctx context.Context, from, to time.Time) ([]ListedEvent, error) {
	start := time.Now()
	resp, err := c.svc.Events.List(c.calendarID).
		TimeMin(FormatForWire(from)).
		TimeMax(FormatForWire(to)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	metrics.CalendarCallDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]ListedEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		e := ListedEvent{
			Title:       item.Summary,
			Description: item.Description,
			EventLink:   item.HtmlLink,
			Start:       eventTime(item.Start),
			End:         eventTime(item.End),
		}
		if item.ConferenceData != nil && len(item.ConferenceData.EntryPoints) > 0 {
			uri := item.ConferenceData.EntryPoints[0].Uri
			e.ConferenceLink = &uri
		}
		if e.Title == "" {
			e.Title = "No title"
		}
		events = append(events, e)
	}
	return events, nil
}

// eventTime prefers the dateTime field, falling back to the all-day date.
func eventTime(t *gcal.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

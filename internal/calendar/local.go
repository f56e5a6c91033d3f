package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// LogClient logs calendar calls instead of reaching Google — used in ENV=local.
type LogClient struct {
	logger *slog.Logger
}

func NewLogClient(logger *slog.Logger) *LogClient {
	return &LogClient{logger: logger.With("component", "calendar_local")}
}

func (c *LogClient) CreateEvent(_ context.Context, input EventInput) (*CreatedEvent, error) {
	id := uuid.NewString()
	c.logger.Info("calendar event (local dev)",
		"provider_id", id,
		"title", input.Title,
		"start", FormatForWire(input.Start),
		"end", FormatForWire(input.End),
		"zone", input.ZoneName,
	)
	return &CreatedEvent{
		ProviderID: id,
		EventLink:  "local://events/" + id,
	}, nil
}

func (c *LogClient) ListEvents(_ context.Context, from, to time.Time) ([]ListedEvent, error) {
	c.logger.Info("calendar list (local dev)", "from", FormatForWire(from), "to", FormatForWire(to))
	return nil, nil
}

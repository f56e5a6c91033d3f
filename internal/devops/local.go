package devops

import (
	"context"
	"log/slog"

	"github.com/tbekov/scheduling-assistant/internal/domain"
)

// LogClient logs work item requests instead of calling Azure DevOps — used
// in ENV=local.
type LogClient struct {
	logger *slog.Logger
	nextID int
}

func NewLogClient(logger *slog.Logger) *LogClient {
	return &LogClient{logger: logger.With("component", "devops_local")}
}

func (c *LogClient) CreateWorkItem(_ context.Context, input CreateWorkItemInput) (*domain.WorkItem, error) {
	c.nextID++
	c.logger.Info("work item (local dev)",
		"id", c.nextID,
		"project", input.Project,
		"title", input.Title,
		"type", input.Type,
	)
	return &domain.WorkItem{
		ID:    c.nextID,
		Title: input.Title,
		State: "New",
		URL:   "local://work-items",
	}, nil
}

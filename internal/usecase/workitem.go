package usecase

import (
	"context"
	"fmt"

	"github.com/tbekov/scheduling-assistant/internal/devops"
	"github.com/tbekov/scheduling-assistant/internal/domain"
)

type WorkItemUsecase struct {
	client devops.Client
}

func NewWorkItemUsecase(client devops.Client) *WorkItemUsecase {
	return &WorkItemUsecase{client: client}
}

type CreateWorkItemInput struct {
	Project     string
	Title       string
	Type        string
	Description string
	AssignedTo  string
	Priority    int
	Tags        string
}

func (u *WorkItemUsecase) CreateWorkItem(ctx context.Context, input CreateWorkItemInput) (*domain.WorkItem, error) {
	item, err := u.client.CreateWorkItem(ctx, devops.CreateWorkItemInput{
		Project:     input.Project,
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Priority:    input.Priority,
		Tags:        input.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create work item: %w", err)
	}
	return item, nil
}

// Package devops creates work items in Azure DevOps. Thin pass-through to
// the vendor SDK; no decision logic lives here.
package devops

import (
	"context"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/metrics"
)

type CreateWorkItemInput struct {
	Project     string
	Title       string
	Type        string // Task, Bug, User Story, ...
	Description string
	AssignedTo  string
	Priority    int // 1-4, 0 means unset
	Tags        string
}

type Client interface {
	CreateWorkItem(ctx context.Context, input CreateWorkItemInput) (*domain.WorkItem, error)
}

type AzureClient struct {
	wit workitemtracking.Client
}

func NewAzureClient(ctx context.Context, orgURL, pat string) (*AzureClient, error) {
	if orgURL == "" || pat == "" {
		return nil, fmt.Errorf("devops credentials not configured: org URL and PAT are required")
	}

	conn := azuredevops.NewPatConnection(orgURL, pat)
	wit, err := workitemtracking.NewClient(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("work item tracking client: %w", err)
	}
	return &AzureClient{wit: wit}, nil
}

func (c *AzureClient) CreateWorkItem(ctx context.Context, input CreateWorkItemInput) (*domain.WorkItem, error) {
	itemType := input.Type
	if itemType == "" {
		itemType = "Task"
	}

	document := []webapi.JsonPatchOperation{
		patchAdd("/fields/System.Title", input.Title),
	}
	if input.Description != "" {
		document = append(document, patchAdd("/fields/System.Description", input.Description))
	}
	if input.AssignedTo != "" {
		document = append(document, patchAdd("/fields/System.AssignedTo", input.AssignedTo))
	}
	if input.Priority != 0 {
		document = append(document, patchAdd("/fields/Microsoft.VSTS.Common.Priority", input.Priority))
	}
	if input.Tags != "" {
		document = append(document, patchAdd("/fields/System.Tags", input.Tags))
	}

	created, err := c.wit.CreateWorkItem(ctx, workitemtracking.CreateWorkItemArgs{
		Document: &document,
		Project:  &input.Project,
		Type:     &itemType,
	})
	if err != nil {
		return nil, fmt.Errorf("create work item: %w", err)
	}
	metrics.WorkItemsCreatedTotal.Inc()

	item := &domain.WorkItem{}
	if created.Id != nil {
		item.ID = *created.Id
	}
	if created.Url != nil {
		item.URL = *created.Url
	}
	if created.Fields != nil {
		fields := *created.Fields
		if title, ok := fields["System.Title"].(string); ok {
			item.Title = title
		}
		if state, ok := fields["System.State"].(string); ok {
			item.State = state
		}
	}
	return item, nil
}

func patchAdd(path string, value any) webapi.JsonPatchOperation {
	op := webapi.OperationValues.Add
	return webapi.JsonPatchOperation{
		Op:    &op,
		Path:  &path,
		Value: value,
	}
}

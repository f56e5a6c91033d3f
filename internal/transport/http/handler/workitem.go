package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbekov/scheduling-assistant/internal/usecase"
)

type WorkItemHandler struct {
	uc     *usecase.WorkItemUsecase
	logger *slog.Logger
}

func NewWorkItemHandler(uc *usecase.WorkItemUsecase, logger *slog.Logger) *WorkItemHandler {
	return &WorkItemHandler{uc: uc, logger: logger.With("component", "workitem_handler")}
}

type createWorkItemRequest struct {
	Project     string `json:"project"     binding:"required"`
	Title       string `json:"title"       binding:"required,max=256"`
	Type        string `json:"type"        binding:"omitempty,oneof=Task Bug Epic Feature 'User Story'"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to" binding:"omitempty,email"`
	Priority    int    `json:"priority"    binding:"omitempty,min=1,max=4"`
	Tags        string `json:"tags"`
}

func (h *WorkItemHandler) Create(ctx *gin.Context) {
	var req createWorkItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.uc.CreateWorkItem(ctx.Request.Context(), usecase.CreateWorkItemInput{
		Project:     req.Project,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Tags:        req.Tags,
	})
	if err != nil {
		h.logger.Error("create work item", "project", req.Project, "error", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": errWorkItemUpstream})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":    item.ID,
		"url":   item.URL,
		"title": item.Title,
		"state": item.State,
	})
}

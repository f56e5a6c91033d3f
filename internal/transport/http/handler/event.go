package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbekov/scheduling-assistant/internal/calendar"
	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/relativedate"
	"github.com/tbekov/scheduling-assistant/internal/timezone"
	"github.com/tbekov/scheduling-assistant/internal/usecase"
)

type EventHandler struct {
	uc     *usecase.EventUsecase
	logger *slog.Logger
}

func NewEventHandler(uc *usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{uc: uc, logger: logger.With("component", "event_handler")}
}

type createEventRequest struct {
	Title           string             `json:"title"            binding:"required,max=256"`
	Description     string             `json:"description"`
	RelativeDate    string             `json:"relative_date"    binding:"required"`
	StartHour       *int               `json:"start_hour"` // mandatory by contract; absence is a 400, not a default
	DurationMinutes int                `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	Timezone        string             `json:"timezone"`
	Attendees       []string           `json:"attendees"        binding:"omitempty,dive,email"`
	AddConference   bool               `json:"add_conference"`
	Recurrence      []string           `json:"recurrence"`
	SendUpdates     domain.SendUpdates `json:"send_updates"     binding:"omitempty,oneof=none all externalOnly"`
	NotifyEmail     string             `json:"notify_email"     binding:"omitempty,email"`
}

type eventResponse struct {
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Timezone       string    `json:"timezone"`
	EventLink      string    `json:"event_link,omitempty"`
	ConferenceLink *string   `json:"conference_link,omitempty"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		Timezone:       e.Timezone,
		EventLink:      e.EventLink,
		ConferenceLink: e.ConferenceLink,
	}
}

func (h *EventHandler) Create(ctx *gin.Context) {
	var req createEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.uc.CreateEvent(ctx.Request.Context(), usecase.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		RelativeDate:    req.RelativeDate,
		StartHour:       req.StartHour,
		DurationMinutes: req.DurationMinutes,
		Timezone:        req.Timezone,
		Attendees:       req.Attendees,
		AddConference:   req.AddConference,
		Recurrence:      req.Recurrence,
		SendUpdates:     req.SendUpdates,
		NotifyEmail:     req.NotifyEmail,
	})
	if err != nil {
		if isResolutionError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create event", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toEventResponse(event))
}

type listedEventResponse struct {
	Title          string  `json:"title"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Description    string  `json:"description,omitempty"`
	EventLink      string  `json:"event_link,omitempty"`
	ConferenceLink *string `json:"conference_link,omitempty"`
}

func (h *EventHandler) List(ctx *gin.Context) {
	relativeDate := ctx.Query("relative_date")
	if relativeDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errMissingRelativeDate})
		return
	}

	events, window, err := h.uc.ListEvents(ctx.Request.Context(), usecase.ListEventsInput{
		RelativeDate: relativeDate,
		Timezone:     ctx.Query("timezone"),
	})
	if err != nil {
		if isResolutionError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("list events", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]listedEventResponse, len(events))
	for i, e := range events {
		items[i] = listedEventResponse{
			Title:          e.Title,
			StartTime:      e.Start,
			EndTime:        e.End,
			Description:    e.Description,
			EventLink:      e.EventLink,
			ConferenceLink: e.ConferenceLink,
		}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"events": items,
		"from":   calendar.FormatForWire(window.From),
		"to":     calendar.FormatForWire(window.To),
	})
}

// isResolutionError reports whether err is a caller mistake in the phrase,
// hour, or timezone rather than a downstream failure.
func isResolutionError(err error) bool {
	return errors.Is(err, timezone.ErrInvalidFormat) ||
		errors.Is(err, timezone.ErrMissingPrefix) ||
		errors.Is(err, timezone.ErrMissingSign) ||
		errors.Is(err, timezone.ErrOffsetOutOfRange) ||
		errors.Is(err, relativedate.ErrMissingHour) ||
		errors.Is(err, relativedate.ErrHourOutOfRange) ||
		errors.Is(err, relativedate.ErrUnparseableDate) ||
		errors.Is(err, relativedate.ErrUnknownWeekday)
}

package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbekov/scheduling-assistant/internal/calendar"
	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/transport/http/handler"
	"github.com/tbekov/scheduling-assistant/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCalendar struct {
	created *calendar.CreatedEvent
	listed  []calendar.ListedEvent
}

func (c *stubCalendar) CreateEvent(_ context.Context, _ calendar.EventInput) (*calendar.CreatedEvent, error) {
	return c.created, nil
}

func (c *stubCalendar) ListEvents(_ context.Context, _, _ time.Time) ([]calendar.ListedEvent, error) {
	return c.listed, nil
}

type stubEventRepo struct{}

func (stubEventRepo) Insert(_ context.Context, e *domain.Event) (*domain.Event, error) {
	stored := *e
	stored.ID = "event-1"
	return &stored, nil
}

func (stubEventRepo) ListStartingBetween(_ context.Context, _, _ time.Time) ([]*domain.Event, error) {
	return nil, nil
}

type stubSender struct{}

func (stubSender) Send(_ context.Context, _, _, _ string) error { return nil }

func newEngine(cal *stubCalendar) *gin.Engine {
	uc := usecase.NewEventUsecase(cal, stubEventRepo{}, stubSender{}, slog.Default()).
		WithClock(func() time.Time {
			return time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
		})
	h := handler.NewEventHandler(uc, slog.Default())

	r := gin.New()
	r.POST("/v1/events", h.Create)
	r.GET("/v1/events", h.List)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEvent_Returns201(t *testing.T) {
	cal := &stubCalendar{created: &calendar.CreatedEvent{ProviderID: "g-1", EventLink: "https://cal/e/1"}}
	w := post(t, newEngine(cal), `{
		"title": "Team sync",
		"relative_date": "tomorrow",
		"start_hour": 9,
		"timezone": "GMT+5"
	}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID       string `json:"id"`
		Timezone string `json:"timezone"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "event-1" {
		t.Errorf("id = %q", resp.ID)
	}
	if resp.Timezone != "GMT+5" {
		t.Errorf("timezone = %q, want GMT+5", resp.Timezone)
	}
}

func TestCreateEvent_MissingHour_Returns400(t *testing.T) {
	cal := &stubCalendar{created: &calendar.CreatedEvent{}}
	w := post(t, newEngine(cal), `{
		"title": "Team sync",
		"relative_date": "tomorrow",
		"timezone": "GMT+5"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "hour") {
		t.Errorf("error should mention the missing hour: %s", w.Body.String())
	}
}

func TestCreateEvent_BadTimezone_Returns400(t *testing.T) {
	cal := &stubCalendar{created: &calendar.CreatedEvent{}}
	w := post(t, newEngine(cal), `{
		"title": "Team sync",
		"relative_date": "tomorrow",
		"start_hour": 9,
		"timezone": "EST"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestListEvents_RequiresRelativeDate(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	newEngine(&stubCalendar{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListEvents_Returns200(t *testing.T) {
	cal := &stubCalendar{listed: []calendar.ListedEvent{{Title: "Standup", Start: "2024-03-15T04:00:00Z"}}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/events?relative_date=tomorrow&timezone=GMT%2B5", nil)
	newEngine(cal).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Events []struct {
			Title string `json:"title"`
		} `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Title != "Standup" {
		t.Errorf("events = %+v", resp.Events)
	}
}

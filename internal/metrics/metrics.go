package metrics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tbekov/scheduling-assistant/internal/health"
)

var (
	// Resolution metrics

	ResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "phrase_resolutions_total",
		Help:      "Relative-date phrase resolutions, by outcome.",
	}, []string{"outcome"})

	// Calendar provider metrics

	CalendarCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assistant",
		Name:      "calendar_call_duration_seconds",
		Help:      "Duration of calendar provider API calls.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	// Collaborator metrics

	PlayerCommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "player_commands_total",
		Help:      "Audio player commands issued, by action and outcome.",
	}, []string{"action", "outcome"})

	WorkItemsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "work_items_created_total",
		Help:      "DevOps work items created.",
	})

	RemindersFiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "reminders_fired_total",
		Help:      "Event reminders fired by the reminder worker.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assistant",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		ResolutionsTotal,
		CalendarCallDuration,
		PlayerCommandsTotal,
		WorkItemsCreatedTotal,
		RemindersFiredTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// Checker is satisfied by *health.Checker.
type Checker interface {
	Liveness(ctx context.Context) health.HealthResult
	Readiness(ctx context.Context) health.HealthResult
}

// NewServer serves /metrics plus the health endpoints on its own port so
// they never share a listener with the public API.
func NewServer(addr string, checker Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if !result.Healthy() {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

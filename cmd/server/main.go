package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbekov/scheduling-assistant/config"
	"github.com/tbekov/scheduling-assistant/internal/calendar"
	"github.com/tbekov/scheduling-assistant/internal/devops"
	"github.com/tbekov/scheduling-assistant/internal/email"
	"github.com/tbekov/scheduling-assistant/internal/health"
	"github.com/tbekov/scheduling-assistant/internal/infrastructure/postgres"
	ctxlog "github.com/tbekov/scheduling-assistant/internal/log"
	"github.com/tbekov/scheduling-assistant/internal/metrics"
	"github.com/tbekov/scheduling-assistant/internal/player"
	httptransport "github.com/tbekov/scheduling-assistant/internal/transport/http"
	"github.com/tbekov/scheduling-assistant/internal/transport/http/handler"
	"github.com/tbekov/scheduling-assistant/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	cal, err := newCalendarClient(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("calendar: %v", err)
	}

	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Events
	eventRepo := postgres.NewEventRepository(pool)
	eventUsecase := usecase.NewEventUsecase(cal, eventRepo, sender, logger)
	eventHandler := handler.NewEventHandler(eventUsecase, logger)

	// Documents
	documentRepo := postgres.NewDocumentRepository(pool, cfg.DocumentContainer)
	documentUsecase := usecase.NewDocumentUsecase(documentRepo)
	documentHandler := handler.NewDocumentHandler(documentUsecase, logger)

	// Work items
	dev, err := newDevOpsClient(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("devops: %v", err)
	}
	workItemUsecase := usecase.NewWorkItemUsecase(dev)
	workItemHandler := handler.NewWorkItemHandler(workItemUsecase, logger)

	// Media player
	playerHandler := handler.NewPlayerHandler(player.New(logger), logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, eventHandler, documentHandler, workItemHandler, playerHandler, []byte(cfg.JWTSecret)),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newCalendarClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (calendar.Client, error) {
	if cfg.Env == "local" && cfg.GoogleCredentialsPath == "" {
		return calendar.NewLogClient(logger), nil
	}
	return calendar.NewGoogleClient(ctx, cfg.GoogleCredentialsPath, cfg.GoogleTokenPath, cfg.GoogleCalendarID)
}

func newDevOpsClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (devops.Client, error) {
	if cfg.DevOpsOrgURL == "" || cfg.DevOpsPAT == "" {
		if cfg.Env != "local" {
			return nil, errors.New("DEVOPS_ORG_URL and DEVOPS_PAT are required outside local")
		}
		return devops.NewLogClient(logger), nil
	}
	return devops.NewAzureClient(ctx, cfg.DevOpsOrgURL, cfg.DevOpsPAT)
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}

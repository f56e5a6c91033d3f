package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/tbekov/scheduling-assistant/internal/transport/http/handler"
	"github.com/tbekov/scheduling-assistant/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	eventHandler *handler.EventHandler,
	documentHandler *handler.DocumentHandler,
	workItemHandler *handler.WorkItemHandler,
	playerHandler *handler.PlayerHandler,
	jwtKey []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(jwtKey)

	v1 := r.Group("/v1", authMW)

	events := v1.Group("/events")
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)

	documents := v1.Group("/documents")
	documents.GET("/info", documentHandler.Info)
	documents.GET("/:id", documentHandler.GetByID)

	v1.POST("/work-items", workItemHandler.Create)

	playerGroup := v1.Group("/player")
	playerGroup.POST("/play", playerHandler.Play)
	playerGroup.POST("/pause", playerHandler.Pause)
	playerGroup.POST("/next", playerHandler.Next)
	playerGroup.POST("/previous", playerHandler.Previous)

	return r
}

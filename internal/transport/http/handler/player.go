package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbekov/scheduling-assistant/internal/player"
)

type PlayerHandler struct {
	player *player.Controller
	logger *slog.Logger
}

func NewPlayerHandler(p *player.Controller, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{player: p, logger: logger.With("component", "player_handler")}
}

func (h *PlayerHandler) Play(ctx *gin.Context) {
	h.run(ctx, h.player.Play, "Playback started")
}

func (h *PlayerHandler) Pause(ctx *gin.Context) {
	h.run(ctx, h.player.Pause, "Playback paused")
}

func (h *PlayerHandler) Next(ctx *gin.Context) {
	h.run(ctx, h.player.Next, "Skipped to next track")
}

func (h *PlayerHandler) Previous(ctx *gin.Context) {
	h.run(ctx, h.player.Previous, "Went to previous track")
}

func (h *PlayerHandler) run(ctx *gin.Context, command func(context.Context) error, message string) {
	if err := command(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": errPlayerUnavailable})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

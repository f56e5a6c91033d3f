package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/usecase"
)

type DocumentHandler struct {
	uc     *usecase.DocumentUsecase
	logger *slog.Logger
}

func NewDocumentHandler(uc *usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, logger: logger.With("component", "document_handler")}
}

type documentResponse struct {
	ID        string         `json:"id"`
	Body      map[string]any `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (h *DocumentHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	doc, err := h.uc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errDocumentNotFound})
			return
		}
		h.logger.Error("get document", "document_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, documentResponse{
		ID:        doc.ID,
		Body:      doc.Body,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
}

func (h *DocumentHandler) Info(ctx *gin.Context) {
	info, err := h.uc.ContainerInfo(ctx.Request.Context())
	if err != nil {
		h.logger.Error("container info", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"container":      info.Name,
		"document_count": info.DocumentCount,
		"oldest_created": info.OldestCreated,
	})
}

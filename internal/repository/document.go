package repository

import (
	"context"

	"github.com/tbekov/scheduling-assistant/internal/domain"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Info(ctx context.Context) (*domain.ContainerInfo, error)
}

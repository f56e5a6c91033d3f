package usecase

import (
	"context"
	"fmt"

	"github.com/tbekov/scheduling-assistant/internal/domain"
	"github.com/tbekov/scheduling-assistant/internal/repository"
)

type DocumentUsecase struct {
	repo repository.DocumentRepository
}

func NewDocumentUsecase(repo repository.DocumentRepository) *DocumentUsecase {
	return &DocumentUsecase{repo: repo}
}

func (u *DocumentUsecase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (u *DocumentUsecase) ContainerInfo(ctx context.Context) (*domain.ContainerInfo, error) {
	info, err := u.repo.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("container info: %w", err)
	}
	return info, nil
}

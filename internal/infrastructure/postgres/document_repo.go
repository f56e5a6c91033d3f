package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tbekov/scheduling-assistant/internal/domain"
)

// DocumentRepository is a JSONB document store keyed by id. The container
// name is presentation only; all documents live in one table.
type DocumentRepository struct {
	pool      *pgxpool.Pool
	container string
}

func NewDocumentRepository(pool *pgxpool.Pool, container string) *DocumentRepository {
	return &DocumentRepository{pool: pool, container: container}
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	query := `
		SELECT id, body, created_at, updated_at
		FROM documents
		WHERE id = $1`

	var d domain.Document
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Body, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

func (r *DocumentRepository) Info(ctx context.Context) (*domain.ContainerInfo, error) {
	info := domain.ContainerInfo{Name: r.container}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), MIN(created_at) FROM documents`,
	).Scan(&info.DocumentCount, &info.OldestCreated)
	if err != nil {
		return nil, fmt.Errorf("container info: %w", err)
	}
	return &info, nil
}

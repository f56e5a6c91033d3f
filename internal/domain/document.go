package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is an opaque JSON document fetched by ID from the document store.
type Document struct {
	ID        string
	Body      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainerInfo describes the document container as a whole.
type ContainerInfo struct {
	Name          string
	DocumentCount int64
	OldestCreated *time.Time // nil when the container is empty
}

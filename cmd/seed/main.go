// seed inserts a handful of documents into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/tbekov/scheduling-assistant/internal/infrastructure/postgres"
)

type docSpec struct {
	id   string
	body map[string]any
}

var docs = []docSpec{
	{"seed-doc-001", map[string]any{
		"kind":  "meeting-notes",
		"title": "Weekly planning",
		"notes": []string{"review open items", "assign owners"},
	}},
	{"seed-doc-002", map[string]any{
		"kind":     "contact",
		"name":     "Alice Example",
		"email":    "alice@example.com",
		"timezone": "GMT+5",
	}},
	{"seed-doc-003", map[string]any{
		"kind":     "contact",
		"name":     "Bob Example",
		"email":    "bob@example.com",
		"timezone": "GMT-8",
	}},
	{"seed-doc-004", map[string]any{
		"kind":                     "preferences",
		"user":                     "seed@test.local",
		"default_duration_minutes": 30,
		"reminder_lead_minutes":    10,
	}},
	{"seed-doc-005", map[string]any{
		"kind":  "agenda",
		"title": "Quarterly review",
		"items": []string{"metrics", "roadmap", "hiring"},
	}},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	// Insert documents, skip any that already exist (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range docs {
		body, err := json.Marshal(spec.body)
		if err != nil {
			pool.Close()
			log.Fatalf("marshal document %s: %v", spec.id, err)
		}

		tag, err := pool.Exec(ctx, `
			INSERT INTO documents (id, body)
			VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING`,
			spec.id, body,
		)
		if err != nil {
			pool.Close()
			log.Fatalf("insert document %s: %v", spec.id, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	pool.Close()

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Documents created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  curl -H \"Authorization: Bearer $TOKEN\" localhost:8080/v1/documents/seed-doc-001")
	fmt.Println("  curl -H \"Authorization: Bearer $TOKEN\" localhost:8080/v1/documents/info")
}

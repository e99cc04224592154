// Package store persists named entity-graph snapshots.
//
// A snapshot freezes the result of one scan+parse run - the exported graph
// document plus enough metadata to identify it later - so diagrams can be
// generated from historical states of a codebase without re-scanning it.
// Two backends are provided:
//   - file: one JSON file per snapshot, for single-machine CLI use
//   - mongo: a MongoDB collection, for teams sharing snapshot history
//
// # Usage
//
// Create a store:
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.local/share/codemap/snapshots/
//
//	// Shared
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "codemap")
//
// Save and load snapshots:
//
//	snap, err := store.New("before-refactor", root, len(files), graph)
//	if err != nil {
//	    return err
//	}
//	if err := st.Save(ctx, snap); err != nil {
//	    return err
//	}
//
//	snap, err = st.Get(ctx, snap.ID)
//	g, err := snap.Decode()
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/io"
)

// Snapshot is a persisted entity graph with identifying metadata.
// Graph holds the JSON document produced by [io.WriteJSON].
type Snapshot struct {
	ID          string          `json:"id" bson:"_id"`
	Name        string          `json:"name" bson:"name"`
	Root        string          `json:"root" bson:"root"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	FileCount   int             `json:"file_count" bson:"file_count"`
	EntityCount int             `json:"entity_count" bson:"entity_count"`
	Graph       json.RawMessage `json:"graph" bson:"graph"`
}

// New creates a snapshot of g with a fresh ID and the current time.
func New(name, root string, fileCount int, g *entity.Graph) (*Snapshot, error) {
	var buf bytes.Buffer
	if err := io.WriteJSON(g, &buf); err != nil {
		return nil, fmt.Errorf("export graph: %w", err)
	}

	return &Snapshot{
		ID:          uuid.NewString(),
		Name:        name,
		Root:        root,
		CreatedAt:   time.Now().UTC(),
		FileCount:   fileCount,
		EntityCount: g.Len(),
		Graph:       buf.Bytes(),
	}, nil
}

// Decode returns the entity graph stored in the snapshot.
func (s *Snapshot) Decode() (*entity.Graph, error) {
	return io.ReadJSON(bytes.NewReader(s.Graph))
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save persists a snapshot, replacing any existing one with the same ID.
	Save(ctx context.Context, snap *Snapshot) error

	// Get retrieves a snapshot by ID. A missing ID yields an error with
	// code SNAPSHOT_NOT_FOUND.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// List returns all snapshots, newest first.
	List(ctx context.Context) ([]*Snapshot, error)

	// Delete removes a snapshot by ID. A missing ID yields an error with
	// code SNAPSHOT_NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

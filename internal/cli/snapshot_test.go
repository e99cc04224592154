package cli

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/store"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"a1b2c3d4-e5f6-7890-abcd-ef1234567890", "a1b2c3d4"},
		{"nodashes", "nodashes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortID(tt.id); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveSnapshotID(t *testing.T) {
	ctx := context.Background()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	defer st.Close()

	g := entity.NewGraph()
	if err := g.Add(&entity.Entity{Name: "Car", Kind: entity.KindClass}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	snap, err := store.New("demo", ".", 1, g)
	if err != nil {
		t.Fatalf("store.New() error: %v", err)
	}
	if err := st.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	t.Run("exact match", func(t *testing.T) {
		got, err := resolveSnapshotID(ctx, st, snap.ID)
		if err != nil {
			t.Fatalf("resolveSnapshotID() error: %v", err)
		}
		if got != snap.ID {
			t.Errorf("got %q, want %q", got, snap.ID)
		}
	})

	t.Run("prefix match", func(t *testing.T) {
		got, err := resolveSnapshotID(ctx, st, snap.ID[:8])
		if err != nil {
			t.Fatalf("resolveSnapshotID() error: %v", err)
		}
		if got != snap.ID {
			t.Errorf("got %q, want %q", got, snap.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolveSnapshotID(ctx, st, "zzzzzzzz")
		if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			t.Errorf("error = %v, want code %s", err, errors.ErrCodeSnapshotNotFound)
		}
	})
}

func TestResolveSnapshotIDAmbiguous(t *testing.T) {
	ctx := context.Background()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	defer st.Close()

	g := entity.NewGraph()
	if err := g.Add(&entity.Entity{Name: "Car", Kind: entity.KindClass}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	// Save until two snapshots share a first hex digit; bounded by the
	// pigeonhole principle at 17 tries.
	var prefix string
	seen := map[string]bool{}
	for i := 0; i < 17; i++ {
		snap, err := store.New("demo", ".", 1, g)
		if err != nil {
			t.Fatalf("store.New() error: %v", err)
		}
		if err := st.Save(ctx, snap); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		p := snap.ID[:1]
		if seen[p] {
			prefix = p
			break
		}
		seen[p] = true
	}
	if prefix == "" {
		t.Fatal("no shared prefix after 17 snapshots")
	}

	_, err = resolveSnapshotID(ctx, st, prefix)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidInput)
	}
}

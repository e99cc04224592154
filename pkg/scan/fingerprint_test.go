package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFingerprintStable(t *testing.T) {
	files := []File{
		{Path: "a.py", Size: 10, ModTime: time.Unix(1700000000, 0)},
		{Path: "b.py", Size: 20, ModTime: time.Unix(1700000100, 0)},
	}

	first := Fingerprint(files)
	second := Fingerprint(files)
	if first != second {
		t.Errorf("Fingerprint() not stable: %q != %q", first, second)
	}
	if len(first) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex chars", len(first))
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	base := []File{{Path: "a.py", Size: 10, ModTime: time.Unix(1700000000, 0)}}

	grown := []File{{Path: "a.py", Size: 11, ModTime: time.Unix(1700000000, 0)}}
	if Fingerprint(base) == Fingerprint(grown) {
		t.Error("Fingerprint() unchanged after size change")
	}

	touched := []File{{Path: "a.py", Size: 10, ModTime: time.Unix(1700000001, 0)}}
	if Fingerprint(base) == Fingerprint(touched) {
		t.Error("Fingerprint() unchanged after mtime change")
	}

	renamed := []File{{Path: "b.py", Size: 10, ModTime: time.Unix(1700000000, 0)}}
	if Fingerprint(base) == Fingerprint(renamed) {
		t.Error("Fingerprint() unchanged after rename")
	}
}

func TestFingerprintEmptySet(t *testing.T) {
	if got := Fingerprint(nil); len(got) != 64 {
		t.Errorf("Fingerprint(nil) length = %d, want 64", len(got))
	}
}

func TestFingerprintAfterRescan(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": "class A: pass"})

	s := New(Options{})
	first, err := s.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	second, err := s.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if Fingerprint(first) != Fingerprint(second) {
		t.Error("Fingerprint() differs across scans of an unchanged tree")
	}

	// Rewrite with different content length so size is guaranteed to move.
	if err := os.WriteFile(filepath.Join(dir, "a.py"), []byte("class A:\n    pass\n"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	third, err := s.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if Fingerprint(first) == Fingerprint(third) {
		t.Error("Fingerprint() unchanged after file modification")
	}
}

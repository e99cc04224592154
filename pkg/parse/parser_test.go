package parse_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codemap/pkg/parse"
	"github.com/matzehuels/codemap/pkg/parse/languages"
	"github.com/matzehuels/codemap/pkg/scan"
)

func writeFiles(t *testing.T, sources map[string]string) (string, []scan.File) {
	t.Helper()
	dir := t.TempDir()
	var files []scan.File
	for rel, src := range sources {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, scan.File{Path: rel})
	}
	slices.SortFunc(files, func(a, b scan.File) int {
		return strings.Compare(a.Path, b.Path)
	})
	return dir, files
}

func TestParserCrossFileLinks(t *testing.T) {
	root, files := writeFiles(t, map[string]string{
		"engine.py": "class Engine:\n    def start(self):\n        ignite()\n",
		"spark.py":  "def ignite():\n    pass\n",
	})

	p := parse.NewParser(languages.All, nil)
	res, err := p.ParseFiles(context.Background(), root, files)
	if err != nil {
		t.Fatalf("ParseFiles() error: %v", err)
	}

	if res.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", res.Parsed)
	}
	engine, ok := res.Graph.Entity("Engine")
	if !ok {
		t.Fatal("missing Engine entity")
	}
	if !engine.DependsOn("ignite") {
		t.Error("Engine should depend on ignite from the other file")
	}
	ignite, _ := res.Graph.Entity("ignite")
	if !ignite.UsedBy("Engine") {
		t.Error("ignite should record Engine as a user")
	}
}

func TestParserSkipsSyntaxErrors(t *testing.T) {
	root, files := writeFiles(t, map[string]string{
		"good.py":   "def fine():\n    pass\n",
		"broken.py": "def broken(:\n",
	})

	p := parse.NewParser(languages.All, log.New(io.Discard))
	res, err := p.ParseFiles(context.Background(), root, files)
	if err != nil {
		t.Fatalf("ParseFiles() error: %v", err)
	}

	if !slices.Contains(res.Skipped, "broken.py") {
		t.Errorf("Skipped = %v, want broken.py listed", res.Skipped)
	}
	if res.Parsed != 1 {
		t.Errorf("Parsed = %d, want 1", res.Parsed)
	}
	if !res.Graph.Contains("fine") {
		t.Error("entities from healthy files should survive a broken sibling")
	}
	if res.Graph.Contains("broken") {
		t.Error("entities from skipped files should not appear")
	}
}

func TestParserIgnoresUnclaimedFiles(t *testing.T) {
	root, files := writeFiles(t, map[string]string{
		"app.py":     "class App:\n    pass\n",
		"notes.text": "not code",
	})

	p := parse.NewParser(languages.All, nil)
	res, err := p.ParseFiles(context.Background(), root, files)
	if err != nil {
		t.Fatalf("ParseFiles() error: %v", err)
	}
	if res.Parsed != 1 {
		t.Errorf("Parsed = %d, want 1", res.Parsed)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", res.Skipped)
	}
}

func TestParserCanceledContext(t *testing.T) {
	root, files := writeFiles(t, map[string]string{
		"app.py": "class App:\n    pass\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := parse.NewParser(languages.All, nil)
	if _, err := p.ParseFiles(ctx, root, files); err == nil {
		t.Error("ParseFiles() with canceled context should fail")
	}
}

func TestParserMissingFile(t *testing.T) {
	p := parse.NewParser(languages.All, nil)
	_, err := p.ParseFiles(context.Background(), t.TempDir(), []scan.File{{Path: "ghost.py"}})
	if err == nil {
		t.Error("ParseFiles() should fail when a scanned file disappears")
	}
}

package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files under dir, keyed by slash-separated relative path.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) returned error: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) returned error: %v", rel, err)
		}
	}
}

func paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func TestScanDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.py":              "class A: pass",
		"pkg/b.py":          "class B: pass",
		"notes.txt":         "not python",
		".venv/lib.py":      "excluded",
		"venv/lib.py":       "excluded",
		"__pycache__/c.py":  "excluded",
		"node_modules/d.py": "excluded",
		".git/hooks/e.py":   "excluded",
		"pkg/sub/deep.py":   "class Deep: pass",
	})

	files, err := New(Options{}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	got := paths(files)
	want := []string{"a.py", "pkg/b.py", "pkg/sub/deep.py"}
	if len(got) != len(want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanExcludeFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.py": "",
		"skip.py": "",
	})

	files, err := New(Options{ExcludeFiles: []string{"skip.py"}}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != "keep.py" {
		t.Errorf("Scan() = %v, want [keep.py]", got)
	}
}

func TestScanGitignore(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		".gitignore":   "generated.py\nbuild/\n",
		"main.py":      "",
		"generated.py": "",
		"build/out.py": "",
	})

	files, err := New(Options{UseGitignore: true}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != "main.py" {
		t.Errorf("Scan() = %v, want [main.py]", got)
	}
}

func TestScanGitignoreDisabled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		".gitignore":   "generated.py\n",
		"generated.py": "",
	})

	files, err := New(Options{}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != "generated.py" {
		t.Errorf("Scan() = %v, want [generated.py]", got)
	}
}

func TestScanMissingGitignoreIsFine(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	files, err := New(Options{UseGitignore: true}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Scan() found %d files, want 1", len(files))
	}
}

func TestScanRootMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	if _, err := New(Options{}).Scan(context.Background(), filepath.Join(dir, "a.py")); err == nil {
		t.Error("Scan() on a file should return error")
	}
}

func TestScanCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(Options{}).Scan(ctx, dir); err == nil {
		t.Error("Scan() with canceled context should return error")
	}
}

func TestScanCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.py":  "",
		"b.pyi": "",
	})

	files, err := New(Options{Extensions: []string{".pyi"}}).Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != "b.pyi" {
		t.Errorf("Scan() = %v, want [b.pyi]", got)
	}
}

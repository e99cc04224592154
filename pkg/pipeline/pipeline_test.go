package pipeline

import (
	"testing"

	"github.com/matzehuels/codemap/pkg/errors"
)

func TestOptionsValidateForScan(t *testing.T) {
	// Missing root and graph file
	opts := Options{}
	if err := opts.ValidateForScan(); err == nil {
		t.Error("missing root should fail")
	}

	// Root alone is enough
	opts = Options{Root: "."}
	if err := opts.ValidateForScan(); err != nil {
		t.Errorf("valid options should pass: %v", err)
	}
	if len(opts.Languages) != 1 || opts.Languages[0] != DefaultLanguage {
		t.Errorf("expected default language %q, got %v", DefaultLanguage, opts.Languages)
	}
	if opts.Logger == nil {
		t.Error("expected default logger")
	}

	// Graph file alone is enough
	opts = Options{GraphFile: "graph.json"}
	if err := opts.ValidateForScan(); err != nil {
		t.Errorf("graph file options should pass: %v", err)
	}

	// Unsupported language
	opts = Options{Root: ".", Languages: []string{"cobol"}}
	err := opts.ValidateForScan()
	if !errors.Is(err, errors.ErrCodeInvalidLanguage) {
		t.Errorf("expected INVALID_LANGUAGE, got %v", err)
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	// Missing entity
	opts := Options{}
	err := opts.ValidateForRender()
	if !errors.Is(err, errors.ErrCodeInvalidEntity) {
		t.Errorf("expected INVALID_ENTITY, got %v", err)
	}

	// Defaults applied
	opts = Options{Entity: "Engine"}
	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("valid options should pass: %v", err)
	}
	if opts.Depth != DefaultDepth {
		t.Errorf("expected default depth %d, got %d", DefaultDepth, opts.Depth)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("expected default format %q, got %q", DefaultFormat, opts.Format)
	}

	// Invalid format
	opts = Options{Entity: "Engine", Format: "gif"}
	err = opts.ValidateForRender()
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}

	// Negative depth
	opts = Options{Entity: "Engine", Depth: -1}
	err = opts.ValidateForRender()
	if !errors.Is(err, errors.ErrCodeInvalidDepth) {
		t.Errorf("expected INVALID_DEPTH, got %v", err)
	}

	// Malformed entity name
	opts = Options{Entity: "no spaces"}
	err = opts.ValidateForRender()
	if !errors.Is(err, errors.ErrCodeInvalidEntity) {
		t.Errorf("expected INVALID_ENTITY, got %v", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		Root:   ".",
		Entity: "Engine",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}

	originalDepth := opts.Depth
	originalFormat := opts.Format
	originalLanguages := len(opts.Languages)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}

	if opts.Depth != originalDepth {
		t.Error("Depth changed on second call")
	}
	if opts.Format != originalFormat {
		t.Error("Format changed on second call")
	}
	if len(opts.Languages) != originalLanguages {
		t.Error("Languages changed on second call")
	}
}

func TestOptionsRenderKeyOpts(t *testing.T) {
	opts := Options{
		Entity:   "Engine",
		Depth:    3,
		Format:   "mermaid",
		Detailed: true,
	}

	key := opts.RenderKeyOpts()
	if key.Entity != "Engine" || key.Depth != 3 || key.Format != "mermaid" || !key.Detailed {
		t.Errorf("render key options lost fields: %+v", key)
	}
}

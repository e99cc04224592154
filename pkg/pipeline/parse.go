package pipeline

import (
	"context"

	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/io"
	"github.com/matzehuels/codemap/pkg/parse"
	"github.com/matzehuels/codemap/pkg/scan"
)

// Parse extracts the entity graph from the scanned files.
func Parse(ctx context.Context, root string, files []scan.File, opts Options) (*entity.Graph, error) {
	parser := parse.NewParser(selectedLanguages(opts), opts.Logger)
	result, err := parser.ParseFiles(ctx, root, files)
	if err != nil {
		return nil, err
	}
	if len(result.Skipped) > 0 {
		opts.Logger.Warn("skipped files with syntax errors", "count", len(result.Skipped))
	}
	return result.Graph, nil
}

// LoadGraph reads a pre-built graph JSON file, bypassing scan and parse.
func LoadGraph(path string) (*entity.Graph, error) {
	return io.ImportJSON(path)
}

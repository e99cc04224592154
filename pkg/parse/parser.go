package parse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/scan"
)

// ErrSyntax marks a file whose contents could not be parsed as valid source.
// The parser skips such files instead of failing the whole run.
var ErrSyntax = errors.New("syntax error")

// Parser turns scanned source files into an entity graph.
//
// The zero value is not usable - construct one with NewParser.
type Parser struct {
	Languages []*Language
	Logger    *log.Logger
}

// NewParser creates a parser for the given languages.
// If logger is nil, log.Default() is used.
func NewParser(languages []*Language, logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{Languages: languages, Logger: logger}
}

// Result carries the assembled graph plus per-run bookkeeping.
type Result struct {
	Graph   *entity.Graph
	Parsed  int      // files successfully parsed
	Skipped []string // files skipped because of syntax errors
}

// ParseFiles reads each scanned file under root, extracts declarations and
// relation facts per file, and assembles everything into one graph. Files
// with syntax errors are skipped with a warning; files no language claims
// are ignored. The file paths in files are interpreted relative to root,
// as produced by [scan.Scanner].
func (p *Parser) ParseFiles(ctx context.Context, root string, files []scan.File) (*Result, error) {
	res := &Result{}
	summaries := make([]*FileSummary, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lang := ForFile(f.Path, p.Languages)
		if lang == nil {
			continue
		}
		src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Path, err)
		}
		summary, err := lang.Parse(ctx, f.Path, src)
		if err != nil {
			if errors.Is(err, ErrSyntax) {
				p.Logger.Warn("skipping file with syntax errors", "file", f.Path)
				res.Skipped = append(res.Skipped, f.Path)
				continue
			}
			return nil, fmt.Errorf("parse %s: %w", f.Path, err)
		}
		summaries = append(summaries, summary)
		res.Parsed++
	}
	res.Graph = Assemble(summaries)
	return res, nil
}

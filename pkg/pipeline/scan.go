package pipeline

import (
	"context"
	"slices"

	"github.com/matzehuels/codemap/pkg/parse"
	"github.com/matzehuels/codemap/pkg/parse/languages"
	"github.com/matzehuels/codemap/pkg/scan"
)

// Scan walks the root and returns the source files for the selected languages.
func Scan(ctx context.Context, opts Options) ([]scan.File, error) {
	scanner := scan.New(scanOptions(opts))
	return scanner.Scan(ctx, opts.Root)
}

// scanOptions translates pipeline options into scanner options. Exclusions
// are added on top of the scanner defaults rather than replacing them.
func scanOptions(opts Options) scan.Options {
	var dirs []string
	if len(opts.Exclude) > 0 {
		dirs = append(slices.Clone(scan.DefaultExcludeDirs), opts.Exclude...)
	}
	return scan.Options{
		ExcludeDirs:  dirs,
		ExcludeFiles: opts.ExcludeFiles,
		Extensions:   parse.Extensions(selectedLanguages(opts)),
		UseGitignore: !opts.NoGitignore,
	}
}

// selectedLanguages resolves the configured language names against the
// registry. Unknown names were already rejected by validation.
func selectedLanguages(opts Options) []*parse.Language {
	var langs []*parse.Language
	for _, name := range opts.Languages {
		if lang := languages.Find(name); lang != nil {
			langs = append(langs, lang)
		}
	}
	return langs
}

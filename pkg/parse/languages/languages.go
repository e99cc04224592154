// Package languages provides the canonical list of supported source languages.
//
// This package exists to break import cycles: the individual language
// packages (python, ...) import pkg/parse, so pkg/parse cannot import them
// back. Consumers that need the full language list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/codemap/pkg/parse/languages"
//
//	parser := parse.NewParser(languages.All, nil)
package languages

import (
	"github.com/matzehuels/codemap/pkg/parse"
	"github.com/matzehuels/codemap/pkg/parse/python"
)

// All is the canonical list of supported source languages.
var All = []*parse.Language{
	python.Language,
}

// Find returns the Language with the given name, or nil if not found.
func Find(name string) *parse.Language {
	return parse.FindLanguage(name, All)
}

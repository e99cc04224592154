// Package parse extracts code entities and their relations from source files.
//
// # Overview
//
// Parsing happens in two phases. Each file is first reduced to a
// [FileSummary]: the classes and functions it declares, plus unresolved
// relation facts (base classes, constructor annotations, call sites). Once
// every file has a summary, [Assemble] builds the [entity.Graph] - all
// declarations before any relation, so references across files resolve no
// matter which file was read first.
//
// Language support is pluggable. A [Language] bundles a name, the file
// extensions it claims, and a parse function; concrete implementations live
// in subpackages (see pkg/parse/python) and the canonical list lives in
// pkg/parse/languages.
//
// # Basic Usage
//
//	files, _ := scanner.Scan(ctx, root)
//	parser := parse.NewParser(languages.All, nil)
//	result, err := parser.ParseFiles(ctx, root, files)
//	if err != nil {
//	    return err
//	}
//	graph := result.Graph
//
// Files that fail to parse are skipped with a warning and listed in
// [Result.Skipped]; a single broken file never aborts the run.
package parse

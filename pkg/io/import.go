package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/codemap/pkg/entity"
)

// ReadJSON decodes a JSON entity graph from r.
//
// The input must be a JSON object with an "entities" array:
//
//	{
//	  "entities": [
//	    {"name": "Engine", "kind": "class", "file": "engine.py", "line": 3,
//	     "dependencies": ["Part"], "used_by": ["Car"]}
//	  ]
//	}
//
// Each entity must have a unique "name" and a "kind" of "class" or
// "function". The file, line, dependencies and used_by fields are optional.
// Relation lists hold bare names and may reference entities that are not in
// the file; such dangling references are kept as-is, matching how parsed
// graphs record superclasses that were never defined in the scanned tree.
//
// ReadJSON returns an error if the JSON is malformed, a name appears twice,
// or a kind is unknown. Errors are wrapped with the offending entity's name.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*entity.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := entity.NewGraph()
	for _, rec := range data.Entities {
		if g.Contains(rec.Name) {
			return nil, fmt.Errorf("entity %s: duplicate name", rec.Name)
		}
		e := entity.New(rec.Name, entity.Kind(rec.Kind), rec.File, rec.Line)
		for _, dep := range rec.Dependencies {
			e.AddDependency(dep)
		}
		for _, user := range rec.UsedBy {
			e.AddUser(user)
		}
		if err := g.Add(e); err != nil {
			return nil, fmt.Errorf("entity %s: %w", rec.Name, err)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded entity graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*entity.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

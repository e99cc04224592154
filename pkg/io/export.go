package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/codemap/pkg/entity"
)

type document struct {
	Entities []record `json:"entities"`
}

type record struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	File         string   `json:"file,omitempty"`
	Line         int      `json:"line,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	UsedBy       []string `json:"used_by,omitempty"`
}

// WriteJSON encodes an entity graph as JSON and writes it to w.
// Entities and their relation lists are sorted by name, so equal graphs
// always produce identical bytes. The output can be re-imported with
// [ReadJSON] for round-trip processing.
func WriteJSON(g *entity.Graph, w io.Writer) error {
	ents := g.Entities()
	out := document{Entities: make([]record, len(ents))}

	for i, e := range ents {
		out.Entities[i] = record{
			Name:         e.Name,
			Kind:         string(e.Kind),
			File:         e.File,
			Line:         e.Line,
			Dependencies: e.Dependencies(),
			UsedBy:       e.Users(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes an entity graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *entity.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

package entity

import (
	"encoding/json"
	"fmt"
)

// Document is the canonical serialization format for entity graphs.
// Used for file export, caching, snapshot storage, and API responses.
//
// The format is human-readable and designed for round-trip fidelity:
// export → re-import produces an identical graph, including one-sided
// relations and dangling references.
type Document struct {
	Entities []Record `json:"entities" bson:"entities"`
}

// Record is the serialized form of a single entity.
type Record struct {
	Name         string   `json:"name" bson:"name"`
	Kind         string   `json:"kind" bson:"kind"`
	File         string   `json:"file,omitempty" bson:"file,omitempty"`
	Line         int      `json:"line,omitempty" bson:"line,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
	UsedBy       []string `json:"used_by,omitempty" bson:"used_by,omitempty"`
}

// FromGraph converts a graph to its serialization format.
// Entities and their relation lists are sorted for deterministic output.
func FromGraph(g *Graph) Document {
	doc := Document{Entities: make([]Record, 0, g.Len())}
	for _, e := range g.Entities() {
		doc.Entities = append(doc.Entities, Record{
			Name:         e.Name,
			Kind:         string(e.Kind),
			File:         e.File,
			Line:         e.Line,
			Dependencies: e.Dependencies(),
			UsedBy:       e.Users(),
		})
	}
	return doc
}

// Graph rebuilds an entity graph from its serialized form. Relations are
// restored exactly as recorded - no symmetrization or dangling-reference
// repair is performed.
func (d Document) Graph() (*Graph, error) {
	g := NewGraph()
	for _, rec := range d.Entities {
		e := New(rec.Name, Kind(rec.Kind), rec.File, rec.Line)
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

// MarshalGraph encodes a graph as JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	return json.Marshal(FromGraph(g))
}

// UnmarshalGraph decodes JSON bytes into a graph.
func UnmarshalGraph(data []byte) (*Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.Graph()
}

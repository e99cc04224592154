package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/codemap/pkg/buildinfo"
	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/errors"
	"github.com/matzehuels/codemap/pkg/observability"
	"github.com/matzehuels/codemap/pkg/pipeline"
	"github.com/matzehuels/codemap/pkg/render"
)

// =============================================================================
// Health
// =============================================================================

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Entities int    `json:"entities"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Version:  buildinfo.Version,
		Entities: s.graph.Len(),
	})
}

// =============================================================================
// Entities
// =============================================================================

// entityView is the JSON shape of a single entity.
type entityView struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	File         string   `json:"file,omitempty"`
	Line         int      `json:"line,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	UsedBy       []string `json:"used_by,omitempty"`
}

// entitiesResponse is the body of GET /api/entities.
type entitiesResponse struct {
	Entities []entityView `json:"entities"`
	Count    int          `json:"count"`
}

func viewOf(e *entity.Entity) entityView {
	return entityView{
		Name:         e.Name,
		Kind:         string(e.Kind),
		File:         e.File,
		Line:         e.Line,
		Dependencies: e.Dependencies(),
		UsedBy:       e.Users(),
	}
}

// handleEntities lists all entities, optionally filtered by ?kind=.
func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	kindFilter := r.URL.Query().Get("kind")
	if kindFilter != "" && !entity.Kind(kindFilter).Valid() {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"invalid kind %q (must be %q or %q)", kindFilter, entity.KindClass, entity.KindFunction))
		return
	}

	views := make([]entityView, 0, s.graph.Len())
	for _, e := range s.graph.Entities() {
		if kindFilter != "" && string(e.Kind) != kindFilter {
			continue
		}
		views = append(views, viewOf(e))
	}

	s.writeJSON(w, http.StatusOK, entitiesResponse{Entities: views, Count: len(views)})
}

// handleEntity returns the detail view of a single entity.
func (s *Server) handleEntity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	e, ok := s.graph.Entity(name)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeEntityNotFound, "entity %q not found", name))
		return
	}
	s.writeJSON(w, http.StatusOK, viewOf(e))
}

// =============================================================================
// Diagram
// =============================================================================

// handleDiagram renders a diagram for ?entity= at ?depth= in ?format=.
// Rendered bytes are cached per (entity, depth, format) since the graph is
// immutable for the lifetime of the server.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("entity")
	if name == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing required parameter 'entity'"))
		return
	}
	if !s.graph.Contains(name) {
		s.writeError(w, errors.New(errors.ErrCodeEntityNotFound, "entity %q not found", name))
		return
	}

	depth := pipeline.DefaultDepth
	if raw := q.Get("depth"); raw != "" {
		var err error
		depth, err = strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidDepth, "depth %q is not an integer", raw))
			return
		}
		if err := errors.ValidateDepth(depth); err != nil {
			s.writeError(w, err)
			return
		}
	}

	formatStr := q.Get("format")
	if formatStr == "" {
		formatStr = pipeline.DefaultFormat
	}
	format, err := render.ParseFormat(formatStr)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid format %q", formatStr))
		return
	}

	key := fmt.Sprintf("%s|%d|%s", name, depth, format)
	if data, ok := s.diagrams.Get(key); ok {
		observability.Cache().OnCacheHit(r.Context(), "diagram")
		s.writeDiagram(w, format, data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "diagram")

	data, err := pipeline.Render(r.Context(), s.graph, pipeline.Options{
		Entity: name,
		Depth:  depth,
		Format: string(format),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.diagrams.Add(key, data)
	observability.Cache().OnCacheSet(r.Context(), "diagram", len(data))
	s.writeDiagram(w, format, data)
}

// writeDiagram writes the rendered bytes with the format's content type.
func (s *Server) writeDiagram(w http.ResponseWriter, format render.Format, data []byte) {
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("write diagram", "error", err)
	}
}

// contentType maps a render format to its MIME type.
func contentType(format render.Format) string {
	switch format {
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "text/plain; charset=utf-8"
	}
}

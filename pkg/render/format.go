package render

import (
	"fmt"
	"strings"
)

// Format identifies a diagram output format.
type Format string

const (
	// FormatASCII is the box-and-arrow text diagram, the default output.
	FormatASCII Format = "ascii"
	// FormatText is the indented dependency tree.
	FormatText Format = "text"
	// FormatMermaid is Mermaid flowchart markup.
	FormatMermaid Format = "mermaid"
	// FormatDOT is Graphviz DOT source.
	FormatDOT Format = "dot"
	// FormatSVG is an SVG rendering of the DOT output.
	FormatSVG Format = "svg"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatASCII, FormatText, FormatMermaid, FormatDOT, FormatSVG}
}

// ParseFormat maps a user-supplied name onto a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: %s)", s, formatList())
}

// Binary reports whether the format produces bytes that should not be
// printed to a terminal.
func (f Format) Binary() bool {
	return f == FormatSVG
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

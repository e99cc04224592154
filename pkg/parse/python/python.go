package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/matzehuels/codemap/pkg/entity"
	"github.com/matzehuels/codemap/pkg/parse"
)

// Language parses Python source with tree-sitter. See the package
// documentation for the extraction rules.
var Language = &parse.Language{
	Name:       "python",
	Extensions: []string{".py"},
	Parse:      parseFile,
}

func parseFile(ctx context.Context, path string, src []byte) (*parse.FileSummary, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w in %s", parse.ErrSyntax, path)
	}

	w := &walker{src: src, out: &parse.FileSummary{Path: path}}
	w.walk(root, "")
	return w.out, nil
}

// walker accumulates declarations and relation facts from one parse tree.
// The owner parameter threads the nearest enclosing entity name through the
// walk: a call inside a method belongs to the class, a call inside a plain
// function to that function, and a module-level call to nobody.
type walker struct {
	src []byte
	out *parse.FileSummary
}

func (w *walker) walk(n *sitter.Node, owner string) {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "class_definition":
			w.class(c)
		case "function_definition":
			w.function(c)
		case "decorated_definition":
			w.decorated(c, owner, false)
		case "call":
			w.call(c, owner)
			w.walk(c, owner) // nested calls in the argument list
		default:
			w.walk(c, owner)
		}
	}
}

func (w *walker) class(n *sitter.Node) {
	name := ""
	var bases, body *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "identifier":
			if name == "" {
				name = w.text(c)
			}
		case "argument_list":
			bases = c
		case "block":
			body = c
		}
	}
	if name == "" {
		return
	}
	w.declare(name, entity.KindClass, n)

	if bases != nil {
		for i := 0; i < int(bases.ChildCount()); i++ {
			if c := bases.Child(i); c.Type() == "identifier" {
				w.relate(parse.RelationBase, name, w.text(c))
			}
		}
		w.walk(bases, name)
	}
	if body != nil {
		w.classBody(body, name)
	}
}

// classBody walks the direct statements of a class block. A function
// definition here is a method: not an entity itself, but its body is
// scanned with the class as owner, and __init__ contributes constructor
// annotation links. Definitions nested any deeper (inside an if, or inside
// a method body) are out of method position and go through walk.
func (w *walker) classBody(block *sitter.Node, class string) {
	for i := 0; i < int(block.ChildCount()); i++ {
		c := block.Child(i)
		switch c.Type() {
		case "function_definition":
			w.method(c, class)
		case "class_definition":
			w.class(c)
		case "decorated_definition":
			w.decorated(c, class, true)
		default:
			w.walk(c, class)
		}
	}
}

func (w *walker) method(n *sitter.Node, class string) {
	name := ""
	var params *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "identifier":
			if name == "" {
				name = w.text(c)
			}
		case "parameters":
			params = c
		}
	}
	if name == "__init__" && params != nil {
		w.constructorParams(params, class)
	}
	w.walk(n, class)
}

// constructorParams records annotation links from __init__ parameters.
// Only plain-identifier annotations count: "engine: Engine" links the class
// to Engine, while "engines: list[Engine]" records nothing. The first
// parameter (self) and keyword-only parameters are skipped.
func (w *walker) constructorParams(params *sitter.Node, class string) {
	seen := 0
	for i := 0; i < int(params.ChildCount()); i++ {
		c := params.Child(i)
		switch c.Type() {
		case "identifier", "default_parameter":
			seen++
		case "typed_parameter", "typed_default_parameter":
			seen++
			if seen == 1 {
				continue
			}
			if t := w.annotation(c); t != "" {
				w.relate(parse.RelationAnnotation, class, t)
			}
		case "keyword_separator":
			return
		}
	}
}

// annotation returns the parameter's annotated type when it is a plain
// identifier, and "" otherwise.
func (w *walker) annotation(param *sitter.Node) string {
	for i := 0; i < int(param.ChildCount()); i++ {
		c := param.Child(i)
		if c.Type() != "type" {
			continue
		}
		if c.ChildCount() == 1 && c.Child(0).Type() == "identifier" {
			return w.text(c.Child(0))
		}
	}
	return ""
}

func (w *walker) function(n *sitter.Node) {
	name := ""
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == "identifier" {
			name = w.text(c)
			break
		}
	}
	if name == "" {
		return
	}
	w.declare(name, entity.KindFunction, n)
	w.walk(n, name)
}

// decorated unwraps a decorated_definition. Decorator expressions belong to
// the definition they decorate: a call in a method's decorator links from
// the class, one on a plain function from that function.
func (w *walker) decorated(n *sitter.Node, owner string, inClass bool) {
	var def *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if t := c.Type(); t == "class_definition" || t == "function_definition" {
			def = c
		}
	}
	if def == nil {
		w.walk(n, owner)
		return
	}

	decoOwner := owner
	if def.Type() == "class_definition" || !inClass {
		decoOwner = w.defName(def)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == "decorator" {
			w.walk(c, decoOwner)
		}
	}

	switch {
	case def.Type() == "class_definition":
		w.class(def)
	case inClass:
		w.method(def, owner)
	default:
		w.function(def)
	}
}

// call records a dependency from the owning entity to the callee. Only
// plain-name calls count: Engine() does, obj.method() does not. Calls
// outside any entity are dropped.
func (w *walker) call(n *sitter.Node, owner string) {
	if owner == "" {
		return
	}
	fn := n.Child(0)
	if fn == nil || fn.Type() != "identifier" {
		return
	}
	w.relate(parse.RelationCall, owner, w.text(fn))
}

func (w *walker) defName(def *sitter.Node) string {
	for i := 0; i < int(def.ChildCount()); i++ {
		if c := def.Child(i); c.Type() == "identifier" {
			return w.text(c)
		}
	}
	return ""
}

func (w *walker) declare(name string, kind entity.Kind, n *sitter.Node) {
	w.out.Declarations = append(w.out.Declarations, parse.Declaration{
		Name: name,
		Kind: kind,
		Line: int(n.StartPoint().Row) + 1,
	})
}

func (w *walker) relate(kind parse.RelationKind, from, to string) {
	w.out.Relations = append(w.out.Relations, parse.Relation{Kind: kind, From: from, To: to})
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.src[n.StartByte():n.EndByte()])
}

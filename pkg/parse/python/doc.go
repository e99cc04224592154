// Package python extracts entities from Python source using tree-sitter.
//
// # Extraction Rules
//
// Class definitions become class entities wherever they appear. Plain
// identifiers in a class's base list become one-sided dependencies of the
// class; the base does not need to be declared anywhere.
//
// Function definitions become function entities unless they sit in method
// position, i.e. directly in a class body. Methods are folded into their
// class: a call inside a method counts as the class calling, and plain
// identifier annotations on __init__ parameters (after self) link the class
// to the annotated type. A def nested inside another function, or inside a
// method, is a function entity of its own.
//
// Call expressions whose callee is a plain identifier record a dependency
// from the nearest enclosing entity to the callee. Attribute calls like
// obj.method() and module-level calls are ignored.
//
// Whether a relation survives depends on the assembled graph: base-class
// references may dangle, while annotation and call links require both ends
// to be declared entities. See [parse.Assemble].
//
// Files whose parse tree contains errors are rejected with [parse.ErrSyntax]
// so the caller can skip them.
package python

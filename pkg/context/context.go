// Package context carries the ambient services threaded through symbol,
// type, and tree computations: a base symbol-table capability, plus the
// file, class, and root-load capabilities layered on top of it as work
// descends into a particular source file, class, or root-population call.
package context

import (
	"unicode"

	"github.com/chiefpi/tasty-query/pkg/classpath"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

// Context is an immutable, layered bundle of ambient capabilities. Each
// With* method returns a new Context with one more capability attached;
// the base table is shared across all of them.
type Context struct {
	table *symbols.Table
	file  string
	class *symbols.ClassSymbol
	root  classpath.LoadRoot
}

// New builds a base Context over table, with no file, class, or
// root-load capability attached.
func New(table *symbols.Table) *Context {
	return &Context{table: table}
}

// Table returns the underlying symbol table.
func (c *Context) Table() *symbols.Table { return c.table }

// WithFile attaches the file capability, recording which source/debug
// path subsequent symbol and diagnostic construction should attribute
// itself to.
func (c *Context) WithFile(path string) *Context {
	child := *c
	child.file = path
	return &child
}

// File returns the attached file path, or "" if the file capability has
// not been attached.
func (c *Context) File() string { return c.file }

// WithClass attaches the class capability, scoping subsequent lookups
// and glue calls to cls's member namespace.
func (c *Context) WithClass(cls *symbols.ClassSymbol) *Context {
	child := *c
	child.class = cls
	return &child
}

// Class returns the attached class symbol, or nil if the class
// capability has not been attached.
func (c *Context) Class() *symbols.ClassSymbol { return c.class }

// WithRootLoad attaches the root-load capability: token proves the
// caller is inside a Loader.ScanClass call, so operations gated on it
// (installing a root's symbols) are permitted.
func (c *Context) WithRootLoad(token classpath.LoadRoot) *Context {
	child := *c
	child.root = token
	return &child
}

// HasRootLoad reports whether the root-load capability is attached.
func (c *Context) HasRootLoad() bool { return c.root != (classpath.LoadRoot{}) }

// FindSymbol resolves a dotted package/class path ("a.b.Foo") against
// the table's root package, walking package members first and, for the
// final segment, falling back to a direct member lookup (term or type)
// on whichever package symbol it reached.
func (c *Context) FindSymbol(path []string) (symbols.Symbol, bool) {
	if len(path) == 0 {
		return symbols.NoSymbol, false
	}
	current := symbols.Symbol(c.table.Root)
	for _, segment := range path[:len(path)-1] {
		next, ok := current.Lookup(names.Simple(segment))
		if !ok {
			return symbols.NoSymbol, false
		}
		current = next
	}

	// The final segment may name either a term (plain simple name) or a
	// class (type-namespace name). A capitalized segment is tried as a
	// type name first, matching the source language's naming convention
	// for classes/objects; either way, the other namespace is the fallback.
	last := path[len(path)-1]
	simple := names.Simple(last)
	typeName := names.AsType(simple)
	first, _ := firstRune(last)
	order := []names.Name{simple, typeName}
	if unicode.IsUpper(first) {
		order = []names.Name{typeName, simple}
	}
	for _, candidate := range order {
		if sym, ok := current.Lookup(candidate); ok {
			return sym, true
		}
	}
	return symbols.NoSymbol, false
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// Package symbols implements the symbol table: named, owned declarations
// rooted at a single root package. Every declaring symbol holds a
// name -> child map; owner chains always terminate at the root package.
package symbols

import (
	"fmt"

	"github.com/chiefpi/tasty-query/pkg/names"
)

// Kind discriminates the symbol table's closed set of symbol shapes.
type Kind string

const (
	KindPackageClass Kind = "PackageClass"
	KindClass        Kind = "Class"
	KindRegular      Kind = "Regular"
	KindNone         Kind = "NoSymbol"
)

// Symbol is the interface shared by every symbol table entry. Tree is
// returned as `any` rather than a concrete tree type to avoid an import
// cycle with the tree package, which itself references Symbol on every
// DefTree; callers type-assert it back to the tree package's Tree
// interface.
type Symbol interface {
	fmt.Stringer

	Name() names.Name
	Owner() Symbol
	Kind() Kind
	Initialised() bool
	MarkInitialised()
	Tree() any
	SetTree(t any) error

	Declare(name names.Name, child Symbol) error
	Lookup(name names.Name) (Symbol, bool)
	Members() map[names.Name]Symbol
}

type base struct {
	name        names.Name
	owner       Symbol
	initialised bool
	tree        any
	treeSet     bool
	members     map[names.Name]Symbol
}

func newBase(name names.Name, owner Symbol) base {
	return base{name: name, owner: owner, members: make(map[names.Name]Symbol)}
}

func (b *base) Name() names.Name   { return b.name }
func (b *base) Owner() Symbol      { return b.owner }
func (b *base) Initialised() bool  { return b.initialised }
func (b *base) MarkInitialised()   { b.initialised = true }
func (b *base) Tree() any          { return b.tree }

// SetTree is a one-shot link from a symbol to its defining tree; a
// second call fails.
func (b *base) SetTree(t any) error {
	if b.treeSet {
		return fmt.Errorf("symbols: defining tree for %q is already set", b.name)
	}
	b.tree = t
	b.treeSet = true
	return nil
}

// Declare inserts a named child, failing if the name is already bound.
func (b *base) Declare(name names.Name, child Symbol) error {
	if _, exists := b.members[name]; exists {
		return fmt.Errorf("symbols: %q already declares a member named %q", b.name, name)
	}
	b.members[name] = child
	return nil
}

func (b *base) Lookup(name names.Name) (Symbol, bool) {
	s, ok := b.members[name]
	return s, ok
}

func (b *base) Members() map[names.Name]Symbol {
	out := make(map[names.Name]Symbol, len(b.members))
	for k, v := range b.members {
		out[k] = v
	}
	return out
}

func (b *base) String() string { return b.name.String() }

// RegularSymbol covers vals, defs, type members, type params, and binds.
type RegularSymbol struct{ base }

func (*RegularSymbol) Kind() Kind { return KindRegular }

// ClassSymbol represents a class (or object-class companion). It gains a
// populated set of members once the root it belongs to has been scanned.
type ClassSymbol struct {
	base
	outer           Symbol
	isPackageMember bool
	populated       bool
}

func (*ClassSymbol) Kind() Kind { return KindClass }

// Outer returns the lexically enclosing symbol (not necessarily the
// owner, which for top-level classes is the owning package).
func (c *ClassSymbol) Outer() Symbol { return c.outer }

// IsPackageMember reports whether this class is a direct package member
// (a "root", in loader terminology) rather than nested inside another
// class.
func (c *ClassSymbol) IsPackageMember() bool { return c.isPackageMember }

// Populated reports whether the root-scan has filled in this class's
// members.
func (c *ClassSymbol) Populated() bool { return c.populated }

// MarkPopulated records that root-scan has populated this class.
func (c *ClassSymbol) MarkPopulated() { c.populated = true }

// PackageClassSymbol is a package: it declares sub-package and class
// symbols as members.
type PackageClassSymbol struct{ base }

func (*PackageClassSymbol) Kind() Kind { return KindPackageClass }

// noSymbol is the sentinel absent-symbol value.
type noSymbol struct{}

func (noSymbol) Name() names.Name                        { return names.EmptyTermName }
func (noSymbol) Owner() Symbol                           { return NoSymbol }
func (noSymbol) Kind() Kind                              { return KindNone }
func (noSymbol) Initialised() bool                       { return true }
func (noSymbol) MarkInitialised()                        {}
func (noSymbol) Tree() any                               { return nil }
func (noSymbol) SetTree(any) error                       { return fmt.Errorf("symbols: cannot set defining tree on NoSymbol") }
func (noSymbol) Declare(names.Name, Symbol) error        { return fmt.Errorf("symbols: cannot declare members on NoSymbol") }
func (noSymbol) Lookup(names.Name) (Symbol, bool)        { return nil, false }
func (noSymbol) Members() map[names.Name]Symbol          { return nil }
func (noSymbol) String() string                          { return "<none>" }

// NoSymbol is the sentinel used where no symbol applies.
var NoSymbol Symbol = noSymbol{}

// NewRootPackage constructs the root package symbol — the unique symbol
// whose owner is NoSymbol and at which every owner chain terminates.
func NewRootPackage() *PackageClassSymbol {
	return &PackageClassSymbol{base: newBase(names.EmptyTermName, NoSymbol)}
}

// NewRegularSymbol creates a detached regular symbol; use Table.CreateSymbol
// to create one linked into an owner's member map.
func NewRegularSymbol(name names.Name, owner Symbol) *RegularSymbol {
	return &RegularSymbol{base: newBase(name, owner)}
}

// NewClassSymbol creates a detached class symbol; use Table.CreateClassSymbol
// to create one linked into an owner's member map.
func NewClassSymbol(typeName names.Name, owner Symbol, outer Symbol, isPackageMember bool) *ClassSymbol {
	return &ClassSymbol{base: newBase(typeName, owner), outer: outer, isPackageMember: isPackageMember}
}

// NewPackageClassSymbol creates a detached package symbol; use
// Table.CreatePackageSymbolIfNew for the idempotent, owner-linking form.
func NewPackageClassSymbol(name names.Name, owner Symbol) *PackageClassSymbol {
	return &PackageClassSymbol{base: newBase(name, owner)}
}

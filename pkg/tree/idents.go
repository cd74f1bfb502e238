package tree

import (
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/types"
)

// FreeIdent is an unresolved reference that survived decoding without
// being linked to a symbol; it carries its own type when the encoder
// recorded one.
type FreeIdent struct {
	base
	Name names.Name
	Type types.Type
}

func NewFreeIdent(name names.Name, typ types.Type) *FreeIdent {
	return &FreeIdent{base: newBase(KindFreeIdent), Name: name, Type: typ}
}

// ImportIdent names one member inside an Import/Export selector.
type ImportIdent struct {
	base
	Name names.Name
}

func NewImportIdent(name names.Name) *ImportIdent {
	return &ImportIdent{base: newBase(KindImportIdent), Name: name}
}

// TermRefTree is a term reference whose type was already resolved at
// decode time (the "SimpleRef" shape).
type TermRefTree struct {
	base
	Name names.Name
	Type types.Type
}

func NewTermRefTree(name names.Name, typ types.Type) *TermRefTree {
	return &TermRefTree{base: newBase(KindTermRefTree), Name: name, Type: typ}
}

// ReferencedPackage names a package directly, without going through
// symbol lookup.
type ReferencedPackage struct {
	base
	Name names.Name
}

func NewReferencedPackage(name names.Name) *ReferencedPackage {
	return &ReferencedPackage{base: newBase(KindReferencedPkg), Name: name}
}

// EmptyTree is the singleton absence-of-a-tree placeholder.
type emptyTree struct{ base }

func (emptyTree) String() string { return "EmptyTree" }

// EmptyTree is the shared empty-tree value; decoder glue substitutes it
// wherever TASTy encodes an absent optional subtree.
var EmptyTree Tree = &emptyTree{base: newBase(KindEmptyTree)}

// IsEmpty reports whether t is the EmptyTree/EmptyTypeTree sentinel (or
// nil), the two interchangeable "absent subtree" markers decoder glue
// substitutes for optional TASTy fields.
func IsEmpty(t Tree) bool {
	if t == nil {
		return true
	}
	switch t.(type) {
	case *emptyTree, *emptyTypeTree:
		return true
	default:
		return false
	}
}

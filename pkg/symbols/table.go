package symbols

import (
	"fmt"

	"github.com/chiefpi/tasty-query/pkg/names"
)

// Table owns symbol creation for one loader's worth of packages and
// classes. It is a thin façade over Symbol.Declare/Lookup that adds the
// creation-time invariants from spec §4.2 (duplicate rejection,
// idempotent package creation, atomic package-enter).
type Table struct {
	Root *PackageClassSymbol
}

// NewTable creates a symbol table rooted at a fresh root package.
func NewTable() *Table {
	return &Table{Root: NewRootPackage()}
}

// CreateSymbol creates a RegularSymbol named name under owner, failing if
// owner already declares a regular symbol of that name.
func (t *Table) CreateSymbol(name names.Name, owner Symbol) (*RegularSymbol, error) {
	if existing, ok := owner.Lookup(name); ok {
		if _, isRegular := existing.(*RegularSymbol); isRegular {
			return nil, fmt.Errorf("symbols: %q already declares a regular symbol named %q", owner, name)
		}
	}
	sym := NewRegularSymbol(name, owner)
	if err := owner.Declare(name, sym); err != nil {
		return nil, err
	}
	return sym, nil
}

// CreateClassSymbol creates a ClassSymbol for typeName under owner,
// failing if owner already declares a class symbol of that name.
func (t *Table) CreateClassSymbol(typeName names.Name, owner Symbol) (*ClassSymbol, error) {
	if existing, ok := owner.Lookup(typeName); ok {
		if _, isClass := existing.(*ClassSymbol); isClass {
			return nil, fmt.Errorf("symbols: %q already declares a class symbol named %q", owner, typeName)
		}
	}
	_, isPackageMember := owner.(*PackageClassSymbol)
	sym := NewClassSymbol(typeName, owner, owner, isPackageMember)
	if err := owner.Declare(typeName, sym); err != nil {
		return nil, err
	}
	return sym, nil
}

// CreatePackageSymbolIfNew returns the existing sub-package symbol named
// name under parentPackage if one already exists, or creates and links
// a new one. The operation is idempotent.
func (t *Table) CreatePackageSymbolIfNew(name names.Name, parentPackage *PackageClassSymbol) (*PackageClassSymbol, error) {
	if existing, ok := parentPackage.Lookup(name); ok {
		pkg, isPackage := existing.(*PackageClassSymbol)
		if !isPackage {
			return nil, fmt.Errorf("symbols: %q already declares a non-package member named %q", parentPackage, name)
		}
		return pkg, nil
	}
	pkg := NewPackageClassSymbol(name, parentPackage)
	if err := parentPackage.Declare(name, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// SetTree is the one-shot link from symbol to its defining tree.
func (t *Table) SetTree(sym Symbol, tree any) error {
	return sym.SetTree(tree)
}

// ToPackageName walks a dotted package path ("a.b.c") from the root,
// creating any missing package symbols via CreatePackageSymbolIfNew. The
// returned symbol chain has owners root -> a -> a.b -> a.b.c. The walk is
// driven by names.Subnames' left-associative prefix expansion: each
// growing prefix's final segment is the local name declared under the
// previous step's package symbol.
func (t *Table) ToPackageName(path []string) (*PackageClassSymbol, error) {
	current := t.Root
	for _, prefix := range names.Subnames(path) {
		next, err := t.CreatePackageSymbolIfNew(names.Last(prefix), current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// EnterRoot performs the three-step package-enter sequence for a root R
// owned by O: a term object symbol for R, a class symbol for R's
// object-class companion, and a class symbol for R as a type name. All
// three succeed or the operation is reverted (the owner's member map is
// left exactly as it was found).
func (t *Table) EnterRoot(simpleName string, owner *PackageClassSymbol) (term *RegularSymbol, objectClass, classType *ClassSymbol, err error) {
	rootName := names.Simple(simpleName)

	term, err = t.CreateSymbol(rootName, owner)
	if err != nil {
		return nil, nil, nil, err
	}
	objectClass, err = t.CreateClassSymbol(names.AsType(names.ObjectClass(rootName)), owner)
	if err != nil {
		t.revert(owner, rootName)
		return nil, nil, nil, err
	}
	classType, err = t.CreateClassSymbol(names.AsType(rootName), owner)
	if err != nil {
		t.revert(owner, rootName, names.AsType(names.ObjectClass(rootName)))
		return nil, nil, nil, err
	}
	return term, objectClass, classType, nil
}

// revert removes the named members that a partially-failed EnterRoot
// call had already declared on owner.
func (t *Table) revert(owner *PackageClassSymbol, names_ ...names.Name) {
	for _, n := range names_ {
		delete(owner.base.members, n)
	}
}

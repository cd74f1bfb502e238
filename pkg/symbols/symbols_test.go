package symbols

import (
	"testing"

	"github.com/chiefpi/tasty-query/pkg/names"
)

func TestCreateSymbolRejectsDuplicate(t *testing.T) {
	table := NewTable()
	if _, err := table.CreateSymbol(names.Simple("x"), table.Root); err != nil {
		t.Fatalf("unexpected error on first create: %v", err)
	}
	if _, err := table.CreateSymbol(names.Simple("x"), table.Root); err == nil {
		t.Fatalf("expected duplicate regular symbol creation to fail")
	}
}

func TestCreatePackageSymbolIfNewIsIdempotent(t *testing.T) {
	table := NewTable()
	first, err := table.CreatePackageSymbolIfNew(names.Simple("a"), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := table.CreatePackageSymbolIfNew(names.Simple("a"), table.Root)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if first != second {
		t.Fatalf("expected CreatePackageSymbolIfNew to return the same symbol instance")
	}
}

func TestToPackageNameOwnerChain(t *testing.T) {
	table := NewTable()
	leaf, err := table.ToPackageName([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := leaf.Name().String(), "c"; got != want {
		t.Fatalf("leaf name = %q, want %q", got, want)
	}
	b := leaf.Owner()
	if got, want := b.Name().String(), "b"; got != want {
		t.Fatalf("owner name = %q, want %q", got, want)
	}
	a := b.Owner()
	if got, want := a.Name().String(), "a"; got != want {
		t.Fatalf("owner's owner name = %q, want %q", got, want)
	}
	if a.Owner() != table.Root {
		t.Fatalf("expected owner chain to terminate at the root package")
	}
}

func TestSetTreeIsOneShot(t *testing.T) {
	table := NewTable()
	sym, err := table.CreateSymbol(names.Simple("x"), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := table.SetTree(sym, "defining-tree-stub"); err != nil {
		t.Fatalf("unexpected error on first SetTree: %v", err)
	}
	if err := table.SetTree(sym, "another-tree"); err == nil {
		t.Fatalf("expected second SetTree call to fail")
	}
}

func TestEnterRootCreatesThreeSymbolsAtomically(t *testing.T) {
	table := NewTable()
	term, objectClass, classType, err := table.EnterRoot("Foo", table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.Name().String() != "Foo" {
		t.Fatalf("term symbol name = %q", term.Name())
	}
	typeName, ok := objectClass.Name().(names.TypeName)
	if !ok || !names.IsObjectClassSuffixed(typeName.Underlying) {
		t.Fatalf("expected object-class symbol name to be object-class suffixed, got %v", objectClass.Name())
	}
	if !names.IsType(classType.Name()) {
		t.Fatalf("expected class type symbol name to be a TypeName, got %v", classType.Name())
	}
}

func TestEnterRootRevertsOnConflict(t *testing.T) {
	table := NewTable()
	if _, err := table.CreateSymbol(names.Simple("Foo"), table.Root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(table.Root.Members())
	if _, _, _, err := table.EnterRoot("Foo", table.Root); err == nil {
		t.Fatalf("expected EnterRoot to fail due to pre-existing term symbol")
	}
	if got := len(table.Root.Members()); got != before {
		t.Fatalf("expected owner's member count to be unchanged after revert, got %d want %d", got, before)
	}
}

func TestNoSymbolSentinel(t *testing.T) {
	if NoSymbol.Kind() != KindNone {
		t.Fatalf("expected NoSymbol.Kind() == KindNone")
	}
	if NoSymbol.Owner() != NoSymbol {
		t.Fatalf("expected NoSymbol to own itself")
	}
}

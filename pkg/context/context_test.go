package context

import (
	"testing"

	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

func TestFindSymbolWalksPackagePath(t *testing.T) {
	table := symbols.NewTable()
	leaf, err := table.ToPackageName([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := table.CreateSymbol(names.Simple("Foo"), leaf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := New(table)
	sym, ok := ctx.FindSymbol([]string{"a", "b", "Foo"})
	if !ok {
		t.Fatalf("expected to find a.b.Foo")
	}
	if sym.Name().String() != "Foo" {
		t.Fatalf("found symbol name = %q, want Foo", sym.Name())
	}
}

func TestFindSymbolMissingSegmentFails(t *testing.T) {
	table := symbols.NewTable()
	ctx := New(table)
	if _, ok := ctx.FindSymbol([]string{"nonexistent"}); ok {
		t.Fatalf("expected lookup of an absent path to fail")
	}
}

func TestWithFileAndClassAreIndependentLayers(t *testing.T) {
	table := symbols.NewTable()
	cls, err := table.CreateClassSymbol(names.AsType(names.Simple("Foo")), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := New(table)
	withFile := base.WithFile("Foo.tasty")
	withClass := withFile.WithClass(cls)

	if base.File() != "" {
		t.Fatalf("expected base Context to have no file capability")
	}
	if withFile.File() != "Foo.tasty" {
		t.Fatalf("File() = %q, want Foo.tasty", withFile.File())
	}
	if withFile.Class() != nil {
		t.Fatalf("expected withFile to have no class capability")
	}
	if withClass.Class() != cls {
		t.Fatalf("expected withClass.Class() to return the attached class symbol")
	}
	if withClass.File() != "Foo.tasty" {
		t.Fatalf("expected withClass to retain the file capability from its parent")
	}
}

func TestHasRootLoadIsFalseByDefault(t *testing.T) {
	ctx := New(symbols.NewTable())
	if ctx.HasRootLoad() {
		t.Fatalf("expected a fresh Context to have no root-load capability")
	}
}

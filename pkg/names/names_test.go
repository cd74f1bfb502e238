package names

import "testing"

func TestSimpleNameIsEmpty(t *testing.T) {
	if !EmptyTermName.IsEmpty() {
		t.Fatalf("expected empty term name to report IsEmpty")
	}
	if Simple("foo").IsEmpty() {
		t.Fatalf("non-empty name reported IsEmpty")
	}
}

func TestQualifiedNameString(t *testing.T) {
	n := Select(Simple("scala"), Simple("Int"))
	if got, want := n.String(), "scala.Int"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSubnames(t *testing.T) {
	subs := Subnames([]string{"a", "b", "c"})
	if len(subs) != 3 {
		t.Fatalf("expected 3 subnames, got %d", len(subs))
	}
	if got, want := subs[0].String(), "a"; got != want {
		t.Fatalf("subs[0] = %q, want %q", got, want)
	}
	if got, want := subs[1].String(), "a/b"; got != want {
		t.Fatalf("subs[1] = %q, want %q", got, want)
	}
	if got, want := subs[2].String(), "a/b/c"; got != want {
		t.Fatalf("subs[2] = %q, want %q", got, want)
	}
}

func TestObjectClassSuffix(t *testing.T) {
	base := Simple("Foo")
	oc := ObjectClass(base)
	if !IsObjectClassSuffixed(oc) {
		t.Fatalf("expected ObjectClass(Foo) to be object-class suffixed")
	}
	if IsObjectClassSuffixed(base) {
		t.Fatalf("plain name incorrectly reported as object-class suffixed")
	}
	if got, want := oc.String(), "Foo$"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestTypeNameWrapsUnderlying(t *testing.T) {
	tn := AsType(Simple("Int"))
	if !IsType(tn) {
		t.Fatalf("expected IsType to report true for TypeName")
	}
	if IsType(Simple("Int")) {
		t.Fatalf("expected IsType to report false for a plain SimpleName")
	}
}

func TestNameEquality(t *testing.T) {
	a := Select(Simple("a"), Simple("b"))
	b := Select(Simple("a"), Simple("b"))
	var na, nb Name = a, b
	if na != nb {
		t.Fatalf("expected structurally equal names to compare equal")
	}
}

func TestLastOnQualifiedName(t *testing.T) {
	n := Select(Select(Simple("a"), Simple("b")), Simple("c"))
	if got, want := Last(n).String(), "c"; got != want {
		t.Fatalf("Last() = %q, want %q", got, want)
	}
}

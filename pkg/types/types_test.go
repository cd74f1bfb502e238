package types

import (
	"testing"

	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

func TestSelectOnPathType(t *testing.T) {
	pkg := NewPackageRef(names.Simple("scala"))
	got, err := Select(pkg, names.Simple("Int"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, ok := got.(TermRef)
	if !ok {
		t.Fatalf("expected TermRef, got %T", got)
	}
	if ref.Name.String() != "Int" {
		t.Fatalf("ref.Name = %v", ref.Name)
	}
}

func TestSelectOnTypeNameYieldsTypeRef(t *testing.T) {
	pkg := NewPackageRef(names.Simple("scala"))
	got, err := Select(pkg, names.AsType(names.Simple("Int")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(TypeRef); !ok {
		t.Fatalf("expected TypeRef, got %T", got)
	}
}

func TestSelectOnNonPathTypeFails(t *testing.T) {
	if _, err := Select(AnyType, names.Simple("x")); err == nil {
		t.Fatalf("expected BadSelection error")
	}
}

func TestWidenOverloadsIdentityOnPlainType(t *testing.T) {
	got, err := WidenOverloads(AnyType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != AnyType {
		t.Fatalf("expected identity, got %v", got)
	}
}

func TestWidenOverloadsPicksUniqueMethod(t *testing.T) {
	method := NewMethodType(nil, nil, UnitType)
	overloaded := NewOverloadedType([]Type{method})
	got, err := WidenOverloads(overloaded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(MethodType); !ok {
		t.Fatalf("expected the lone MethodType alternative, got %T", got)
	}
}

func TestWidenOverloadsAmbiguous(t *testing.T) {
	m1 := NewMethodType([]names.Name{names.Simple("x")}, []Type{AnyType}, UnitType)
	m2 := NewMethodType([]names.Name{names.Simple("y")}, []Type{NothingType}, UnitType)
	overloaded := NewOverloadedType([]Type{m1, m2})
	if _, err := WidenOverloads(overloaded); err == nil {
		t.Fatalf("expected AmbiguousOverload error")
	}
}

func TestTypeLambdaResultMemoizedAndSelfReferential(t *testing.T) {
	var lambda *TypeLambda
	calls := 0
	lambda = NewTypeLambda(
		[]LambdaParam{{Name: names.Simple("_$1"), Bounds: NewRealTypeBounds(NothingType, AnyType)}},
		func(l *TypeLambda) Type {
			calls++
			return AnyType
		},
	)
	first := lambda.ResultType()
	second := lambda.ResultType()
	if calls != 1 {
		t.Fatalf("expected resultFn to run exactly once, ran %d times", calls)
	}
	if first != second {
		t.Fatalf("expected memoized result to be returned on second call")
	}
	ref := NewTypeParamRef(lambda, 0)
	if got, want := ref.ParamName().String(), "_$1"; got != want {
		t.Fatalf("ParamName() = %q, want %q", got, want)
	}
}

func TestSelectInRecordsDeclaringOwner(t *testing.T) {
	table := symbols.NewTable()
	pkg := NewPackageRef(names.Simple("scala"))
	signed := names.Signed(names.Simple("f"), []string{"Int"}, "Unit")
	got, err := SelectIn(pkg, signed, table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, ok := got.(TermRef)
	if !ok {
		t.Fatalf("expected TermRef, got %T", got)
	}
	if ref.DeclaringOwner != table.Root {
		t.Fatalf("expected DeclaringOwner to be recorded")
	}
}

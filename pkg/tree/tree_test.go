package tree

import (
	"testing"

	"github.com/chiefpi/tasty-query/pkg/errs"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/types"
)

func TestSelectComputesMemberTermRef(t *testing.T) {
	pkgTpe := types.NewPackageRef(names.Simple("scala"))
	qual := NewTermRefTree(names.Simple("scala"), pkgTpe)
	sel := NewSelect(qual, names.Simple("Int"))

	got, err := Tpe(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, ok := got.(types.TermRef)
	if !ok {
		t.Fatalf("expected TermRef, got %T", got)
	}
	if ref.Name.String() != "Int" {
		t.Fatalf("ref.Name = %v", ref.Name)
	}
}

func TestApplyOfNonMethodFailsWithNonMethodReference(t *testing.T) {
	fun := NewTermRefTree(names.Simple("x"), types.UnitType)
	app := NewApply(fun, nil)

	_, err := Tpe(app)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errs.Is(err, errs.KindNonMethodRef) {
		t.Fatalf("expected NonMethodReference, got %v", err)
	}
}

func TestApplyOfMethodYieldsResultType(t *testing.T) {
	method := types.NewMethodType([]names.Name{names.Simple("x")}, []types.Type{types.AnyType}, types.UnitType)
	fun := NewTermRefTree(names.Simple("f"), method)
	app := NewApply(fun, []Tree{NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 1})})

	got, err := Tpe(app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != types.UnitType {
		t.Fatalf("expected UnitType, got %v", got)
	}
}

func TestIfJoinsBranchesAsOrType(t *testing.T) {
	thenBranch := NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 1})
	elseBranch := NewLiteral(types.Constant{Kind: types.ConstantBoolean, Value: false})
	ifTree := NewIf(NewLiteral(types.Constant{Kind: types.ConstantBoolean, Value: true}), thenBranch, elseBranch)

	got, err := Tpe(ifTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(types.OrType); !ok {
		t.Fatalf("expected OrType, got %T", got)
	}
}

func TestLiteralYieldsConstantType(t *testing.T) {
	lit := NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 42})
	got, err := Tpe(lit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ct, ok := got.(types.ConstantType)
	if !ok {
		t.Fatalf("expected ConstantType, got %T", got)
	}
	if ct.Value.Value != 42 {
		t.Fatalf("expected constant value 42, got %v", ct.Value.Value)
	}
}

func TestBlockWithEmptyExprYieldsNoType(t *testing.T) {
	block := NewBlock([]Tree{NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 1})}, EmptyTree)
	got, err := Tpe(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != types.NoType {
		t.Fatalf("expected NoType for empty-expr block, got %v", got)
	}
}

func TestThrowAndReturnYieldNothing(t *testing.T) {
	throw := NewThrow(NewLiteral(types.Constant{Kind: types.ConstantString, Value: "boom"}))
	ret := NewReturn(EmptyTree, EmptyTree)

	for _, n := range []Tree{throw, ret} {
		got, err := Tpe(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != types.NothingType {
			t.Fatalf("expected NothingType, got %v", got)
		}
	}
}

func TestTpeIsMemoizedButRetriesOnFailure(t *testing.T) {
	fun := NewTermRefTree(names.Simple("x"), types.UnitType)
	app := NewApply(fun, nil)

	if _, err := Tpe(app); err == nil {
		t.Fatalf("expected first call to fail")
	}
	if app.base.computed {
		t.Fatalf("a failed computation must not be memoized")
	}
	if _, err := Tpe(app); err == nil {
		t.Fatalf("expected second call to also fail (retry, not a cached success)")
	}
}

func TestTpeMemoizesSuccessfulComputation(t *testing.T) {
	lit := NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 7})
	first, err := Tpe(lit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lit.base.computed {
		t.Fatalf("expected successful computation to be memoized")
	}
	second, err := Tpe(lit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected memoized type to be returned unchanged")
	}
}

func TestToTypeAppliedTypeTree(t *testing.T) {
	tycon := NewTypeIdent(nil, names.AsType(names.Simple("List")))
	arg := NewTypeIdent(nil, names.AsType(names.Simple("Int")))
	applied := NewAppliedTypeTree(tycon, []Tree{arg})

	got, err := ToType(applied)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at, ok := got.(types.AppliedType)
	if !ok {
		t.Fatalf("expected AppliedType, got %T", got)
	}
	if len(at.Args) != 1 {
		t.Fatalf("expected 1 type argument, got %d", len(at.Args))
	}
}

func TestToTypeTypeBoundsTree(t *testing.T) {
	bounds := NewTypeBoundsTree(
		NewTypeIdent(nil, names.AsType(names.Simple("Nothing"))),
		NewTypeIdent(nil, names.AsType(names.Simple("Any"))),
	)
	got, err := ToType(bounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(types.RealTypeBounds); !ok {
		t.Fatalf("expected RealTypeBounds, got %T", got)
	}
}

func TestValDefAndClassDefYieldNoType(t *testing.T) {
	table := symbols.NewTable()
	sym, err := table.CreateSymbol(names.Simple("x"), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valDef := NewValDef(names.Simple("x"), EmptyTypeTree, EmptyTree, sym)
	got, err := Tpe(valDef)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != types.NoType {
		t.Fatalf("expected NoType for ValDef, got %v", got)
	}

	clsSym, err := table.CreateClassSymbol(names.AsType(names.Simple("C")), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	classDef := NewClassDef(names.AsType(names.Simple("C")), NewTemplate(EmptyTree, nil, nil, EmptyTree, nil), clsSym)
	got, err = Tpe(classDef)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != types.NoType {
		t.Fatalf("expected NoType for ClassDef, got %v", got)
	}
}

func TestWalkTreeVisitsPreOrderInProjectionOrder(t *testing.T) {
	cond := NewLiteral(types.Constant{Kind: types.ConstantBoolean, Value: true})
	then := NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 1})
	els := NewLiteral(types.Constant{Kind: types.ConstantInt, Value: 2})
	ifTree := NewIf(cond, then, els)

	var visited []Tree
	WalkTree(ifTree, func(n Tree) { visited = append(visited, n) })

	if len(visited) != 4 {
		t.Fatalf("expected 4 visited nodes, got %d", len(visited))
	}
	if visited[0] != Tree(ifTree) || visited[1] != Tree(cond) || visited[2] != Tree(then) || visited[3] != Tree(els) {
		t.Fatalf("expected pre-order cond, then, else; got %v", visited)
	}
}

func TestWalkTypeTreesCollectsProjectedTypeTrees(t *testing.T) {
	table := symbols.NewTable()
	sym, err := table.CreateSymbol(names.Simple("x"), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tpt := NewTypeIdent(nil, names.AsType(names.Simple("Int")))
	valDef := NewValDef(names.Simple("x"), tpt, EmptyTree, sym)
	block := NewBlock([]Tree{valDef}, EmptyTree)

	var found []Tree
	WalkTypeTrees(block, func(n Tree) { found = append(found, n) })

	if len(found) != 1 || found[0] != Tree(tpt) {
		t.Fatalf("expected to find the ValDef's tpt, got %v", found)
	}
}

package tree

import (
	"github.com/chiefpi/tasty-query/pkg/errs"
	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/types"
)

// symbolOf recovers the symbol a DefTree introduces, or NoSymbol for
// anything else (used by SelectIn to resolve its declaring owner).
func symbolOf(t Tree) symbols.Symbol {
	if def, ok := t.(DefTree); ok {
		return def.DefSymbol()
	}
	return symbols.NoSymbol
}

// joinBranches folds an unnormalized OrType across two or more branch
// types, the least-upper-bound approximation spec'd for If/Match/Try.
func joinBranches(branches []types.Type) types.Type {
	switch len(branches) {
	case 0:
		return types.NoType
	case 1:
		return branches[0]
	default:
		joined := branches[0]
		for _, b := range branches[1:] {
			joined = types.NewOrType(joined, b)
		}
		return joined
	}
}

func tpeOf(t Tree) (types.Type, error) { return Tpe(t) }

// calculateType implements the tree model's type-computation rules, one
// case per node shape. Tpe, which owns the memoization slot, invokes it
// until it first succeeds on a node and never again after that.
func calculateType(t Tree) (types.Type, error) {
	switch n := t.(type) {

	case *PackageDef, *ImportSelector, *Import, *Export, *ClassDef, *ValDef,
		*DefDef, *TypeMember, *TypeParam, *Bind:
		return types.NoType, nil

	case *Select:
		qualTpe, err := tpeOf(n.Qual)
		if err != nil {
			return nil, err
		}
		return types.Select(qualTpe, n.Name)

	case *SelectIn:
		qualTpe, err := tpeOf(n.Qual)
		if err != nil {
			return nil, err
		}
		return types.SelectIn(qualTpe, n.SigName, symbolOf(n.SelectOwner))

	case *This:
		qualTpe, err := tpeOf(n.Qual)
		if err != nil {
			return nil, err
		}
		switch qualTpe.(type) {
		case types.PackageRef, types.PackageTypeRef:
			return qualTpe, nil
		default:
			return types.NewThisType(qualTpe), nil
		}

	case *Apply:
		funTpe, err := tpeOf(n.Fun)
		if err != nil {
			return nil, err
		}
		widened, err := types.WidenOverloads(funTpe)
		if err != nil {
			return nil, err
		}
		method, ok := widened.(types.MethodType)
		if !ok {
			return nil, errs.NonMethodReference(n, "Apply target widens to %s, not a method", widened)
		}
		return method.ResultType(), nil

	case *TypeApply:
		funTpe, err := tpeOf(n.Fun)
		if err != nil {
			return nil, err
		}
		widened, err := types.WidenOverloads(funTpe)
		if err != nil {
			return nil, err
		}
		poly, ok := widened.(types.PolyType)
		if !ok {
			return nil, errs.NonMethodReference(n, "TypeApply target widens to %s, not a polymorphic type", widened)
		}
		return poly.ResultType(), nil

	case *If:
		return branchJoin(n, n.Then, n.Else)
	case *InlineIf:
		return branchJoin(n, n.Then, n.Else)
	case *Match:
		return caseJoin(n, n.Cases)
	case *InlineMatch:
		return caseJoin(n, n.Cases)
	case *Try:
		branches := append([]Tree{n.Expr}, n.Cases...)
		return branchJoin(n, branches...)

	case *Throw:
		return types.NothingType, nil
	case *Return:
		return types.NothingType, nil

	case *While:
		return types.UnitType, nil
	case *Assign:
		return types.UnitType, nil

	case *Literal:
		return types.NewConstantType(n.Constant), nil

	case *Inlined:
		return tpeOf(n.Expr)

	case *Lambda:
		if IsEmpty(n.Tpt) {
			return nil, errs.TypeComputationError(n, "Lambda with no explicit functional-interface type cannot resolve an N-ary function type")
		}
		return ToType(n.Tpt)

	case *New:
		return ToType(n.Tpt)
	case *Typed:
		return ToType(n.Tpt)

	case *NamedArg:
		return tpeOf(n.Arg)

	case *Block:
		return tpeOf(n.Expr)

	case *CaseDef:
		return tpeOf(n.Body)

	case *Super, *Alternative, *Unapply, *SeqLiteral,
		*ImportIdent, *ReferencedPackage:
		return types.NoType, nil

	case *FreeIdent:
		return typeOrNoType(n.Type), nil
	case *TermRefTree:
		return typeOrNoType(n.Type), nil

	case *emptyTree:
		return types.NoType, nil

	// Type trees compute via the toType projection rather than this
	// table; calling Tpe on one directly still routes here.
	case *TypeIdent, *AppliedTypeTree, *RefinedTypeTree, *TypeBoundsTree,
		*TypeLambdaTree, *SingletonTypeTree, *AndTypeTree, *OrTypeTree,
		*ByNameTypeTree, *emptyTypeTree:
		return ToType(t)

	default:
		return nil, errs.TypeComputationError(t, "no type-computation rule for node kind %s", t.Kind())
	}
}

func typeOrNoType(t types.Type) types.Type {
	if t == nil {
		return types.NoType
	}
	return t
}

func branchJoin(node Tree, branches ...Tree) (types.Type, error) {
	tpes := make([]types.Type, 0, len(branches))
	for _, b := range branches {
		if IsEmpty(b) {
			continue
		}
		tpe, err := tpeOf(b)
		if err != nil {
			return nil, err
		}
		tpes = append(tpes, tpe)
	}
	return joinBranches(tpes), nil
}

func caseJoin(node Tree, cases []Tree) (types.Type, error) {
	return branchJoin(node, cases...)
}

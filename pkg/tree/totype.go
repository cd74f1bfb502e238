package tree

import (
	"github.com/chiefpi/tasty-query/pkg/errs"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/types"
)

// ToType is the type-tree → type projection: total and structural over
// every type-tree shape.
func ToType(t Tree) (types.Type, error) {
	if IsEmpty(t) {
		return types.NoType, nil
	}
	switch n := t.(type) {

	case *TypeIdent:
		if IsEmpty(n.Qual) {
			return types.NewTypeRef(types.NoPrefix, n.Name), nil
		}
		qualTpe, err := tpeOf(n.Qual)
		if err != nil {
			return nil, err
		}
		return types.Select(qualTpe, n.Name)

	case *AppliedTypeTree:
		tycon, err := ToType(n.Tycon)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(n.Args))
		for i, a := range n.Args {
			argTpe, err := ToType(a)
			if err != nil {
				return nil, err
			}
			args[i] = argTpe
		}
		return types.NewAppliedType(tycon, args), nil

	case *RefinedTypeTree:
		parent, err := ToType(n.Parent)
		if err != nil {
			return nil, err
		}
		refined := parent
		for _, member := range n.Refinements {
			name, info, err := refinementOf(member)
			if err != nil {
				return nil, err
			}
			refined = types.NewRefinedType(refined, name, info)
		}
		return refined, nil

	case *TypeBoundsTree:
		lo, err := ToType(n.Lo)
		if err != nil {
			return nil, err
		}
		hi, err := ToType(n.Hi)
		if err != nil {
			return nil, err
		}
		return types.NewRealTypeBounds(lo, hi), nil

	case *TypeLambdaTree:
		params := make([]types.LambdaParam, len(n.Params))
		for i, p := range n.Params {
			// Bounds collapse to (Nothing, Any): resolving the bounds
			// tree here would require the lambda's own binder to exist
			// before its parameters are built.
			params[i] = types.LambdaParam{Name: p.Name, Bounds: types.NewRealTypeBounds(types.NothingType, types.AnyType)}
		}
		body := n.Body
		return types.NewTypeLambda(params, func(*types.TypeLambda) types.Type {
			result, err := ToType(body)
			if err != nil {
				return types.NoType
			}
			return result
		}), nil

	case *SingletonTypeTree:
		return tpeOf(n.Ref)

	case *AndTypeTree:
		left, err := ToType(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ToType(n.Right)
		if err != nil {
			return nil, err
		}
		return types.NewAndType(left, right), nil

	case *OrTypeTree:
		left, err := ToType(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ToType(n.Right)
		if err != nil {
			return nil, err
		}
		return types.NewOrType(left, right), nil

	case *ByNameTypeTree:
		elem, err := ToType(n.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewExprType(elem), nil

	case *emptyTypeTree:
		return types.NoType, nil

	default:
		return nil, errs.TypeComputationError(t, "%s is not a type tree", t.Kind())
	}
}

// refinementOf extracts the (name, info) pair a refinement member
// contributes, per the RefinedTypeTree → RefinedType projection.
func refinementOf(member Tree) (names.Name, types.Type, error) {
	switch m := member.(type) {
	case *TypeMember:
		info, err := ToType(m.Rhs)
		if err != nil {
			return nil, nil, err
		}
		return m.Name, info, nil
	case *ValDef:
		info, err := ToType(m.Tpt)
		if err != nil {
			return nil, nil, err
		}
		return m.Name, info, nil
	case *DefDef:
		info, err := ToType(m.ResultTpt)
		if err != nil {
			return nil, nil, err
		}
		return m.Name, info, nil
	default:
		return nil, nil, errs.TypeComputationError(member, "%s cannot appear as a refinement member", member.Kind())
	}
}

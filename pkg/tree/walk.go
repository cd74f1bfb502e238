package tree

// Subtrees returns t's non-empty subtree projection, in the order given
// by the tree model's projection table.
func Subtrees(t Tree) []Tree {
	switch n := t.(type) {
	case *PackageDef:
		return nonEmpty(append([]Tree{n.Pid}, n.Stats...)...)
	case *ImportSelector:
		return nonEmpty(n.Imported, n.Renamed)
	case *Import:
		return nonEmpty(append([]Tree{n.Expr}, n.Selectors...)...)
	case *Export:
		return nonEmpty(append([]Tree{n.Expr}, n.Selectors...)...)
	case *ClassDef:
		return []Tree{n.Template}
	case *Template:
		out := []Tree{n.Ctor}
		out = append(out, n.Parents...)
		out = append(out, n.Self)
		out = append(out, n.Body...)
		return nonEmpty(out...)
	case *ValDef:
		return nonEmpty(n.Rhs)
	case *DefDef:
		out := flatParams(n.ParamLists)
		out = append(out, n.Rhs)
		return nonEmpty(out...)
	case *Select:
		return nonEmpty(n.Qual)
	case *SelectIn:
		return nonEmpty(n.Qual)
	case *Super:
		return nonEmpty(n.Qual)
	case *This:
		return nonEmpty(n.Qual)
	case *Apply:
		return nonEmpty(append([]Tree{n.Fun}, n.Args...)...)
	case *TypeApply:
		return nonEmpty(n.Fun)
	case *Typed:
		return nonEmpty(n.Expr)
	case *Assign:
		return nonEmpty(n.Lhs, n.Rhs)
	case *NamedArg:
		return nonEmpty(n.Arg)
	case *Block:
		return nonEmpty(append(append([]Tree{}, n.Stats...), n.Expr)...)
	case *If:
		return nonEmpty(n.Cond, n.Then, n.Else)
	case *InlineIf:
		return nonEmpty(n.Cond, n.Then, n.Else)
	case *Lambda:
		return nonEmpty(n.Meth)
	case *Match:
		return nonEmpty(append([]Tree{n.Selector}, n.Cases...)...)
	case *InlineMatch:
		return nonEmpty(append([]Tree{n.Selector}, n.Cases...)...)
	case *CaseDef:
		return nonEmpty(n.Pattern, n.Guard, n.Body)
	case *Bind:
		return nonEmpty(n.Body)
	case *Alternative:
		return nonEmpty(n.Trees...)
	case *Unapply:
		out := []Tree{n.Fun}
		out = append(out, n.Implicits...)
		out = append(out, n.Patterns...)
		return nonEmpty(out...)
	case *SeqLiteral:
		return nonEmpty(n.Elems...)
	case *While:
		return nonEmpty(n.Cond, n.Body)
	case *Throw:
		return nonEmpty(n.Expr)
	case *Try:
		out := []Tree{n.Expr}
		out = append(out, n.Cases...)
		out = append(out, n.Finalizer)
		return nonEmpty(out...)
	case *Return:
		return nonEmpty(n.Expr, n.From)
	case *Inlined:
		return nonEmpty(append([]Tree{n.Expr}, n.Bindings...)...)
	default:
		return nil
	}
}

// TypeTrees returns t's non-empty type-tree projection, in the order
// given by the tree model's projection table.
func TypeTrees(t Tree) []Tree {
	switch n := t.(type) {
	case *ImportSelector:
		return nonEmpty(n.Bound)
	case *Template:
		return nonEmpty(n.ParentTypes...)
	case *ValDef:
		return nonEmpty(n.Tpt)
	case *DefDef:
		return nonEmpty(n.ResultTpt)
	case *TypeApply:
		return nonEmpty(n.TypeArgs...)
	case *Typed:
		return nonEmpty(n.Tpt)
	case *Lambda:
		return nonEmpty(n.Tpt)
	case *SeqLiteral:
		return nonEmpty(n.ElemTpt)
	case *New:
		return nonEmpty(n.Tpt)
	case *TypeMember:
		if _, isBounds := n.Rhs.(*TypeBoundsTree); !isBounds {
			return nonEmpty(n.Rhs)
		}
		return nil
	case *TypeParam:
		return nonEmpty(n.Bounds)
	default:
		return nil
	}
}

func nonEmpty(trees ...Tree) []Tree {
	out := make([]Tree, 0, len(trees))
	for _, t := range trees {
		if !IsEmpty(t) {
			out = append(out, t)
		}
	}
	return out
}

// WalkOp is applied to every tree visited by WalkTree.
type WalkOp func(Tree)

// WalkTree visits t, then recurses depth-first, pre-order, over its
// subtrees in projection order.
func WalkTree(t Tree, op WalkOp) {
	if IsEmpty(t) {
		return
	}
	op(t)
	for _, child := range Subtrees(t) {
		WalkTree(child, op)
	}
}

// WalkFold folds op(t) with the combination of its children's folded
// results. A leaf yields op(t); def is the result for an empty tree.
func WalkFold[R any](t Tree, op func(Tree) R, combine func(R, R) R, def R) R {
	if IsEmpty(t) {
		return def
	}
	acc := op(t)
	for _, child := range Subtrees(t) {
		acc = combine(acc, WalkFold(child, op, combine, def))
	}
	return acc
}

// TypeTreeOp is applied to every type tree discovered while walking t.
type TypeTreeOp func(Tree)

// WalkTypeTrees visits every tree reachable from t (via WalkTree) and
// applies op to each type tree its projection exposes.
func WalkTypeTrees(t Tree, op TypeTreeOp) {
	WalkTree(t, func(visited Tree) {
		for _, tt := range TypeTrees(visited) {
			op(tt)
		}
	})
}

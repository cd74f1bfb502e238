package tree

import "github.com/chiefpi/tasty-query/pkg/names"

// TypeIdent denotes a type by name, optionally qualified by Qual.
type TypeIdent struct {
	base
	Qual Tree // optional prefix tree; nil/EmptyTree means unqualified
	Name names.Name
}

func NewTypeIdent(qual Tree, name names.Name) *TypeIdent {
	return &TypeIdent{base: newBase(KindTypeIdent), Qual: qual, Name: name}
}

// AppliedTypeTree denotes a type constructor applied to type arguments.
type AppliedTypeTree struct {
	base
	Tycon Tree
	Args  []Tree
}

func NewAppliedTypeTree(tycon Tree, args []Tree) *AppliedTypeTree {
	return &AppliedTypeTree{base: newBase(KindAppliedTypeTree), Tycon: tycon, Args: args}
}

// RefinedTypeTree denotes Parent refined by a sequence of member
// definitions (each a ValDef, DefDef, or TypeMember tree).
type RefinedTypeTree struct {
	base
	Parent      Tree
	Refinements []Tree
}

func NewRefinedTypeTree(parent Tree, refinements []Tree) *RefinedTypeTree {
	return &RefinedTypeTree{base: newBase(KindRefinedTypeTree), Parent: parent, Refinements: refinements}
}

// TypeBoundsTree denotes a lower/upper bounds pair.
type TypeBoundsTree struct {
	base
	Lo, Hi Tree
}

func NewTypeBoundsTree(lo, hi Tree) *TypeBoundsTree {
	return &TypeBoundsTree{base: newBase(KindTypeBoundsTree), Lo: lo, Hi: hi}
}

// TypeLambdaParam is one parameter of a TypeLambdaTree.
type TypeLambdaParam struct {
	Name   names.Name
	Bounds Tree // a TypeBoundsTree
}

// TypeLambdaTree denotes a higher-kinded type abstraction.
type TypeLambdaTree struct {
	base
	Params []TypeLambdaParam
	Body   Tree
}

func NewTypeLambdaTree(params []TypeLambdaParam, body Tree) *TypeLambdaTree {
	return &TypeLambdaTree{base: newBase(KindTypeLambdaTree), Params: params, Body: body}
}

// SingletonTypeTree denotes the singleton type of the term ref.
type SingletonTypeTree struct {
	base
	Ref Tree
}

func NewSingletonTypeTree(ref Tree) *SingletonTypeTree {
	return &SingletonTypeTree{base: newBase(KindSingletonTypeTree), Ref: ref}
}

// AndTypeTree denotes an intersection type.
type AndTypeTree struct {
	base
	Left, Right Tree
}

func NewAndTypeTree(left, right Tree) *AndTypeTree {
	return &AndTypeTree{base: newBase(KindAndTypeTree), Left: left, Right: right}
}

// OrTypeTree denotes a union type.
type OrTypeTree struct {
	base
	Left, Right Tree
}

func NewOrTypeTree(left, right Tree) *OrTypeTree {
	return &OrTypeTree{base: newBase(KindOrTypeTree), Left: left, Right: right}
}

// ByNameTypeTree denotes a call-by-name parameter type (`=> T`).
type ByNameTypeTree struct {
	base
	Elem Tree
}

func NewByNameTypeTree(elem Tree) *ByNameTypeTree {
	return &ByNameTypeTree{base: newBase(KindByNameTypeTree), Elem: elem}
}

// EmptyTypeTree is the singleton absent-type-tree placeholder.
type emptyTypeTree struct{ base }

func (emptyTypeTree) String() string { return "EmptyTypeTree" }

// EmptyTypeTree is the shared empty-type-tree value.
var EmptyTypeTree Tree = &emptyTypeTree{base: newBase(KindEmptyTypeTree)}

// Package tree implements the typed AST: a closed family of node
// variants with a per-node, write-once memoized Type, and the generic
// subtree/type-tree/type-computation dispatch that spec §9 calls for —
// a tagged union with table-driven dispatch by kind, not virtual
// inheritance. Each node is created once by decoder glue (the
// collaborators behind package decode's interfaces) and is mutated only
// to record its source span (SetSpan) and to install its memoized type.
package tree

import (
	"fmt"

	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/types"
)

// Kind discriminates the closed set of tree node shapes.
type Kind string

const (
	KindPackageDef     Kind = "PackageDef"
	KindImportSelector Kind = "ImportSelector"
	KindImport         Kind = "Import"
	KindExport         Kind = "Export"
	KindClassDef       Kind = "ClassDef"
	KindTemplate       Kind = "Template"
	KindValDef         Kind = "ValDef"
	KindDefDef         Kind = "DefDef"
	KindSelect         Kind = "Select"
	KindSelectIn       Kind = "SelectIn"
	KindSuper          Kind = "Super"
	KindThis           Kind = "This"
	KindApply          Kind = "Apply"
	KindTypeApply      Kind = "TypeApply"
	KindTyped          Kind = "Typed"
	KindAssign         Kind = "Assign"
	KindNamedArg       Kind = "NamedArg"
	KindBlock          Kind = "Block"
	KindIf             Kind = "If"
	KindInlineIf       Kind = "InlineIf"
	KindLambda         Kind = "Lambda"
	KindMatch          Kind = "Match"
	KindInlineMatch    Kind = "InlineMatch"
	KindCaseDef        Kind = "CaseDef"
	KindBind           Kind = "Bind"
	KindAlternative    Kind = "Alternative"
	KindUnapply        Kind = "Unapply"
	KindSeqLiteral     Kind = "SeqLiteral"
	KindWhile          Kind = "While"
	KindThrow          Kind = "Throw"
	KindTry            Kind = "Try"
	KindReturn         Kind = "Return"
	KindInlined        Kind = "Inlined"
	KindLiteral        Kind = "Literal"
	KindNew            Kind = "New"
	KindTypeMember     Kind = "TypeMember"
	KindTypeParam      Kind = "TypeParam"
	KindFreeIdent      Kind = "FreeIdent"
	KindImportIdent    Kind = "ImportIdent"
	KindTermRefTree    Kind = "TermRefTree"
	KindReferencedPkg  Kind = "ReferencedPackage"
	KindEmptyTree      Kind = "EmptyTree"

	// Type trees.
	KindTypeIdent          Kind = "TypeIdent"
	KindAppliedTypeTree    Kind = "AppliedTypeTree"
	KindRefinedTypeTree    Kind = "RefinedTypeTree"
	KindTypeBoundsTree     Kind = "TypeBoundsTree"
	KindTypeLambdaTree     Kind = "TypeLambdaTree"
	KindSingletonTypeTree  Kind = "SingletonTypeTree"
	KindAndTypeTree        Kind = "AndTypeTree"
	KindOrTypeTree         Kind = "OrTypeTree"
	KindByNameTypeTree     Kind = "ByNameTypeTree"
	KindEmptyTypeTree      Kind = "EmptyTypeTree"
)

// Position is a one-based line/column source location.
type Position struct {
	Line   int
	Column int
}

// Span is a source range, start inclusive and end exclusive.
type Span struct {
	Start Position
	End   Position
}

// Tree is the interface shared by every AST node, term or type.
type Tree interface {
	fmt.Stringer
	isTree()
	Kind() Kind
	Span() Span

	treeBase() *base
}

// DefTree is implemented by nodes that introduce a symbol (ClassDef,
// ValDef, DefDef, TypeMember, TypeParam, Bind).
type DefTree interface {
	Tree
	DefSymbol() symbols.Symbol
}

type base struct {
	kind     Kind
	span     Span
	tpe      types.Type
	computed bool
}

func newBase(kind Kind) base { return base{kind: kind} }

func (b *base) isTree()        {}
func (b *base) Kind() Kind     { return b.kind }
func (b *base) Span() Span     { return b.span }
func (b *base) setSpan(s Span) { b.span = s }
func (b *base) String() string { return string(b.kind) }
func (b *base) treeBase() *base { return b }

// SetSpan annotates t with its source span. Decoder glue calls this once
// per node as it builds the tree from TASTy position-section data.
func SetSpan(t Tree, span Span) {
	if t == nil {
		return
	}
	t.treeBase().setSpan(span)
}

// Tpe computes (at most once per node, per spec §4.4) and returns t's
// type. A failed computation is not cached and may be retried on the
// next call, per §7's propagation policy for type-computation errors.
func Tpe(t Tree) (types.Type, error) {
	if t == nil {
		return types.NoType, nil
	}
	b := t.treeBase()
	if b.computed {
		return b.tpe, nil
	}
	computed, err := calculateType(t)
	if err != nil {
		return nil, err
	}
	b.tpe = computed
	b.computed = true
	return computed, nil
}

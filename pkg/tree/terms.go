package tree

import (
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/types"
)

// Select projects a member off a qualifier.
type Select struct {
	base
	Qual Tree
	Name names.Name
}

func NewSelect(qual Tree, name names.Name) *Select {
	return &Select{base: newBase(KindSelect), Qual: qual, Name: name}
}

// SelectIn is Select plus the declaring owner used to disambiguate
// overloaded members.
type SelectIn struct {
	base
	Qual        Tree
	SigName     names.SignedName
	SelectOwner Tree
}

func NewSelectIn(qual Tree, sigName names.SignedName, selectOwner Tree) *SelectIn {
	return &SelectIn{base: newBase(KindSelectIn), Qual: qual, SigName: sigName, SelectOwner: selectOwner}
}

// Super is a super-call qualifier, optionally naming a specific mixin.
type Super struct {
	base
	Qual Tree
	Mix  Tree
}

func NewSuper(qual, mix Tree) *Super {
	return &Super{base: newBase(KindSuper), Qual: qual, Mix: mix}
}

// This denotes the enclosing instance of the class or package qual
// resolves to.
type This struct {
	base
	Qual Tree
}

func NewThis(qual Tree) *This {
	return &This{base: newBase(KindThis), Qual: qual}
}

// Apply is a term-level function application.
type Apply struct {
	base
	Fun  Tree
	Args []Tree
}

func NewApply(fun Tree, args []Tree) *Apply {
	return &Apply{base: newBase(KindApply), Fun: fun, Args: args}
}

// TypeApply is a type-level application of a polymorphic reference.
type TypeApply struct {
	base
	Fun      Tree
	TypeArgs []Tree
}

func NewTypeApply(fun Tree, typeArgs []Tree) *TypeApply {
	return &TypeApply{base: newBase(KindTypeApply), Fun: fun, TypeArgs: typeArgs}
}

// Typed ascribes expr with the type denoted by tpt.
type Typed struct {
	base
	Expr Tree
	Tpt  Tree
}

func NewTyped(expr, tpt Tree) *Typed {
	return &Typed{base: newBase(KindTyped), Expr: expr, Tpt: tpt}
}

// Assign is a mutable-variable assignment.
type Assign struct {
	base
	Lhs Tree
	Rhs Tree
}

func NewAssign(lhs, rhs Tree) *Assign {
	return &Assign{base: newBase(KindAssign), Lhs: lhs, Rhs: rhs}
}

// NamedArg is a named-argument call-site binding.
type NamedArg struct {
	base
	Name names.Name
	Arg  Tree
}

func NewNamedArg(name names.Name, arg Tree) *NamedArg {
	return &NamedArg{base: newBase(KindNamedArg), Name: name, Arg: arg}
}

// Block sequences statements, yielding the type of its trailing expr.
type Block struct {
	base
	Stats []Tree
	Expr  Tree
}

func NewBlock(stats []Tree, expr Tree) *Block {
	return &Block{base: newBase(KindBlock), Stats: stats, Expr: expr}
}

// If is a three-way conditional.
type If struct {
	base
	Cond, Then, Else Tree
}

func NewIf(cond, then, els Tree) *If {
	return &If{base: newBase(KindIf), Cond: cond, Then: then, Else: els}
}

// InlineIf is the inline-expanded form of If, sharing its typing rule.
type InlineIf struct {
	base
	Cond, Then, Else Tree
}

func NewInlineIf(cond, then, els Tree) *InlineIf {
	return &InlineIf{base: newBase(KindInlineIf), Cond: cond, Then: then, Else: els}
}

// Lambda is a method-value closure: a reference to the underlying method
// plus, optionally, an explicit functional-interface type ascription.
type Lambda struct {
	base
	Meth Tree
	Tpt  Tree
}

func NewLambda(meth, tpt Tree) *Lambda {
	return &Lambda{base: newBase(KindLambda), Meth: meth, Tpt: tpt}
}

// Match is a pattern match over selector, dispatching across cases.
type Match struct {
	base
	Selector Tree
	Cases    []Tree
}

func NewMatch(selector Tree, cases []Tree) *Match {
	return &Match{base: newBase(KindMatch), Selector: selector, Cases: cases}
}

// InlineMatch is the inline-expanded form of Match, sharing its typing rule.
type InlineMatch struct {
	base
	Selector Tree
	Cases    []Tree
}

func NewInlineMatch(selector Tree, cases []Tree) *InlineMatch {
	return &InlineMatch{base: newBase(KindInlineMatch), Selector: selector, Cases: cases}
}

// CaseDef is one pattern/guard/body arm of a Match or Try.
type CaseDef struct {
	base
	Pattern Tree
	Guard   Tree
	Body    Tree
}

func NewCaseDef(pattern, guard, body Tree) *CaseDef {
	return &CaseDef{base: newBase(KindCaseDef), Pattern: pattern, Guard: guard, Body: body}
}

// Alternative is a pattern-level disjunction (`case a | b =>`).
type Alternative struct {
	base
	Trees []Tree
}

func NewAlternative(trees []Tree) *Alternative {
	return &Alternative{base: newBase(KindAlternative), Trees: trees}
}

// Unapply is an extractor-pattern application.
type Unapply struct {
	base
	Fun       Tree
	Implicits []Tree
	Patterns  []Tree
}

func NewUnapply(fun Tree, implicits, patterns []Tree) *Unapply {
	return &Unapply{base: newBase(KindUnapply), Fun: fun, Implicits: implicits, Patterns: patterns}
}

// SeqLiteral is a repeated-argument (varargs) sequence literal.
type SeqLiteral struct {
	base
	Elems   []Tree
	ElemTpt Tree
}

func NewSeqLiteral(elems []Tree, elemTpt Tree) *SeqLiteral {
	return &SeqLiteral{base: newBase(KindSeqLiteral), Elems: elems, ElemTpt: elemTpt}
}

// While is a loop over cond guarding body.
type While struct {
	base
	Cond Tree
	Body Tree
}

func NewWhile(cond, body Tree) *While {
	return &While{base: newBase(KindWhile), Cond: cond, Body: body}
}

// Throw raises expr as an exception.
type Throw struct {
	base
	Expr Tree
}

func NewThrow(expr Tree) *Throw {
	return &Throw{base: newBase(KindThrow), Expr: expr}
}

// Try evaluates expr, dispatching thrown values across cases and always
// running finalizer.
type Try struct {
	base
	Expr      Tree
	Cases     []Tree
	Finalizer Tree
}

func NewTry(expr Tree, cases []Tree, finalizer Tree) *Try {
	return &Try{base: newBase(KindTry), Expr: expr, Cases: cases, Finalizer: finalizer}
}

// Return exits the enclosing method named by from with expr's value.
type Return struct {
	base
	Expr Tree
	From Tree
}

func NewReturn(expr, from Tree) *Return {
	return &Return{base: newBase(KindReturn), Expr: expr, From: from}
}

// Inlined wraps the body an inline call expanded to, recording the call
// site and the bindings synthesized for its arguments.
type Inlined struct {
	base
	Expr     Tree
	Caller   Tree
	Bindings []Tree
}

func NewInlined(expr, caller Tree, bindings []Tree) *Inlined {
	return &Inlined{base: newBase(KindInlined), Expr: expr, Caller: caller, Bindings: bindings}
}

// Literal wraps a compile-time constant.
type Literal struct {
	base
	Constant types.Constant
}

func NewLiteral(c types.Constant) *Literal {
	return &Literal{base: newBase(KindLiteral), Constant: c}
}

// New instantiates the class denoted by tpt.
type New struct {
	base
	Tpt Tree
}

func NewNew(tpt Tree) *New {
	return &New{base: newBase(KindNew), Tpt: tpt}
}

// Package types implements the type algebra: the closed sum of leaf,
// reference, structural, and polymorphic type terms, plus the operations
// (select, selectIn, widenOverloads, toType) that compute one type from
// another. Every Type value is immutable; structural equality in this
// package is realized by normal Go struct/interface comparison where the
// concrete shape allows it. Variants holding slices of Type (AppliedType,
// MethodType, PolyType, OverloadedType, MatchType) are not comparable
// with ==, and this package provides no equality helper for them.
package types

import (
	"fmt"
	"strings"

	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

// Tag discriminates the closed set of Type shapes.
type Tag string

const (
	TagNoType      Tag = "NoType"
	TagNoPrefix    Tag = "NoPrefix"
	TagAny         Tag = "Any"
	TagNothing     Tag = "Nothing"
	TagUnit        Tag = "Unit"
	TagConstant    Tag = "ConstantType"
	TagPackageRef  Tag = "PackageRef"
	TagPackageType Tag = "PackageTypeRef"
	TagTermRef     Tag = "TermRef"
	TagTypeRef     Tag = "TypeRef"
	TagThis        Tag = "ThisType"
	TagApplied     Tag = "AppliedType"
	TagAnd         Tag = "AndType"
	TagOr          Tag = "OrType"
	TagRefined     Tag = "RefinedType"
	TagAlias       Tag = "TypeAlias"
	TagRealBounds  Tag = "RealTypeBounds"
	TagExpr        Tag = "ExprType"
	TagMethod      Tag = "MethodType"
	TagPoly        Tag = "PolyType"
	TagLambda      Tag = "TypeLambda"
	TagParamRef    Tag = "TypeParamRef"
	TagOverloaded  Tag = "OverloadedType"
	TagMatch       Tag = "MatchType"
)

// Type is the closed sum over every type-algebra term.
type Type interface {
	fmt.Stringer
	isType()
	Tag() Tag
}

type impl struct{ tag Tag }

func (i impl) isType()  {}
func (i impl) Tag() Tag { return i.tag }

func newImpl(tag Tag) impl { return impl{tag: tag} }

// Binder is implemented by type terms that introduce parameters a
// TypeParamRef can point back to (PolyType, TypeLambda).
type Binder interface {
	Type
	ParamName(index int) names.Name
	ParamCount() int
}

// --- Leaf / ground types -------------------------------------------------

type noType struct{ impl }

func (noType) String() string { return "NoType" }

// NoType is the absence of a computed type.
var NoType Type = noType{newImpl(TagNoType)}

type noPrefix struct{ impl }

func (noPrefix) String() string { return "NoPrefix" }

// NoPrefix is the absence of a selection prefix.
var NoPrefix Type = noPrefix{newImpl(TagNoPrefix)}

type anyType struct{ impl }

func (anyType) String() string { return "Any" }

// AnyType is the top of the subtyping lattice.
var AnyType Type = anyType{newImpl(TagAny)}

type nothingType struct{ impl }

func (nothingType) String() string { return "Nothing" }

// NothingType is the bottom of the subtyping lattice.
var NothingType Type = nothingType{newImpl(TagNothing)}

type unitType struct{ impl }

func (unitType) String() string { return "Unit" }

// UnitType is the one-element type of statement results.
var UnitType Type = unitType{newImpl(TagUnit)}

// ConstantKind enumerates the literal kinds a ConstantType may wrap.
type ConstantKind string

const (
	ConstantUnit    ConstantKind = "Unit"
	ConstantBoolean ConstantKind = "Boolean"
	ConstantByte    ConstantKind = "Byte"
	ConstantShort   ConstantKind = "Short"
	ConstantChar    ConstantKind = "Char"
	ConstantInt     ConstantKind = "Int"
	ConstantLong    ConstantKind = "Long"
	ConstantFloat   ConstantKind = "Float"
	ConstantDouble  ConstantKind = "Double"
	ConstantString  ConstantKind = "String"
	ConstantNull    ConstantKind = "Null"
)

// Constant is a compile-time literal value.
type Constant struct {
	Kind  ConstantKind
	Value any
}

func (c Constant) String() string {
	if c.Kind == ConstantNull {
		return "null"
	}
	if c.Kind == ConstantUnit {
		return "()"
	}
	return fmt.Sprintf("%v", c.Value)
}

type ConstantType struct {
	impl
	Value Constant
}

func (c ConstantType) String() string { return c.Value.String() }

// NewConstantType wraps a literal constant as a type.
func NewConstantType(c Constant) ConstantType {
	return ConstantType{impl: newImpl(TagConstant), Value: c}
}

// --- Reference types ------------------------------------------------------

type PackageRef struct {
	impl
	Name names.Name
}

func (p PackageRef) String() string { return p.Name.String() }

// NewPackageRef builds a reference to the package named name.
func NewPackageRef(name names.Name) PackageRef {
	return PackageRef{impl: newImpl(TagPackageRef), Name: name}
}

// PackageTypeRef marks a package reference used in type position. Like a
// PackageRef, it is passed through unchanged as the type of `This(pkg)`.
type PackageTypeRef struct {
	impl
	Package PackageRef
}

func (p PackageTypeRef) String() string { return p.Package.String() + ".type" }

func NewPackageTypeRef(ref PackageRef) PackageTypeRef {
	return PackageTypeRef{impl: newImpl(TagPackageType), Package: ref}
}

type TermRef struct {
	impl
	Prefix Type
	Name   names.Name
	// Sym, if non-nil, is the symbol this reference was resolved to
	// directly (bypassing name lookup against Prefix).
	Sym symbols.Symbol
	// DeclaringOwner records the owner passed to selectIn, used to
	// disambiguate overloaded members; nil for plain select.
	DeclaringOwner symbols.Symbol
}

func (t TermRef) String() string {
	if _, ok := t.Prefix.(noPrefix); ok {
		return t.Name.String()
	}
	return t.Prefix.String() + "." + t.Name.String()
}

func NewTermRef(prefix Type, name names.Name) TermRef {
	return TermRef{impl: newImpl(TagTermRef), Prefix: prefix, Name: name}
}

type TypeRef struct {
	impl
	Prefix Type
	Name   names.Name
	Sym    symbols.Symbol
}

func (t TypeRef) String() string {
	if _, ok := t.Prefix.(noPrefix); ok {
		return t.Name.String()
	}
	return t.Prefix.String() + "#" + t.Name.String()
}

func NewTypeRef(prefix Type, name names.Name) TypeRef {
	return TypeRef{impl: newImpl(TagTypeRef), Prefix: prefix, Name: name}
}

// NewTypeRefToSymbol builds a TypeRef that designates sym directly.
func NewTypeRefToSymbol(prefix Type, sym symbols.Symbol) TypeRef {
	return TypeRef{impl: newImpl(TagTypeRef), Prefix: prefix, Name: sym.Name(), Sym: sym}
}

type ThisType struct {
	impl
	Ref Type
}

func (t ThisType) String() string { return t.Ref.String() + ".this" }

func NewThisType(ref Type) ThisType {
	return ThisType{impl: newImpl(TagThis), Ref: ref}
}

// IsPathType reports whether t may appear as a selection prefix: package
// refs, term refs, type refs, and this-types are path types.
func IsPathType(t Type) bool {
	switch t.(type) {
	case PackageRef, PackageTypeRef, TermRef, TypeRef, ThisType:
		return true
	default:
		return false
	}
}

// --- Structural types -------------------------------------------------

type AppliedType struct {
	impl
	Tycon Type
	Args  []Type
}

func (a AppliedType) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return a.Tycon.String() + "[" + strings.Join(parts, ", ") + "]"
}

func NewAppliedType(tycon Type, args []Type) AppliedType {
	return AppliedType{impl: newImpl(TagApplied), Tycon: tycon, Args: args}
}

type AndType struct {
	impl
	A, B Type
}

func (a AndType) String() string { return a.A.String() + " & " + a.B.String() }

func NewAndType(a, b Type) AndType { return AndType{impl: newImpl(TagAnd), A: a, B: b} }

type OrType struct {
	impl
	A, B Type
}

func (o OrType) String() string { return o.A.String() + " | " + o.B.String() }

// NewOrType builds an unnormalized join of a and b, per the specified
// least-upper-bound approximation for If/Match/Try branches.
func NewOrType(a, b Type) OrType { return OrType{impl: newImpl(TagOr), A: a, B: b} }

type RefinedType struct {
	impl
	Parent     Type
	MemberName names.Name
	Info       Type
}

func (r RefinedType) String() string {
	return r.Parent.String() + "{" + r.MemberName.String() + ": " + r.Info.String() + "}"
}

func NewRefinedType(parent Type, memberName names.Name, info Type) RefinedType {
	return RefinedType{impl: newImpl(TagRefined), Parent: parent, MemberName: memberName, Info: info}
}

type TypeAlias struct {
	impl
	Target Type
}

func (t TypeAlias) String() string { return "= " + t.Target.String() }

func NewTypeAlias(target Type) TypeAlias { return TypeAlias{impl: newImpl(TagAlias), Target: target} }

type RealTypeBounds struct {
	impl
	Lo, Hi Type
}

func (b RealTypeBounds) String() string { return ">: " + b.Lo.String() + " <: " + b.Hi.String() }

// NewRealTypeBounds builds a bounds pair. Comparability of lo <: hi is
// not checked at construction, per the type algebra's invariants.
func NewRealTypeBounds(lo, hi Type) RealTypeBounds {
	return RealTypeBounds{impl: newImpl(TagRealBounds), Lo: lo, Hi: hi}
}

type ExprType struct {
	impl
	Result Type
}

func (e ExprType) String() string { return "=> " + e.Result.String() }

func NewExprType(result Type) ExprType { return ExprType{impl: newImpl(TagExpr), Result: result} }

// --- Polymorphic / function types --------------------------------------

type MethodType struct {
	impl
	ParamNames []names.Name
	ParamTypes []Type
	Result     Type
}

func (m MethodType) String() string {
	parts := make([]string, len(m.ParamTypes))
	for i, p := range m.ParamTypes {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + "): " + m.Result.String()
}

func NewMethodType(paramNames []names.Name, paramTypes []Type, result Type) MethodType {
	return MethodType{impl: newImpl(TagMethod), ParamNames: paramNames, ParamTypes: paramTypes, Result: result}
}

// ResultType projects the method's result, ignoring dependent-parameter
// substitution (a documented gap; see spec §9).
func (m MethodType) ResultType() Type { return m.Result }

type PolyType struct {
	impl
	ParamNames []names.Name
	Bounds     []RealTypeBounds
	Result     Type
}

func (p PolyType) String() string {
	parts := make([]string, len(p.ParamNames))
	for i, n := range p.ParamNames {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]" + p.Result.String()
}

func NewPolyType(paramNames []names.Name, bounds []RealTypeBounds, result Type) PolyType {
	return PolyType{impl: newImpl(TagPoly), ParamNames: paramNames, Bounds: bounds, Result: result}
}

func (p PolyType) ResultType() Type               { return p.Result }
func (p PolyType) ParamName(index int) names.Name { return p.ParamNames[index] }
func (p PolyType) ParamCount() int                { return len(p.ParamNames) }

// LambdaParam is one parameter of a TypeLambda: a name plus its bounds.
type LambdaParam struct {
	Name   names.Name
	Bounds RealTypeBounds
}

// TypeLambda represents a higher-kinded type abstraction. Its result is
// computed lazily via a thunk that may itself build TypeParamRefs
// pointing back at this lambda; the result is memoized after first
// access so repeated ResultType calls are cheap and referentially
// consistent.
type TypeLambda struct {
	impl
	Params     []LambdaParam
	resultFn   func(*TypeLambda) Type
	result     Type
	haveResult bool
}

func (l *TypeLambda) String() string {
	parts := make([]string, len(l.Params))
	for i, p := range l.Params {
		parts[i] = p.Name.String()
	}
	return "[" + strings.Join(parts, ", ") + "] =>> " + l.ResultType().String()
}

func (l *TypeLambda) isType()  {}
func (l *TypeLambda) Tag() Tag { return TagLambda }

func (l *TypeLambda) ParamName(index int) names.Name { return l.Params[index].Name }
func (l *TypeLambda) ParamCount() int                { return len(l.Params) }

// NewTypeLambda builds a type lambda whose result is computed on first
// access by calling resultFn with the lambda itself (so resultFn may
// close over TypeParamRefs bound to it).
func NewTypeLambda(params []LambdaParam, resultFn func(*TypeLambda) Type) *TypeLambda {
	return &TypeLambda{impl: newImpl(TagLambda), Params: params, resultFn: resultFn}
}

// ResultType computes (once) and returns the lambda's result type.
func (l *TypeLambda) ResultType() Type {
	if !l.haveResult {
		l.result = l.resultFn(l)
		l.haveResult = true
	}
	return l.result
}

// TypeParamRef refers to the index-th parameter of a binder (PolyType or
// TypeLambda).
type TypeParamRef struct {
	impl
	BindingLambda Binder
	Index         int
}

func (r TypeParamRef) String() string { return r.ParamName().String() }

func NewTypeParamRef(binder Binder, index int) TypeParamRef {
	return TypeParamRef{impl: newImpl(TagParamRef), BindingLambda: binder, Index: index}
}

// ParamName looks up this reference's parameter name from its binder.
func (r TypeParamRef) ParamName() names.Name { return r.BindingLambda.ParamName(r.Index) }

// OverloadedType is the not-yet-widened type of a reference that denotes
// more than one overload alternative. It is a derived form needed to
// implement widenOverloads (§4.3); it is never produced by toType.
type OverloadedType struct {
	impl
	Alternatives []Type
}

func (o OverloadedType) String() string {
	parts := make([]string, len(o.Alternatives))
	for i, a := range o.Alternatives {
		parts[i] = a.String()
	}
	return "<overloaded: " + strings.Join(parts, " | ") + ">"
}

func NewOverloadedType(alternatives []Type) OverloadedType {
	return OverloadedType{impl: newImpl(TagOverloaded), Alternatives: alternatives}
}

// MatchType represents a match-type term: a scrutinee matched against a
// sequence of (pattern, result) cases, falling through to bound on no
// match. It is a derived structural form carried alongside RefinedType/
// AppliedType/TypeLambda to cover the source language's match types.
type MatchType struct {
	impl
	Bound     Type
	Scrutinee Type
	Cases     []MatchTypeCase
}

// MatchTypeCase is one case of a MatchType.
type MatchTypeCase struct {
	Pattern Type
	Result  Type
}

func (m MatchType) String() string {
	parts := make([]string, len(m.Cases))
	for i, c := range m.Cases {
		parts[i] = c.Pattern.String() + " => " + c.Result.String()
	}
	return m.Scrutinee.String() + " match {" + strings.Join(parts, "; ") + "}"
}

func NewMatchType(bound, scrutinee Type, cases []MatchTypeCase) MatchType {
	return MatchType{impl: newImpl(TagMatch), Bound: bound, Scrutinee: scrutinee, Cases: cases}
}

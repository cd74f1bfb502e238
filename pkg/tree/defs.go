package tree

import (
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

// PackageDef groups the top-level statements belonging to one package.
type PackageDef struct {
	base
	Pid   Tree
	Stats []Tree
}

func NewPackageDef(pid Tree, stats []Tree) *PackageDef {
	return &PackageDef{base: newBase(KindPackageDef), Pid: pid, Stats: stats}
}

// ImportSelector picks one name (or a wildcard) out of an Import/Export.
type ImportSelector struct {
	base
	Imported Tree
	Renamed  Tree
	Bound    Tree // type tree, optional
}

func NewImportSelector(imported, renamed, bound Tree) *ImportSelector {
	return &ImportSelector{base: newBase(KindImportSelector), Imported: imported, Renamed: renamed, Bound: bound}
}

// Import brings selected members of expr into scope.
type Import struct {
	base
	Expr      Tree
	Selectors []Tree
}

func NewImport(expr Tree, selectors []Tree) *Import {
	return &Import{base: newBase(KindImport), Expr: expr, Selectors: selectors}
}

// Export re-exposes selected members of expr.
type Export struct {
	base
	Expr      Tree
	Selectors []Tree
}

func NewExport(expr Tree, selectors []Tree) *Export {
	return &Export{base: newBase(KindExport), Expr: expr, Selectors: selectors}
}

// ClassDef introduces a class, trait, or object and its Template body.
type ClassDef struct {
	base
	Name     names.Name
	Template *Template
	Symbol   symbols.Symbol
}

func NewClassDef(name names.Name, template *Template, sym symbols.Symbol) *ClassDef {
	return &ClassDef{base: newBase(KindClassDef), Name: name, Template: template, Symbol: sym}
}

func (c *ClassDef) DefSymbol() symbols.Symbol { return c.Symbol }

// Template is the body of a ClassDef: its primary constructor, parents,
// self-reference, and statements.
type Template struct {
	base
	Ctor    Tree
	Parents []Tree // parent constructor-call trees, visited as subtrees
	// ParentTypes mirrors Parents in the type-tree projection: the type
	// each parent call denotes, visited by walkTypeTrees instead.
	ParentTypes []Tree
	Self        Tree
	Body        []Tree
}

func NewTemplate(ctor Tree, parents, parentTypes []Tree, self Tree, body []Tree) *Template {
	return &Template{base: newBase(KindTemplate), Ctor: ctor, Parents: parents, ParentTypes: parentTypes, Self: self, Body: body}
}

// ValDef introduces a value (val, var, or parameter) binding.
type ValDef struct {
	base
	Name   names.Name
	Tpt    Tree
	Rhs    Tree
	Symbol symbols.Symbol
}

func NewValDef(name names.Name, tpt, rhs Tree, sym symbols.Symbol) *ValDef {
	return &ValDef{base: newBase(KindValDef), Name: name, Tpt: tpt, Rhs: rhs, Symbol: sym}
}

func (v *ValDef) DefSymbol() symbols.Symbol { return v.Symbol }

// DefDef introduces a method, with one parameter list per clause.
type DefDef struct {
	base
	Name       names.Name
	ParamLists [][]Tree
	ResultTpt  Tree
	Rhs        Tree
	Symbol     symbols.Symbol
}

func NewDefDef(name names.Name, paramLists [][]Tree, resultTpt, rhs Tree, sym symbols.Symbol) *DefDef {
	return &DefDef{base: newBase(KindDefDef), Name: name, ParamLists: paramLists, ResultTpt: resultTpt, Rhs: rhs, Symbol: sym}
}

func (d *DefDef) DefSymbol() symbols.Symbol { return d.Symbol }

// flatParams flattens DefDef's curried parameter lists into one sequence,
// matching the tree model's flat(paramLists) subtree projection.
func flatParams(lists [][]Tree) []Tree {
	var out []Tree
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// TypeMember introduces a type alias or abstract type member.
type TypeMember struct {
	base
	Name   names.Name
	Rhs    Tree // a type tree (alias) or a TypeBoundsTree
	Symbol symbols.Symbol
}

func NewTypeMember(name names.Name, rhs Tree, sym symbols.Symbol) *TypeMember {
	return &TypeMember{base: newBase(KindTypeMember), Name: name, Rhs: rhs, Symbol: sym}
}

func (m *TypeMember) DefSymbol() symbols.Symbol { return m.Symbol }

// TypeParam introduces a type parameter with its bounds.
type TypeParam struct {
	base
	Name   names.Name
	Bounds Tree // a TypeBoundsTree
	Symbol symbols.Symbol
}

func NewTypeParam(name names.Name, bounds Tree, sym symbols.Symbol) *TypeParam {
	return &TypeParam{base: newBase(KindTypeParam), Name: name, Bounds: bounds, Symbol: sym}
}

func (p *TypeParam) DefSymbol() symbols.Symbol { return p.Symbol }

// Bind introduces a pattern-bound name.
type Bind struct {
	base
	Name   names.Name
	Body   Tree
	Symbol symbols.Symbol
}

func NewBind(name names.Name, body Tree, sym symbols.Symbol) *Bind {
	return &Bind{base: newBase(KindBind), Name: name, Body: body, Symbol: sym}
}

func (b *Bind) DefSymbol() symbols.Symbol { return b.Symbol }

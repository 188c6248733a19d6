package ast

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// Item is the closed set of top-level and impl/trait-member declarations.
type Item interface {
	itemNode()
	Span() source.Span
}

// Param is one function or method parameter.
type Param struct {
	Pattern Pattern
	Type    TypeExpr
}

// FunctionItem is a free function declaration.
type FunctionItem struct {
	Name       Ident
	Params     []Param
	ReturnType TypeExpr // nil means unit
	Body       *BlockExpr
	SpanInfo   source.Span
}

func (*FunctionItem) itemNode()           {}
func (i *FunctionItem) Span() source.Span { return i.SpanInfo }

// SelfParam describes a method's receiver: `self`, `&self`, or `&mut self`.
type SelfParam struct {
	IsReference bool
	IsMutable   bool
	SpanInfo    source.Span
}

// MethodItem is a function declared with a `self` receiver inside an impl
// or trait block.
type MethodItem struct {
	Name       Ident
	Self       SelfParam
	Params     []Param
	ReturnType TypeExpr // nil means unit
	Body       *BlockExpr
	SpanInfo   source.Span
}

func (*MethodItem) itemNode()           {}
func (i *MethodItem) Span() source.Span { return i.SpanInfo }

// FieldDecl is one struct field declaration.
type FieldDecl struct {
	Name Ident
	Type TypeExpr
}

// StructItem is a struct type declaration.
type StructItem struct {
	Name     Ident
	Fields   []FieldDecl
	SpanInfo source.Span
}

func (*StructItem) itemNode()           {}
func (i *StructItem) Span() source.Span { return i.SpanInfo }

// EnumItem is an enum type declaration; variants carry no payload in this
// language.
type EnumItem struct {
	Name     Ident
	Variants []Ident
	SpanInfo source.Span
}

func (*EnumItem) itemNode()           {}
func (i *EnumItem) Span() source.Span { return i.SpanInfo }

// ConstItem is a `const NAME: T = expr;` declaration.
type ConstItem struct {
	Name        Ident
	Type        TypeExpr
	Initializer Expr
	SpanInfo    source.Span
}

func (*ConstItem) itemNode()           {}
func (i *ConstItem) Span() source.Span { return i.SpanInfo }

// TraitItem is a trait declaration. Members are FunctionItem, MethodItem,
// or ConstItem nodes; their Body/Initializer may be nil (a required item
// with no default).
type TraitItem struct {
	Name     Ident
	Items    []Item
	SpanInfo source.Span
}

func (*TraitItem) itemNode()           {}
func (i *TraitItem) Span() source.Span { return i.SpanInfo }

// ImplItem is `impl [Trait for] Type { ... }`. Trait is nil for an inherent
// impl.
type ImplItem struct {
	Trait    *Path
	ForType  TypeExpr
	Items    []Item
	SpanInfo source.Span
}

func (*ImplItem) itemNode()           {}
func (i *ImplItem) Span() source.Span { return i.SpanInfo }

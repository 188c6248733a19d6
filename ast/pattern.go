package ast

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// Pattern is the closed set of irrefutable pattern shapes legal in function
// parameters and `let` bindings.
type Pattern interface {
	patternNode()
	Span() source.Span
}

// BindingPattern introduces a new local, e.g. `x`, `mut x`, `ref x`.
type BindingPattern struct {
	Name      Ident
	IsMutable bool
	IsRef     bool
	SpanInfo  source.Span
}

func (*BindingPattern) patternNode()        {}
func (p *BindingPattern) Span() source.Span { return p.SpanInfo }

// LiteralPattern matches a literal value; only legal in contexts that
// permit refutable patterns in the surface grammar (match is out of scope
// here, but the node exists so `let Literal = ...` shapes lower cleanly).
type LiteralPattern struct {
	Value      Expr
	IsNegative bool
	SpanInfo   source.Span
}

func (*LiteralPattern) patternNode()        {}
func (p *LiteralPattern) Span() source.Span { return p.SpanInfo }

// WildcardPattern is `_`.
type WildcardPattern struct {
	SpanInfo source.Span
}

func (*WildcardPattern) patternNode()        {}
func (p *WildcardPattern) Span() source.Span { return p.SpanInfo }

// RefPattern is `&p` or `&mut p`.
type RefPattern struct {
	Inner    Pattern
	Mutable  bool
	SpanInfo source.Span
}

func (*RefPattern) patternNode()        {}
func (p *RefPattern) Span() source.Span { return p.SpanInfo }

// PathPattern names a unit struct or enum variant constructor used as a
// pattern, e.g. `Color::Red`.
type PathPattern struct {
	Path     Path
	SpanInfo source.Span
}

func (*PathPattern) patternNode()        {}
func (p *PathPattern) Span() source.Span { return p.SpanInfo }

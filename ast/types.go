package ast

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// TypeExpr is the syntactic representation of a type annotation, as it
// appears before type finalization resolves it to a
// typeck.TypeId.
type TypeExpr interface {
	typeExprNode()
	Span() source.Span
}

// PrimitiveTypeExpr names a built-in primitive or the opaque String type by
// identifier, e.g. `i32`, `bool`, `str`.
type PrimitiveTypeExpr struct {
	Name     string
	SpanInfo source.Span
}

func (*PrimitiveTypeExpr) typeExprNode()       {}
func (t *PrimitiveTypeExpr) Span() source.Span { return t.SpanInfo }

// PathTypeExpr names a struct, enum, or trait by path, e.g. `Foo` or `Self`.
type PathTypeExpr struct {
	Path     Path
	SpanInfo source.Span
}

func (*PathTypeExpr) typeExprNode()       {}
func (t *PathTypeExpr) Span() source.Span { return t.SpanInfo }

// RefTypeExpr is `&T` or `&mut T`.
type RefTypeExpr struct {
	Inner    TypeExpr
	Mutable  bool
	SpanInfo source.Span
}

func (*RefTypeExpr) typeExprNode()       {}
func (t *RefTypeExpr) Span() source.Span { return t.SpanInfo }

// ArrayTypeExpr is `[T; N]` where N is a constant expression.
type ArrayTypeExpr struct {
	Element  TypeExpr
	Length   Expr
	SpanInfo source.Span
}

func (*ArrayTypeExpr) typeExprNode()       {}
func (t *ArrayTypeExpr) Span() source.Span { return t.SpanInfo }

// UnitTypeExpr is `()`.
type UnitTypeExpr struct {
	SpanInfo source.Span
}

func (*UnitTypeExpr) typeExprNode()       {}
func (t *UnitTypeExpr) Span() source.Span { return t.SpanInfo }

// InferredTypeExpr is `_`, a placeholder never legal past type finalization.
type InferredTypeExpr struct {
	SpanInfo source.Span
}

func (*InferredTypeExpr) typeExprNode()       {}
func (t *InferredTypeExpr) Span() source.Span { return t.SpanInfo }

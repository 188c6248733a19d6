package ast

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// Stmt is the closed set of surface statement forms inside a block.
type Stmt interface {
	stmtNode()
	Span() source.Span
}

// LetStmt is `let pattern [: annotation] [= initializer];`.
type LetStmt struct {
	Pattern     Pattern
	Annotation  TypeExpr // nil if omitted
	Initializer Expr     // nil if omitted
	SpanInfo    source.Span
}

func (*LetStmt) stmtNode()           {}
func (s *LetStmt) Span() source.Span { return s.SpanInfo }

// ExprStmt wraps an expression used as a statement. HasSemicolon records
// whether a trailing `;` discarded the expression's value.
type ExprStmt struct {
	Expr         Expr
	HasSemicolon bool
	SpanInfo     source.Span
}

func (*ExprStmt) stmtNode()           {}
func (s *ExprStmt) Span() source.Span { return s.SpanInfo }

package hir

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// Stmt is the closed HIR statement variant set.
type Stmt interface {
	stmtNode()
}

// LetStmt is `let pattern [: annotation] [= initializer];`.
type LetStmt struct {
	Pattern     Pattern
	Annotation  TypeAnnotation // absent (zero Syntax) when omitted
	Initializer *Expr          // nil when omitted
	Span        source.Span
}

func (*LetStmt) stmtNode() {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Expr         Expr
	HasSemicolon bool
	Span         source.Span
}

func (*ExprStmt) stmtNode() {}

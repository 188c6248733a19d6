package hir

import "github.com/rogerflowey/rust-compiler-sub006/ast"

// TypeNode is the lowered, HIR-owned mirror of ast.TypeExpr: mechanically
// rewritten by lowering the same way every other HIR node is. It exists
// separately from ast.TypeExpr only so an array length's bound expression is
// a *hir.Expr (with its own fresh Local references etc.) rather than raw,
// unlowered AST — type finalization and the constant evaluator both need to
// walk a HIR expression tree, not an ast-level syntax tree.
type TypeNode interface {
	typeNodeNode()
}

type PrimitiveTypeNode struct{ Name string }

func (*PrimitiveTypeNode) typeNodeNode() {}

type PathTypeNode struct{ Syntax ast.Path }

func (*PathTypeNode) typeNodeNode() {}

type RefTypeNode struct {
	Inner   TypeNode
	Mutable bool
}

func (*RefTypeNode) typeNodeNode() {}

type ArrayTypeNode struct {
	Element TypeNode
	Length  Expr
}

func (*ArrayTypeNode) typeNodeNode() {}

type UnitTypeNode struct{}

func (*UnitTypeNode) typeNodeNode() {}

type InferredTypeNode struct{}

func (*InferredTypeNode) typeNodeNode() {}

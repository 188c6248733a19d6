package lowering

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
)

func (lw *Lowerer) lowerTypeAnnotation(t ast.TypeExpr) hir.TypeAnnotation {
	return hir.TypeAnnotation{Syntax: lw.lowerTypeNode(t, nil), Span: t.Span()}
}

// lowerTypeNode mirrors t into a hir.TypeNode. Array lengths are lowered
// through lowerExpr like any other expression (ls may be nil: a type
// annotation's array-length expression cannot itself introduce a binding,
// so it never needs a Local table to append to).
func (lw *Lowerer) lowerTypeNode(t ast.TypeExpr, ls *locals) hir.TypeNode {
	switch n := t.(type) {
	case *ast.PrimitiveTypeExpr:
		return &hir.PrimitiveTypeNode{Name: n.Name}
	case *ast.PathTypeExpr:
		return &hir.PathTypeNode{Syntax: n.Path}
	case *ast.RefTypeExpr:
		return &hir.RefTypeNode{Inner: lw.lowerTypeNode(n.Inner, ls), Mutable: n.Mutable}
	case *ast.ArrayTypeExpr:
		return &hir.ArrayTypeNode{Element: lw.lowerTypeNode(n.Element, ls), Length: lw.lowerExpr(n.Length, ls)}
	case *ast.UnitTypeExpr:
		return &hir.UnitTypeNode{}
	case *ast.InferredTypeExpr:
		return &hir.InferredTypeNode{}
	default:
		panic("lowering: invalid AST — unexpected type expression shape")
	}
}

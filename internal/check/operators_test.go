package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefMutRequiresMutablePlace(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := local("x", false, i32)

	refExpr := exprOf(&hir.UnaryOpData{Op: ast.OpRefMut, Operand: *exprOf(&hir.VariableData{Local: x})})
	body := &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *refExpr}}}
	r.runFunc(body, []*hir.Local{x})

	errs := r.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindImmutableAssign, errs[0].Kind)
}

func TestRefMutOnMutableLocalSucceeds(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := local("x", true, i32)

	refExpr := exprOf(&hir.UnaryOpData{Op: ast.OpRefMut, Operand: *exprOf(&hir.VariableData{Local: x})})
	stmt := &hir.ExprStmt{Expr: *refExpr}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	tt := r.in.Lookup(stmt.Expr.Info.Type)
	assert.Equal(t, typeck.KReference, tt.Kind)
	assert.True(t, tt.Mutable)
	assert.Equal(t, i32, tt.Pointee)
}

func TestDerefOfMutableReferenceIsAMutablePlace(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	refT := r.in.Reference(i32, true)
	x := local("r", false, refT)

	derefExpr := exprOf(&hir.UnaryOpData{Op: ast.OpDeref, Operand: *exprOf(&hir.VariableData{Local: x})})
	stmt := &hir.ExprStmt{Expr: *derefExpr}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	assert.True(t, stmt.Expr.Info.IsPlace)
	assert.True(t, stmt.Expr.Info.IsMutablePlace)
	assert.Equal(t, i32, stmt.Expr.Info.Type)
}

func TestDerefOfNonReferenceIsAnError(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := local("x", false, i32)

	derefExpr := exprOf(&hir.UnaryOpData{Op: ast.OpDeref, Operand: *exprOf(&hir.VariableData{Local: x})})
	body := &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *derefExpr}}}
	r.runFunc(body, []*hir.Local{x})

	errs := r.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTypeMismatch, errs[0].Kind)
}

package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnusedLocalProducesAHint(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := &hir.Local{Name: "x"}
	letStmt := &hir.LetStmt{
		Pattern:     &hir.BindingPattern{Local: x},
		Annotation:  ann(i32),
		Initializer: exprOf(&hir.IntLiteralData{Suffix: "i32"}),
	}
	body := &hir.Block{Stmts: []hir.Stmt{letStmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	hints := r.diags.Hints()
	require.Len(t, hints, 1)
	assert.Equal(t, diag.KindUnusedBinding, hints[0].Kind)
}

func TestUnderscorePrefixedLocalIsExempt(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := &hir.Local{Name: "_x"}
	letStmt := &hir.LetStmt{
		Pattern:     &hir.BindingPattern{Local: x},
		Annotation:  ann(i32),
		Initializer: exprOf(&hir.IntLiteralData{Suffix: "i32"}),
	}
	body := &hir.Block{Stmts: []hir.Stmt{letStmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	assert.Empty(t, r.diags.Hints())
}

func TestReadLocalProducesNoHint(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	x := &hir.Local{Name: "x"}
	letStmt := &hir.LetStmt{
		Pattern:     &hir.BindingPattern{Local: x},
		Annotation:  ann(i32),
		Initializer: exprOf(&hir.IntLiteralData{Suffix: "i32"}),
	}
	use := &hir.ExprStmt{Expr: *exprOf(&hir.VariableData{Local: x})}
	body := &hir.Block{Stmts: []hir.Stmt{letStmt, use}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	assert.Empty(t, r.diags.Hints())
}

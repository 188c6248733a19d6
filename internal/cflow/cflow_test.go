package cflow_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/cflow"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakWithResolvedTargetIsNotDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	loopExpr := &hir.LoopData{Body: &hir.Block{}}
	breakData := &hir.BreakData{}
	breakData.Target.Set(loopExpr)

	prog := &hir.Program{Functions: []*hir.Function{{
		Body: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: breakData}}}},
	}}}
	cflow.New(diags).Run(prog)

	assert.False(t, diags.HasErrors())
}

func TestBreakWithUnresolvedTargetIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	breakData := &hir.BreakData{}

	prog := &hir.Program{Functions: []*hir.Function{{
		Body: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: breakData}}}},
	}}}
	cflow.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindBreakOutsideLoop, errs[0].Kind)
}

func TestContinueWithUnresolvedTargetIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	continueData := &hir.ContinueData{}

	prog := &hir.Program{Functions: []*hir.Function{{
		Body: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: continueData}}}},
	}}}
	cflow.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindContinueOutsideLoop, errs[0].Kind)
}

func TestReturnWithUnresolvedTargetIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	returnData := &hir.ReturnData{}

	prog := &hir.Program{Functions: []*hir.Function{{
		Body: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: returnData}}}},
	}}}
	cflow.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindReturnOutsideFn, errs[0].Kind)
}

// TestWalkDescendsIntoNestedExpressions checks that an unresolved break
// buried inside an if expression's then-block is still found.
func TestWalkDescendsIntoNestedExpressions(t *testing.T) {
	diags := diag.NewCollector()
	breakData := &hir.BreakData{}
	ifExpr := &hir.IfData{
		Cond: hir.Expr{Data: &hir.BoolLiteralData{Value: true}},
		Then: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: breakData}}}},
	}

	prog := &hir.Program{Functions: []*hir.Function{{
		Body: &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: hir.Expr{Data: ifExpr}}}},
	}}}
	cflow.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindBreakOutsideLoop, errs[0].Kind)
}

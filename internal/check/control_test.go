package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfWithoutElseMustYieldUnit(t *testing.T) {
	r := newRig()
	ifExpr := &hir.IfData{
		Cond: *exprOf(&hir.BoolLiteralData{Value: true}),
		Then: &hir.Block{Final: exprOf(&hir.IntLiteralData{Suffix: "i32"})},
	}
	body := &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *exprOf(ifExpr)}}}
	r.runFunc(body, nil)

	errs := r.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTypeMismatch, errs[0].Kind)
}

// TestIfElseUnifiesBranchTypes checks the if-expression as a plain statement
// (not the function's own trailing value) so its i32 result never also has
// to satisfy the surrounding test function's Unit return type.
func TestIfElseUnifiesBranchTypes(t *testing.T) {
	r := newRig()
	ifExpr := &hir.IfData{
		Cond: *exprOf(&hir.BoolLiteralData{Value: true}),
		Then: &hir.Block{Final: exprOf(&hir.IntLiteralData{Suffix: "i32"})},
		Else: exprOf(&hir.Block{Final: exprOf(&hir.IntLiteralData{Suffix: "i32"})}),
	}
	stmt := &hir.ExprStmt{Expr: *exprOf(ifExpr)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, nil)

	require.False(t, r.diags.HasErrors())
	assert.Equal(t, r.in.Primitive(typeck.I32), stmt.Expr.Info.Type)
}

func TestLoopWithNoBreakDiverges(t *testing.T) {
	r := newRig()
	loopExpr := &hir.LoopData{Body: &hir.Block{}}
	stmt := &hir.ExprStmt{Expr: *exprOf(loopExpr)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, nil)

	require.False(t, r.diags.HasErrors())
	assert.True(t, stmt.Expr.Info.Diverges)
	assert.Equal(t, r.in.Never(), stmt.Expr.Info.Type)
}

func TestLoopTypeIsBreakValueType(t *testing.T) {
	r := newRig()
	loopExpr := &hir.LoopData{Body: &hir.Block{
		Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *exprOf(&hir.BreakData{
			Value: exprOf(&hir.IntLiteralData{Suffix: "i32"}),
		})}},
	}}
	stmt := &hir.ExprStmt{Expr: *exprOf(loopExpr)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, nil)

	require.False(t, r.diags.HasErrors())
	assert.False(t, stmt.Expr.Info.Diverges)
	assert.Equal(t, r.in.Primitive(typeck.I32), stmt.Expr.Info.Type)
}

func TestWhileAlwaysYieldsUnitAndNeverDiverges(t *testing.T) {
	r := newRig()
	whileExpr := &hir.WhileData{
		Cond: *exprOf(&hir.BoolLiteralData{Value: true}),
		Body: &hir.Block{},
	}
	final := exprOf(whileExpr)
	body := &hir.Block{Final: final}
	r.runFunc(body, nil)

	require.False(t, r.diags.HasErrors())
	assert.False(t, final.Info.Diverges)
	assert.Equal(t, r.in.Unit(), final.Info.Type)
}

// TestLoopUsedAsTrailingReturnNarrowsBreakToReturnType checks that a loop
// used as a function's implicit trailing return pushes the function's
// declared return type into the first break value, instead of letting
// unsuffixed-literal defaulting pick a type that then mismatches it.
func TestLoopUsedAsTrailingReturnNarrowsBreakToReturnType(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	loopExpr := &hir.LoopData{Body: &hir.Block{
		Stmts: []hir.Stmt{
			&hir.ExprStmt{Expr: *exprOf(&hir.BreakData{Value: exprOf(&hir.IntLiteralData{})}), HasSemicolon: true},
			&hir.ExprStmt{Expr: *exprOf(&hir.BreakData{Value: exprOf(&hir.IntLiteralData{Text: "2"})})},
		},
	}}
	final := exprOf(loopExpr)
	body := &hir.Block{Final: final}
	r.runFuncReturning(i32, body, nil)

	require.False(t, r.diags.HasErrors())
	assert.Equal(t, i32, final.Info.Type)
}

// TestBreakWithValueRejectedInsideWhile checks that `while`, whose type is
// always Unit, rejects a value-carrying break rather than silently letting
// it through.
func TestBreakWithValueRejectedInsideWhile(t *testing.T) {
	r := newRig()
	whileExpr := &hir.WhileData{
		Cond: *exprOf(&hir.BoolLiteralData{Value: true}),
		Body: &hir.Block{
			Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *exprOf(&hir.BreakData{
				Value: exprOf(&hir.IntLiteralData{Suffix: "i32"}),
			})}},
		},
	}
	stmt := &hir.ExprStmt{Expr: *exprOf(whileExpr)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, nil)

	errs := r.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTypeMismatch, errs[0].Kind)
}

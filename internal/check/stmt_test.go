package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFunctionBodyTrailingExprNarrowsToReturnType checks that an unsuffixed
// integer literal used as a function's implicit trailing return takes the
// declared return type instead of defaulting and then mismatching it.
func TestFunctionBodyTrailingExprNarrowsToReturnType(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	final := exprOf(&hir.IntLiteralData{})
	body := &hir.Block{Final: final}
	r.runFuncReturning(i32, body, nil)

	require.False(t, r.diags.HasErrors())
	assert.Equal(t, i32, final.Info.Type)
}

// TestFunctionBodyTrailingExprStillCaughtOnMismatch checks that a concretely
// wrong trailing type is still rejected once expected propagation is in
// place.
func TestFunctionBodyTrailingExprStillCaughtOnMismatch(t *testing.T) {
	r := newRig()
	i32 := r.in.Primitive(typeck.I32)
	final := exprOf(&hir.BoolLiteralData{Value: true})
	body := &hir.Block{Final: final}
	r.runFuncReturning(i32, body, nil)

	require.True(t, r.diags.HasErrors())
}

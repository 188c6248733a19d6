package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntLiteralDefaulting(t *testing.T) {
	tests := []struct {
		name       string
		suffix     string
		isNegative bool
		want       typeck.PrimitiveKind
		wantErr    bool
	}{
		{name: "positive unsuffixed defaults to u32", want: typeck.U32},
		{name: "negative unsuffixed defaults to i32", isNegative: true, want: typeck.I32},
		{name: "explicit suffix wins", suffix: "usize", want: typeck.USize},
		{name: "negative literal with unsigned suffix is an error", suffix: "u32", isNegative: true, want: typeck.U32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			lit := &hir.IntLiteralData{Suffix: tt.suffix, IsNegative: tt.isNegative}
			final := &hir.ExprStmt{Expr: *exprOf(lit)}
			body := &hir.Block{Stmts: []hir.Stmt{final}}
			r.runFunc(body, nil)

			got := final.Expr.Info.Type
			gotT := r.in.Lookup(got)
			assert.Equal(t, tt.want, gotT.Prim)
			assert.Equal(t, tt.wantErr, r.diags.HasErrors())
		})
	}
}

func TestIntLiteralNarrowsToExpectedType(t *testing.T) {
	r := newRig()
	isize := r.in.Primitive(typeck.ISize)
	x := &hir.Local{Name: "x"}
	letStmt := &hir.LetStmt{
		Pattern:     &hir.BindingPattern{Local: x},
		Annotation:  ann(isize),
		Initializer: exprOf(&hir.IntLiteralData{}),
	}
	body := &hir.Block{Stmts: []hir.Stmt{letStmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	got := letStmt.Initializer.Info.Type
	assert.Equal(t, isize, got)
}

package check_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPointImpl(r *rig) (typeck.TypeId, *hir.Impl) {
	def := &hir.StructDef{ID: 1, Name: "Point"}
	pointT := r.in.Struct(def.ID, def)
	impl := &hir.Impl{IsInherent: true, ForType: ann(pointT)}
	byValue := &hir.Method{
		Name:       "value_self",
		Self:       hir.SelfParam{IsReference: false},
		ReturnType: ann(r.in.Unit()),
		Body:       &hir.Block{},
	}
	byValue.Owner = impl
	byRef := &hir.Method{
		Name:       "ref_self",
		Self:       hir.SelfParam{IsReference: true, IsMutable: false},
		ReturnType: ann(r.in.Unit()),
		Body:       &hir.Block{},
	}
	byRef.Owner = impl
	byMutRef := &hir.Method{
		Name:       "mut_self",
		Self:       hir.SelfParam{IsReference: true, IsMutable: true},
		ReturnType: ann(r.in.Unit()),
		Body:       &hir.Block{},
	}
	byMutRef.Owner = impl
	impl.Methods = []*hir.Method{byValue, byRef, byMutRef}
	r.impls.Add(pointT, impl)
	return pointT, impl
}

func TestMethodCallResolvesByValueSelfDirectly(t *testing.T) {
	r := newRig()
	pointT, _ := newPointImpl(r)
	x := local("p", false, pointT)

	call := &hir.MethodCallData{Receiver: *exprOf(&hir.VariableData{Local: x}), MethodName: "value_self"}
	stmt := &hir.ExprStmt{Expr: *exprOf(call)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	require.True(t, call.Resolved.Resolved)
	assert.Equal(t, "value_self", call.Resolved.Method.Name)
	assert.Equal(t, 0, call.Resolved.Adjustment.Derefs)
}

// TestMethodCallAutoderefsThroughAReference checks that calling a by-value
// method through a `&Point` receiver autoderefs one level.
func TestMethodCallAutoderefsThroughAReference(t *testing.T) {
	r := newRig()
	pointT, _ := newPointImpl(r)
	refT := r.in.Reference(pointT, false)
	x := local("p", false, refT)

	call := &hir.MethodCallData{Receiver: *exprOf(&hir.VariableData{Local: x}), MethodName: "value_self"}
	stmt := &hir.ExprStmt{Expr: *exprOf(call)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	require.True(t, call.Resolved.Resolved)
	assert.Equal(t, "value_self", call.Resolved.Method.Name)
	assert.Equal(t, 1, call.Resolved.Adjustment.Derefs)
}

// TestMethodCallRequiresMutablePlaceForMutSelf checks that an immutable
// receiver cannot resolve a `&mut self` method.
func TestMethodCallRequiresMutablePlaceForMutSelf(t *testing.T) {
	r := newRig()
	pointT, _ := newPointImpl(r)
	x := local("p", false, pointT)

	call := &hir.MethodCallData{Receiver: *exprOf(&hir.VariableData{Local: x}), MethodName: "mut_self"}
	body := &hir.Block{Stmts: []hir.Stmt{&hir.ExprStmt{Expr: *exprOf(call)}}}
	r.runFunc(body, []*hir.Local{x})

	errs := r.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindNoSuchMethod, errs[0].Kind)
}

// TestMethodCallAllowsRefSelfOnATemporary checks that autoref can take a
// shared reference to a non-place receiver: calling a `&self` method on a
// fresh struct literal must resolve even though the literal is not
// addressable.
func TestMethodCallAllowsRefSelfOnATemporary(t *testing.T) {
	r := newRig()
	pointT, _ := newPointImpl(r)
	sd := r.in.Lookup(pointT).Def.(*hir.StructDef)

	receiver := exprOf(&hir.StructLiteralData{Struct: sd})
	call := &hir.MethodCallData{Receiver: *receiver, MethodName: "ref_self"}
	stmt := &hir.ExprStmt{Expr: *exprOf(call)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, nil)

	require.False(t, r.diags.HasErrors())
	require.True(t, call.Resolved.Resolved)
	assert.Equal(t, "ref_self", call.Resolved.Method.Name)
}

func TestMethodCallFindsMutSelfOnMutablePlace(t *testing.T) {
	r := newRig()
	pointT, _ := newPointImpl(r)
	x := local("p", true, pointT)

	call := &hir.MethodCallData{Receiver: *exprOf(&hir.VariableData{Local: x}), MethodName: "mut_self"}
	stmt := &hir.ExprStmt{Expr: *exprOf(call)}
	body := &hir.Block{Stmts: []hir.Stmt{stmt}}
	r.runFunc(body, []*hir.Local{x})

	require.False(t, r.diags.HasErrors())
	require.True(t, call.Resolved.Resolved)
	assert.Equal(t, "mut_self", call.Resolved.Method.Name)
	assert.True(t, call.Resolved.Adjustment.TakeRef)
	assert.True(t, call.Resolved.Adjustment.RefMutable)
}

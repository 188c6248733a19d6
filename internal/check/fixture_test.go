package check_test

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/check"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/finalize"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// rig bundles one test's Checker plus the Interner it checks against, so
// every test case gets the same wiring checkFunction's real callers use
// (finalize.Context, scope.ImplTable) without going through lowering/resolve.
type rig struct {
	diags *diag.Collector
	in    *typeck.Interner
	impls *scope.ImplTable
	c     *check.Checker
}

func newRig() *rig {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	fin := finalize.NewContext(in, diags)
	impls := scope.NewImplTable()
	return &rig{diags: diags, in: in, impls: impls, c: check.New(diags, fin, impls)}
}

func ann(id typeck.TypeId) hir.TypeAnnotation {
	var a hir.TypeAnnotation
	a.Set(id)
	return a
}

func exprOf(data hir.ExprData) *hir.Expr {
	return &hir.Expr{Data: data, Span: source.Span{}}
}

func local(name string, mutable bool, t typeck.TypeId) *hir.Local {
	return &hir.Local{Name: name, IsMutable: mutable, Annotation: ann(t)}
}

// runFunc wraps body in a single no-args, Unit-returning function and
// checks it as Run would for a real program.
func (r *rig) runFunc(body *hir.Block, locals []*hir.Local) *hir.Function {
	return r.runFuncReturning(r.in.Unit(), body, locals)
}

// runFuncReturning is runFunc with an explicit declared return type, for
// tests that need the trailing value to be checked against something other
// than Unit.
func (r *rig) runFuncReturning(ret typeck.TypeId, body *hir.Block, locals []*hir.Local) *hir.Function {
	f := &hir.Function{
		Name:       "test",
		ReturnType: ann(ret),
		Body:       body,
		Locals:     locals,
	}
	r.c.Run(&hir.Program{Functions: []*hir.Function{f}})
	return f
}

// Package check implements the expression checker: one bidirectional,
// recursive-descent pass per function/method/const body over already
// name-resolved and type-finalized HIR, populating every reachable Expr's
// ExprInfo (type, place-ness, divergence). It uses a plain switch over each
// node's concrete kind with an optional expected-type parameter threaded
// downward, no visitor indirection. typeck.TypeId is compared by Go `==`
// throughout — the interner already guarantees structural equality
// collapses to identity, so there is no need for a deep structural compare.
//
// AnyInt/AnyUInt are never threaded through the `expected` parameter between
// calls. An unsuffixed integer literal resolves its final concrete type
// entirely inside its own check (against whatever concrete `expected` its
// immediate caller passed, or the i32/u32 default otherwise); every other
// call site only ever passes a concrete TypeId or typeck.Invalid ("no
// expectation") as `expected`. Array-literal elements, call arguments, and
// so on never get a still-unresolved Any type as their expected type — only
// a literal's immediate consumer ever does — so this collapses the
// bookkeeping into the one call site that needs it.
package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/finalize"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// Checker drives one program's expression checking.
type Checker struct {
	Diags    *diag.Collector
	Finalize *finalize.Context
	Impls    *scope.ImplTable
}

func New(diags *diag.Collector, fin *finalize.Context, impls *scope.ImplTable) *Checker {
	return &Checker{Diags: diags, Finalize: fin, Impls: impls}
}

// funcCtx is the per-function/method mutable context private to one
// checkFunctionBody call stack: the current loop stack and the function's
// own return type. There is no scope pointer here — name resolution already
// rewrote every identifier, so the checker never looks a name up.
type funcCtx struct {
	ret   typeck.TypeId
	fn    hir.FuncTarget
	loops []*loopScope
	used  map[*hir.Local]bool
}

// loopScope tracks one lexically-enclosing loop/while while its body is
// being checked, so Break can unify successive break values against the
// first one seen and record which construct it targets. breakExpected is the
// expected type the loop itself is being checked against, used only for the
// first break value seen (isWhile is never eligible: a while's type is
// always Unit).
type loopScope struct {
	target        hir.LoopTarget
	breakType     typeck.TypeId
	haveBreak     bool
	breakExpected typeck.TypeId
	isWhile       bool
}

func (c *Checker) currentLoop(fc *funcCtx) *loopScope {
	if len(fc.loops) == 0 {
		return nil
	}
	return fc.loops[len(fc.loops)-1]
}

// Run checks every function, method, and top-level const initializer in
// prog. Trait items have nil bodies and are skipped, matching resolve's own
// body-resolution sweep.
func (c *Checker) Run(prog *hir.Program) {
	for _, f := range prog.Functions {
		c.checkFunction(f)
	}
	for _, impl := range prog.Impls {
		for _, f := range impl.Functions {
			c.checkFunction(f)
		}
		for _, m := range impl.Methods {
			c.checkMethod(m)
		}
		for _, cd := range impl.Consts {
			c.checkConstInitializer(cd)
		}
	}
	for _, cd := range prog.Consts {
		c.checkConstInitializer(cd)
	}
}

func (c *Checker) checkFunction(f *hir.Function) {
	if f.Body == nil {
		return
	}
	for i, p := range f.Params {
		p.Annotation.Set(f.ParamTypes[i].MustResolved())
	}
	fc := &funcCtx{ret: f.ReturnType.MustResolved(), fn: f, used: make(map[*hir.Local]bool)}
	c.checkFunctionBody(f.Body, fc)
	c.checkUnusedLocals(f.Locals, fc.used)
}

func (c *Checker) checkMethod(m *hir.Method) {
	if m.Body == nil {
		return
	}
	// m.SelfLocal.Annotation is already set by resolve.resolveMethodSignature.
	for i, p := range m.Params {
		p.Annotation.Set(m.ParamTypes[i].MustResolved())
	}
	fc := &funcCtx{ret: m.ReturnType.MustResolved(), fn: m, used: make(map[*hir.Local]bool)}
	c.checkFunctionBody(m.Body, fc)
	c.checkUnusedLocals(m.Locals, fc.used)
}

// checkFunctionBody checks body as a function/method body: its value must
// match the declared return type exactly like an implicit trailing return.
func (c *Checker) checkFunctionBody(body *hir.Block, fc *funcCtx) {
	t, diverges := c.checkBlock(body, fc.ret, fc)
	c.reconcile(t, diverges, fc.ret, body.Span)
}

func (c *Checker) checkConstInitializer(cd *hir.ConstDef) {
	if cd.Initializer == nil {
		return
	}
	// Top-level/impl consts never contain control flow worth tracking; a
	// funcCtx with no return target is enough (Return inside a const
	// initializer is invalid syntax the parser would already have rejected).
	c.checkExpr(cd.Initializer, cd.Annotation.MustResolved(), &funcCtx{used: make(map[*hir.Local]bool)})
}

// reconcile applies the rule that divergence is assignable to any expected
// type and otherwise requires exact TypeId equality, reporting a
// KindTypeMismatch diagnostic on failure. expected == typeck.Invalid means
// "no expectation"; the computed type passes through unchanged.
func (c *Checker) reconcile(computed typeck.TypeId, diverges bool, expected typeck.TypeId, span source.Span) typeck.TypeId {
	if expected == typeck.Invalid || expected == computed {
		return computed
	}
	if diverges && computed == c.Finalize.Interner.Never() {
		return expected
	}
	c.Diags.Errorf(diag.KindTypeMismatch, span, "expected type %s, found %s",
		c.Finalize.Interner.Display(expected), c.Finalize.Interner.Display(computed))
	return expected
}

// unifyBranches reconciles two branches of equal syntactic standing (an
// if/else's then/else arms) rather than an expected/computed pair: either
// side may be Never, in which case the other's type wins; otherwise they
// must match exactly").
func (c *Checker) unifyBranches(aType typeck.TypeId, bType typeck.TypeId, span source.Span) typeck.TypeId {
	never := c.Finalize.Interner.Never()
	if aType == never {
		return bType
	}
	if bType == never {
		return aType
	}
	if aType != bType {
		c.Diags.Errorf(diag.KindTypeMismatch, span, "if branches have incompatible types: %s vs %s",
			c.Finalize.Interner.Display(aType), c.Finalize.Interner.Display(bType))
	}
	return aType
}

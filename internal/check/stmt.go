package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkBlock implements the block rule: statements run in
// order; the value is the trailing expression's (or Unit, if absent),
// checked against expected when the block's own value is the one that
// matters (a function body, an if/else arm, a block used as an expression);
// pass typeck.Invalid when the block's value is discarded (a loop or while
// body). If any statement diverges the block's own type is forced to Never
// regardless of what the trailing expression computed, and the trailing
// expression itself is then checked with no expectation since unreachable
// code need not match it.
func (c *Checker) checkBlock(b *hir.Block, expected typeck.TypeId, fc *funcCtx) (typeck.TypeId, bool) {
	diverges := false
	for _, s := range b.Stmts {
		if c.checkStmt(s, fc) {
			diverges = true
		}
	}
	finalExpected := expected
	if diverges {
		finalExpected = typeck.Invalid
	}
	var t typeck.TypeId
	if b.Final != nil {
		t = c.checkExpr(b.Final, finalExpected, fc)
		if b.Final.Info.Diverges {
			diverges = true
		}
	} else {
		t = c.Finalize.Interner.Unit()
		if finalExpected != typeck.Invalid {
			t = c.reconcile(t, false, finalExpected, b.Span)
		}
	}
	if diverges {
		t = c.Finalize.Interner.Never()
	}
	return t, diverges
}

func (c *Checker) checkStmt(s hir.Stmt, fc *funcCtx) bool {
	switch st := s.(type) {
	case *hir.LetStmt:
		return c.checkLetStmt(st, fc)
	case *hir.ExprStmt:
		c.checkExpr(&st.Expr, typeck.Invalid, fc)
		return st.Expr.Info.Diverges
	default:
		diag.Bug("check: unhandled hir.Stmt %T", s)
		return false
	}
}

// checkLetStmt implements the Let rule: the initializer is
// checked against the annotation when present, otherwise inferred freely;
// the resulting type is then unified against the pattern.
func (c *Checker) checkLetStmt(s *hir.LetStmt, fc *funcCtx) bool {
	var t typeck.TypeId
	diverges := false
	switch {
	case s.Annotation.Resolved:
		t = s.Annotation.MustResolved()
		if s.Initializer != nil {
			c.checkExpr(s.Initializer, t, fc)
			diverges = s.Initializer.Info.Diverges
		}
	case s.Initializer != nil:
		t = c.checkExpr(s.Initializer, typeck.Invalid, fc)
		diverges = s.Initializer.Info.Diverges
	default:
		c.Diags.Errorf(diag.KindTypeMismatch, s.Span, "cannot infer type of binding without an annotation or initializer")
		t = c.poison()
	}
	c.bindPattern(s.Pattern, t, s.Span)
	return diverges
}

// bindPattern unifies an irrefutable pattern against t, writing any
// BindingPattern's Local.Annotation along the way.
func (c *Checker) bindPattern(p hir.Pattern, t typeck.TypeId, span source.Span) {
	switch pt := p.(type) {
	case *hir.BindingPattern:
		pt.Local.Annotation.Set(t)
	case *hir.WildcardPattern:
		// binds nothing

	case *hir.RefPattern:
		tt := c.Finalize.Interner.Lookup(t)
		if tt.Kind != typeck.KReference {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "expected a reference type to match this pattern, found %s", c.Finalize.Interner.Display(t))
			// Bind the inner pattern to a poison type anyway, so a later
			// read of its Local doesn't panic on an unresolved annotation.
			c.bindPattern(pt.Inner, c.poison(), span)
			return
		}
		c.bindPattern(pt.Inner, tt.Pointee, span)

	case *hir.LiteralPattern, *hir.PathPattern:
		c.Diags.Errorf(diag.KindOther, span, "refutable pattern not allowed in a let binding")

	default:
		diag.Bug("check: unhandled hir.Pattern %T", p)
	}
}

package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkIf implements the if rule. expected flows into both arms
// of an if/else so a branch's own trailing expression sees the same
// expectation a direct value in its place would; an if without an else must
// always yield Unit regardless of what its surrounding context expects.
func (c *Checker) checkIf(d *hir.IfData, expected typeck.TypeId, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	c.checkExpr(&d.Cond, in.Primitive(typeck.Bool), fc)
	condDiverges := d.Cond.Info.Diverges

	if d.Else == nil {
		thenType, _ := c.checkBlock(d.Then, typeck.Invalid, fc)
		if thenType != in.Unit() {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "`if` without `else` must yield (), found %s", in.Display(thenType))
		}
		return in.Unit(), false, false, condDiverges
	}

	thenType, thenDiverges := c.checkBlock(d.Then, expected, fc)
	elseType := c.checkExpr(d.Else, expected, fc)
	elseDiverges := d.Else.Info.Diverges
	result := c.unifyBranches(thenType, elseType, span)
	return result, false, false, condDiverges || (thenDiverges && elseDiverges)
}

// checkLoop implements the loop rule: the loop's type is the
// common type of every reachable break; with none, it diverges unconditionally.
// expected is passed through to the first-seen break value so a `loop` used
// as a trailing/return expression lets its break values infer against the
// same context a direct value there would; the body's own trailing
// expression is never the loop's value, so it is checked with no expectation.
func (c *Checker) checkLoop(d *hir.LoopData, expected typeck.TypeId, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	ls := &loopScope{target: d, breakExpected: expected}
	fc.loops = append(fc.loops, ls)
	c.checkBlock(d.Body, typeck.Invalid, fc)
	fc.loops = fc.loops[:len(fc.loops)-1]

	if !ls.haveBreak {
		return c.Finalize.Interner.Never(), false, false, true
	}
	return ls.breakType, false, false, false
}

// checkWhile implements the while rule: always type Unit, never
// unconditionally diverging; a while's body value is discarded, so its block
// is checked with no expectation.
func (c *Checker) checkWhile(d *hir.WhileData, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	c.checkExpr(&d.Cond, in.Primitive(typeck.Bool), fc)

	ls := &loopScope{target: d, isWhile: true}
	fc.loops = append(fc.loops, ls)
	c.checkBlock(d.Body, typeck.Invalid, fc)
	fc.loops = fc.loops[:len(fc.loops)-1]

	return in.Unit(), false, false, false
}

// checkBreak implements the break rule. When there is no
// enclosing loop, Target is deliberately left unresolved rather than
// diagnosed here: the separate control-flow-linking sweep reports
// "break/continue outside loop" once for every construct, not just break. A
// value-carrying break targeting a while is rejected: while's type is always
// Unit, so it has nowhere to put a break value.
func (c *Checker) checkBreak(d *hir.BreakData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	ls := c.currentLoop(fc)

	switch {
	case ls == nil:
		if d.Value != nil {
			c.checkExpr(d.Value, typeck.Invalid, fc)
		}

	case d.Value != nil:
		if ls.isWhile {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "`break` with a value is not allowed inside `while`")
		}
		if !ls.haveBreak {
			ls.breakType = c.checkExpr(d.Value, ls.breakExpected, fc)
			ls.haveBreak = true
		} else {
			c.checkExpr(d.Value, ls.breakType, fc)
		}
		d.Target.Set(ls.target)

	default: // no value: an implicit Unit break
		if !ls.haveBreak {
			ls.breakType, ls.haveBreak = in.Unit(), true
		} else if ls.breakType != in.Unit() {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "expected a break value of type %s", in.Display(ls.breakType))
		}
		d.Target.Set(ls.target)
	}
	return in.Never(), false, false, true
}

// checkContinue implements the continue rule; see checkBreak's
// doc for why an unresolved Target here is not itself diagnosed.
func (c *Checker) checkContinue(d *hir.ContinueData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	if ls := c.currentLoop(fc); ls != nil {
		d.Target.Set(ls.target)
	}
	return c.Finalize.Interner.Never(), false, false, true
}

// checkReturn implements the return rule; an unresolved Target
// (no enclosing function) is left for the control-flow linking sweep to
// diagnose.
func (c *Checker) checkReturn(d *hir.ReturnData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	if d.Value != nil {
		c.checkExpr(d.Value, fc.ret, fc)
	} else if fc.ret != typeck.Invalid && fc.ret != in.Unit() {
		c.Diags.Errorf(diag.KindTypeMismatch, span, "expected return type %s, found ()", in.Display(fc.ret))
	}
	if fc.fn != nil {
		d.Target.Set(fc.fn)
	}
	return in.Never(), false, false, true
}

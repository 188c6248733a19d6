package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkUnaryOp implements the unary rules.
func (c *Checker) checkUnaryOp(d *hir.UnaryOpData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	switch d.Op {
	case ast.OpRef, ast.OpRefMut:
		// No expectation flows into the operand: Ref/RefMut simply wrap
		// whatever the place's own type already is.
		t := c.checkExpr(&d.Operand, typeck.Invalid, fc)
		diverges := d.Operand.Info.Diverges
		if !d.Operand.Info.IsPlace {
			c.Diags.Errorf(diag.KindNotAPlace, span, "cannot take a reference to a value that is not a place")
			return c.poison(), false, false, diverges
		}
		if d.Op == ast.OpRefMut && !d.Operand.Info.IsMutablePlace {
			c.Diags.Errorf(diag.KindImmutableAssign, span, "cannot take a mutable reference to an immutable place")
			return c.poison(), false, false, diverges
		}
		return in.Reference(t, d.Op == ast.OpRefMut), false, false, diverges

	case ast.OpDeref:
		t := c.checkExpr(&d.Operand, typeck.Invalid, fc)
		diverges := d.Operand.Info.Diverges
		tt := in.Lookup(t)
		if tt.Kind != typeck.KReference {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "cannot dereference non-reference type %s", in.Display(t))
			return c.poison(), true, false, diverges
		}
		return tt.Pointee, true, tt.Mutable, diverges

	case ast.OpNot:
		t := c.checkExpr(&d.Operand, typeck.Invalid, fc)
		diverges := d.Operand.Info.Diverges
		tt := in.Lookup(t)
		if tt.Kind == typeck.KPrimitive && (tt.Prim == typeck.Bool || tt.Prim.IsInteger()) {
			return t, false, false, diverges
		}
		c.Diags.Errorf(diag.KindTypeMismatch, span, "`!` requires a bool or integer operand, found %s", in.Display(t))
		return c.poison(), false, false, diverges

	case ast.OpNeg:
		t := c.checkExpr(&d.Operand, typeck.Invalid, fc)
		diverges := d.Operand.Info.Diverges
		tt := in.Lookup(t)
		if tt.Kind == typeck.KPrimitive && tt.Prim.IsInteger() && tt.Prim.IsSigned() {
			return t, false, false, diverges
		}
		c.Diags.Errorf(diag.KindTypeMismatch, span, "`-` requires a signed integer operand, found %s", in.Display(t))
		return c.poison(), false, false, diverges

	default:
		diag.Bug("check: unhandled ast.UnaryOp %v", d.Op)
		return c.poison(), false, false, false
	}
}

// checkBinaryOp implements the binary rules.
func (c *Checker) checkBinaryOp(d *hir.BinaryOpData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner

	if d.Op == ast.OpAnd || d.Op == ast.OpOr {
		boolT := in.Primitive(typeck.Bool)
		c.checkExpr(&d.Left, boolT, fc)
		c.checkExpr(&d.Right, boolT, fc)
		// The right operand is never evaluated when the left short-circuits,
		// so only the left's divergence always happens.
		return boolT, false, false, d.Left.Info.Diverges
	}

	// Passing lt as Right's expected type means checkExpr/reconcile already
	// enforces the two operands match (or reports the mismatch itself);
	// only each operator's own operand-kind rule needs checking here.
	lt := c.checkExpr(&d.Left, typeck.Invalid, fc)
	c.checkExpr(&d.Right, lt, fc)
	diverges := d.Left.Info.Diverges || d.Right.Info.Diverges
	ltt := in.Lookup(lt)

	switch d.Op {
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if !isComparable(in, lt) {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "type %s does not support comparison", in.Display(lt))
			return c.poison(), false, false, diverges
		}
		return in.Primitive(typeck.Bool), false, false, diverges

	case ast.OpShl, ast.OpShr:
		if ltt.Kind != typeck.KPrimitive || !ltt.Prim.IsInteger() {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "shift requires integer operands, found %s", in.Display(lt))
			return c.poison(), false, false, diverges
		}
		return lt, false, false, diverges

	default: // arithmetic and bitwise
		if ltt.Kind != typeck.KPrimitive || !ltt.Prim.IsInteger() {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "operator requires numeric operands, found %s", in.Display(lt))
			return c.poison(), false, false, diverges
		}
		return lt, false, false, diverges
	}
}

// checkAssignment implements .
func (c *Checker) checkAssignment(d *hir.AssignmentData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	lt := c.checkExpr(&d.Left, typeck.Invalid, fc)
	diverges := d.Left.Info.Diverges
	if !d.Left.Info.IsPlace {
		c.Diags.Errorf(diag.KindNotAPlace, span, "left-hand side of an assignment must be a place")
	} else if !d.Left.Info.IsMutablePlace {
		c.Diags.Errorf(diag.KindImmutableAssign, span, "cannot assign to an immutable place")
	}

	if d.CompoundOp == nil {
		c.checkExpr(&d.Right, lt, fc)
	} else {
		// The LHS was already checked once above and must not be checked
		// again (checkExpr is not idempotent on a Local-read's usage
		// bookkeeping); only the implied operator's RHS-side rule and the
		// RHS expression itself need checking here.
		ltt := in.Lookup(lt)
		switch *d.CompoundOp {
		case ast.OpShl, ast.OpShr:
			c.checkExpr(&d.Right, typeck.Invalid, fc)
		default:
			c.checkExpr(&d.Right, lt, fc)
		}
		if ltt.Kind != typeck.KPrimitive || !ltt.Prim.IsInteger() {
			c.Diags.Errorf(diag.KindTypeMismatch, span, "compound assignment operator requires numeric operands, found %s", in.Display(lt))
		}
	}
	diverges = diverges || d.Right.Info.Diverges
	return in.Unit(), false, false, diverges
}

// checkCast implements .
func (c *Checker) checkCast(d *hir.CastData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	srcType := c.checkExpr(&d.Expr, typeck.Invalid, fc)
	diverges := d.Expr.Info.Diverges
	targetType := d.TargetType.MustResolved()
	srcT, tgtT := in.Lookup(srcType), in.Lookup(targetType)
	if srcT.Kind != typeck.KPrimitive || !isCastable(srcT.Prim) || tgtT.Kind != typeck.KPrimitive || !isCastable(tgtT.Prim) {
		c.Diags.Errorf(diag.KindInvalidCast, span, "cannot cast %s as %s", in.Display(srcType), in.Display(targetType))
		return c.poison(), false, false, diverges
	}
	return targetType, false, false, diverges
}

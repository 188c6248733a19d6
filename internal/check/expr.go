package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkExpr is the heart of the pass: compute e's type (and place-ness,
// divergence) given an optional expected type, write e.Info, and return the
// final type. expected == typeck.Invalid means no expectation.
func (c *Checker) checkExpr(e *hir.Expr, expected typeck.TypeId, fc *funcCtx) typeck.TypeId {
	typ, place, mutable, diverges := c.computeExpr(e, expected, fc)
	final := typ
	if expected != typeck.Invalid {
		final = c.reconcile(typ, diverges, expected, e.Span)
	}
	e.Info = &hir.ExprInfo{Type: final, IsPlace: place, IsMutablePlace: mutable, Diverges: diverges}
	return final
}

// poison is the filler type used after a reported error, so a TypeId of 0
// (typeck.Invalid) never reaches Interner.Lookup from a downstream pass.
func (c *Checker) poison() typeck.TypeId { return c.Finalize.Interner.Unit() }

func (c *Checker) computeExpr(e *hir.Expr, expected typeck.TypeId, fc *funcCtx) (typ typeck.TypeId, place, mutable, diverges bool) {
	in := c.Finalize.Interner
	switch d := e.Data.(type) {
	case *hir.UnresolvedIdentData:
		// Name resolution already reported this; treat it as the error-marker
		// substitute ("the pass continues with a best-effort
		// substitute... never propagates to successful output") rather than
		// reporting a second time.
		return c.poison(), false, false, false

	case *hir.IntLiteralData:
		return c.checkIntLiteral(d, expected, e), false, false, false

	case *hir.BoolLiteralData:
		return in.Primitive(typeck.Bool), false, false, false

	case *hir.CharLiteralData:
		return in.Primitive(typeck.Char), false, false, false

	case *hir.StringLiteralData:
		return in.Primitive(typeck.Str), false, false, false

	case *hir.UnderscoreData:
		t := expected
		if t == typeck.Invalid {
			t = in.Unit()
		}
		return t, true, true, false

	case *hir.VariableData:
		if fc.used != nil {
			fc.used[d.Local] = true
		}
		t := d.Local.Annotation.MustResolved()
		return t, true, d.Local.IsMutable, false

	case *hir.ConstUseData:
		return d.Const.Annotation.MustResolved(), false, false, false

	case *hir.StructConstData:
		return in.Struct(d.Struct.ID, d.Struct), false, false, false

	case *hir.EnumVariantData:
		return in.Enum(d.Enum.ID, d.Enum), false, false, false

	case *hir.FuncUseData:
		c.Diags.Errorf(diag.KindNotCallable, e.Span, "function %q cannot be used as a value; it must be called", d.Func.Name)
		return c.poison(), false, false, false

	case *hir.TypeStaticData:
		c.Diags.Errorf(diag.KindNotCallable, e.Span, "method reference %q must be called", d.Method.Name)
		return c.poison(), false, false, false

	case *hir.FieldAccessData:
		return c.checkFieldAccess(d, e.Span, fc)

	case *hir.IndexData:
		return c.checkIndex(d, e.Span, fc)

	case *hir.StructLiteralData:
		return c.checkStructLiteral(d, e.Span, fc)

	case *hir.ArrayLiteralData:
		return c.checkArrayLiteral(d, expected, e.Span, fc)

	case *hir.ArrayRepeatData:
		return c.checkArrayRepeat(d, e.Span, fc)

	case *hir.UnaryOpData:
		return c.checkUnaryOp(d, e.Span, fc)

	case *hir.BinaryOpData:
		return c.checkBinaryOp(d, e.Span, fc)

	case *hir.AssignmentData:
		return c.checkAssignment(d, e.Span, fc)

	case *hir.CastData:
		return c.checkCast(d, e.Span, fc)

	case *hir.CallData:
		return c.checkCall(d, e.Span, fc)

	case *hir.MethodCallData:
		return c.checkMethodCall(d, e.Span, fc)

	case *hir.IfData:
		return c.checkIf(d, expected, e.Span, fc)

	case *hir.LoopData:
		return c.checkLoop(d, expected, fc)

	case *hir.WhileData:
		return c.checkWhile(d, fc)

	case *hir.BreakData:
		return c.checkBreak(d, e.Span, fc)

	case *hir.ContinueData:
		return c.checkContinue(d, e.Span, fc)

	case *hir.ReturnData:
		return c.checkReturn(d, e.Span, fc)

	case *hir.Block:
		t, div := c.checkBlock(d, expected, fc)
		return t, false, false, div

	default:
		diag.Bug("check: unhandled hir.ExprData %T", e.Data)
		return c.poison(), false, false, false
	}
}

// checkIntLiteral implements the integer-literal defaulting,
// collapsed into one call (see check.go's package doc): a suffix picks a
// concrete type outright; otherwise a concrete integer `expected` narrows
// the literal to it; otherwise it defaults to i32 (signed literals) or u32
// (everything else).
func (c *Checker) checkIntLiteral(d *hir.IntLiteralData, expected typeck.TypeId, e *hir.Expr) typeck.TypeId {
	in := c.Finalize.Interner
	if d.Suffix != "" {
		var pk typeck.PrimitiveKind
		switch d.Suffix {
		case "i32":
			pk = typeck.I32
		case "u32":
			pk = typeck.U32
		case "isize":
			pk = typeck.ISize
		case "usize":
			pk = typeck.USize
		default:
			c.Diags.Errorf(diag.KindOther, e.Span, "invalid integer suffix %q", d.Suffix)
			return in.Primitive(typeck.I32)
		}
		if d.IsNegative && !pk.IsSigned() {
			c.Diags.Errorf(diag.KindTypeMismatch, e.Span, "negative literal cannot have unsigned suffix %q", d.Suffix)
		}
		return in.Primitive(pk)
	}
	if expected != typeck.Invalid {
		t := in.Lookup(expected)
		if t.Kind == typeck.KPrimitive && t.Prim.IsInteger() {
			if d.IsNegative && !t.Prim.IsSigned() {
				c.Diags.Errorf(diag.KindTypeMismatch, e.Span, "negative literal cannot be used as %s", t.Prim)
			}
			return expected
		}
	}
	if d.IsNegative {
		return in.Primitive(typeck.I32)
	}
	return in.Primitive(typeck.U32)
}

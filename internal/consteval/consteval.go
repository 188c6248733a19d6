// Package consteval is the constant evaluator: a pure
// recursive evaluator over already-lowered HIR expressions, reading
// already-resolved ConstDefs and producing hir.ConstValue. It walks
// expressions by direct recursion rather than a visitor/Accept indirection,
// matching the style the rest of this module's passes use.
package consteval

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// wrapMod is the wraparound modulus fixed for constant
// arithmetic, chosen so evaluation is deterministic regardless of host
// integer width.
const wrapMod = 1 << 32

// Evaluator evaluates constant expressions, memoizing per-expression-pointer
// since constants are referentially transparent.
type Evaluator struct {
	diags *diag.Collector
	cache map[*hir.Expr]hir.ConstValue

	// resolveConstDef triggers resolve_constant on a referenced ConstDef,
	// injected by the pipeline to avoid importing the pass that owns
	// ConstDef.ValueState's write side (kept here as a plain func value
	// rather than an interface since there is exactly one call site).
	resolveConstDef func(*hir.ConstDef) (hir.ConstValue, bool)
}

// NewEvaluator returns an Evaluator. resolveConstDef must trigger (and
// memoize) resolution of def, returning false if resolution failed and a
// diagnostic was already reported for it.
func NewEvaluator(diags *diag.Collector, resolveConstDef func(*hir.ConstDef) (hir.ConstValue, bool)) *Evaluator {
	return &Evaluator{diags: diags, cache: make(map[*hir.Expr]hir.ConstValue), resolveConstDef: resolveConstDef}
}

// Eval evaluates expr as a constant, with expected the resolved type
// context the caller wants (for integer-literal signedness defaulting;
// Invalid if there is none). It reports a diag.KindOther diagnostic and
// returns ok=false for anything not const-evaluable.
func (e *Evaluator) Eval(expr *hir.Expr, expected typeck.TypeId, interner *typeck.Interner) (hir.ConstValue, bool) {
	if v, ok := e.cache[expr]; ok {
		return v, true
	}
	v, ok := e.evalUncached(expr, expected, interner)
	if ok {
		e.cache[expr] = v
	}
	return v, ok
}

// EvalArrayLength evaluates expr (an array type's length bound) as a
// non-negative integer constant, called back into from internal/finalize
// while resolving an hir.ArrayTypeNode.
func (e *Evaluator) EvalArrayLength(expr *hir.Expr, interner *typeck.Interner) (uint64, *diag.Diagnostic) {
	v, ok := e.Eval(expr, interner.Primitive(typeck.USize), interner)
	if !ok {
		return 0, &diag.Diagnostic{Severity: diag.Error, Kind: diag.KindOther, Message: "array length is not a constant expression", Span: expr.Span}
	}
	switch v.Kind {
	case hir.ConstIntUnsigned:
		return v.Unsig, nil
	case hir.ConstIntSigned:
		if v.Signed < 0 {
			return 0, &diag.Diagnostic{Severity: diag.Error, Kind: diag.KindOther, Message: "array length must not be negative", Span: expr.Span}
		}
		return uint64(v.Signed), nil
	default:
		return 0, &diag.Diagnostic{Severity: diag.Error, Kind: diag.KindOther, Message: "array length must be an integer constant", Span: expr.Span}
	}
}

func (e *Evaluator) evalUncached(expr *hir.Expr, expected typeck.TypeId, interner *typeck.Interner) (hir.ConstValue, bool) {
	switch d := expr.Data.(type) {
	case *hir.IntLiteralData:
		return e.evalIntLiteral(d, expected, interner, expr)

	case *hir.BoolLiteralData:
		return hir.ConstValue{Kind: hir.ConstBool, Bool: d.Value}, true

	case *hir.CharLiteralData:
		return hir.ConstValue{Kind: hir.ConstChar, Char: d.Value}, true

	case *hir.StringLiteralData:
		return hir.ConstValue{Kind: hir.ConstString, Str: d.Value}, true

	case *hir.ConstUseData:
		return e.resolveConstDef(d.Const)

	case *hir.UnaryOpData:
		return e.evalUnary(d, expected, interner)

	case *hir.BinaryOpData:
		return e.evalBinary(d, expected, interner)

	default:
		e.diags.Errorf(diag.KindOther, expr.Span, "expression is not const-evaluable")
		return hir.ConstValue{}, false
	}
}

func (e *Evaluator) evalIntLiteral(d *hir.IntLiteralData, expected typeck.TypeId, interner *typeck.Interner, expr *hir.Expr) (hir.ConstValue, bool) {
	signed := true
	switch d.Suffix {
	case "i32", "isize":
		signed = true
	case "u32", "usize":
		signed = false
	case "":
		if expected != typeck.Invalid {
			t := interner.Lookup(expected)
			if t.Kind == typeck.KPrimitive && t.Prim.IsInteger() {
				signed = t.Prim.IsSigned()
			}
		}
	default:
		e.diags.Errorf(diag.KindOther, expr.Span, "invalid integer suffix %q", d.Suffix)
		return hir.ConstValue{}, false
	}
	var mag uint64
	for _, c := range d.Text {
		if c < '0' || c > '9' {
			e.diags.Errorf(diag.KindOther, expr.Span, "malformed integer literal %q", d.Text)
			return hir.ConstValue{}, false
		}
		mag = (mag*10 + uint64(c-'0')) % wrapMod
	}
	if signed {
		v := int64(mag)
		if d.IsNegative {
			v = -v
		}
		return hir.ConstValue{Kind: hir.ConstIntSigned, Signed: v}, true
	}
	if d.IsNegative {
		e.diags.Errorf(diag.KindOther, expr.Span, "unsigned integer literal cannot be negative")
		return hir.ConstValue{}, false
	}
	return hir.ConstValue{Kind: hir.ConstIntUnsigned, Unsig: mag}, true
}

func (e *Evaluator) evalUnary(d *hir.UnaryOpData, expected typeck.TypeId, interner *typeck.Interner) (hir.ConstValue, bool) {
	operand, ok := e.Eval(&d.Operand, expected, interner)
	if !ok {
		return hir.ConstValue{}, false
	}
	switch d.Op {
	case ast.OpNot:
		if operand.Kind == hir.ConstBool {
			return hir.ConstValue{Kind: hir.ConstBool, Bool: !operand.Bool}, true
		}
		if operand.Kind == hir.ConstIntSigned {
			return hir.ConstValue{Kind: hir.ConstIntSigned, Signed: ^operand.Signed}, true
		}
		if operand.Kind == hir.ConstIntUnsigned {
			return hir.ConstValue{Kind: hir.ConstIntUnsigned, Unsig: (^operand.Unsig) % wrapMod}, true
		}
		e.diags.Errorf(diag.KindOther, d.Operand.Span, "`!` requires a bool or integer operand")
		return hir.ConstValue{}, false
	case ast.OpNeg:
		if operand.Kind != hir.ConstIntSigned {
			e.diags.Errorf(diag.KindOther, d.Operand.Span, "negating an unsigned constant is an error")
			return hir.ConstValue{}, false
		}
		return hir.ConstValue{Kind: hir.ConstIntSigned, Signed: wrapSigned(-operand.Signed)}, true
	default:
		e.diags.Errorf(diag.KindOther, d.Operand.Span, "operator is not const-evaluable")
		return hir.ConstValue{}, false
	}
}

func (e *Evaluator) evalBinary(d *hir.BinaryOpData, expected typeck.TypeId, interner *typeck.Interner) (hir.ConstValue, bool) {
	// Logical operators short-circuit and both operands are bool, never
	// subject to integer defaulting.
	if d.Op == ast.OpAnd || d.Op == ast.OpOr {
		lhs, ok := e.Eval(&d.Left, typeck.Invalid, interner)
		if !ok || lhs.Kind != hir.ConstBool {
			e.diags.Errorf(diag.KindOther, d.Left.Span, "operand of `&&`/`||` must be a bool constant")
			return hir.ConstValue{}, false
		}
		if d.Op == ast.OpAnd && !lhs.Bool {
			return hir.ConstValue{Kind: hir.ConstBool, Bool: false}, true
		}
		if d.Op == ast.OpOr && lhs.Bool {
			return hir.ConstValue{Kind: hir.ConstBool, Bool: true}, true
		}
		rhs, ok := e.Eval(&d.Right, typeck.Invalid, interner)
		if !ok || rhs.Kind != hir.ConstBool {
			e.diags.Errorf(diag.KindOther, d.Right.Span, "operand of `&&`/`||` must be a bool constant")
			return hir.ConstValue{}, false
		}
		return hir.ConstValue{Kind: hir.ConstBool, Bool: rhs.Bool}, true
	}

	lhs, ok := e.Eval(&d.Left, expected, interner)
	if !ok {
		return hir.ConstValue{}, false
	}
	rhs, ok := e.Eval(&d.Right, expected, interner)
	if !ok {
		return hir.ConstValue{}, false
	}
	if lhs.Kind != rhs.Kind || (lhs.Kind != hir.ConstIntSigned && lhs.Kind != hir.ConstIntUnsigned) {
		switch d.Op {
		case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
			return e.evalCompareNonInt(d.Op, lhs, rhs, d)
		}
		e.diags.Errorf(diag.KindOther, d.Left.Span, "mixed or non-integer operands in constant arithmetic")
		return hir.ConstValue{}, false
	}
	signed := lhs.Kind == hir.ConstIntSigned
	switch d.Op {
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return e.evalCompareInt(d.Op, lhs, rhs, signed), true
	}
	if signed {
		return e.evalArithSigned(d.Op, lhs.Signed, rhs.Signed, d)
	}
	return e.evalArithUnsigned(d.Op, lhs.Unsig, rhs.Unsig, d)
}

func (e *Evaluator) evalCompareNonInt(op ast.BinaryOp, lhs, rhs hir.ConstValue, d *hir.BinaryOpData) (hir.ConstValue, bool) {
	if lhs.Kind != rhs.Kind {
		e.diags.Errorf(diag.KindOther, d.Left.Span, "comparison operands have different constant kinds")
		return hir.ConstValue{}, false
	}
	var eq bool
	switch lhs.Kind {
	case hir.ConstBool:
		eq = lhs.Bool == rhs.Bool
	case hir.ConstChar:
		eq = lhs.Char == rhs.Char
	case hir.ConstString:
		eq = lhs.Str == rhs.Str
	default:
		e.diags.Errorf(diag.KindOther, d.Left.Span, "operand does not support ordering in a constant expression")
		return hir.ConstValue{}, false
	}
	switch op {
	case ast.OpEq:
		return hir.ConstValue{Kind: hir.ConstBool, Bool: eq}, true
	case ast.OpNe:
		return hir.ConstValue{Kind: hir.ConstBool, Bool: !eq}, true
	default:
		e.diags.Errorf(diag.KindOther, d.Left.Span, "only `==`/`!=` are const-evaluable for this operand kind")
		return hir.ConstValue{}, false
	}
}

func (e *Evaluator) evalCompareInt(op ast.BinaryOp, lhs, rhs hir.ConstValue, signed bool) hir.ConstValue {
	var cmp int
	if signed {
		switch {
		case lhs.Signed < rhs.Signed:
			cmp = -1
		case lhs.Signed > rhs.Signed:
			cmp = 1
		}
	} else {
		switch {
		case lhs.Unsig < rhs.Unsig:
			cmp = -1
		case lhs.Unsig > rhs.Unsig:
			cmp = 1
		}
	}
	var result bool
	switch op {
	case ast.OpEq:
		result = cmp == 0
	case ast.OpNe:
		result = cmp != 0
	case ast.OpLt:
		result = cmp < 0
	case ast.OpLe:
		result = cmp <= 0
	case ast.OpGt:
		result = cmp > 0
	case ast.OpGe:
		result = cmp >= 0
	}
	return hir.ConstValue{Kind: hir.ConstBool, Bool: result}
}

func (e *Evaluator) evalArithSigned(op ast.BinaryOp, l, r int64, d *hir.BinaryOpData) (hir.ConstValue, bool) {
	var v int64
	switch op {
	case ast.OpAdd:
		v = l + r
	case ast.OpSub:
		v = l - r
	case ast.OpMul:
		v = l * r
	case ast.OpDiv:
		if r == 0 {
			e.diags.Errorf(diag.KindOther, d.Right.Span, "division by zero in constant expression")
			return hir.ConstValue{}, false
		}
		v = l / r
	case ast.OpRem:
		if r == 0 {
			e.diags.Errorf(diag.KindOther, d.Right.Span, "modulus by zero in constant expression")
			return hir.ConstValue{}, false
		}
		v = l % r
	case ast.OpBitAnd:
		v = l & r
	case ast.OpBitOr:
		v = l | r
	case ast.OpBitXor:
		v = l ^ r
	case ast.OpShl:
		v = l << uint64(r)
	case ast.OpShr:
		v = l >> uint64(r)
	default:
		e.diags.Errorf(diag.KindOther, d.Left.Span, "operator is not const-evaluable")
		return hir.ConstValue{}, false
	}
	v = wrapSigned(v)
	return hir.ConstValue{Kind: hir.ConstIntSigned, Signed: v}, true
}

func (e *Evaluator) evalArithUnsigned(op ast.BinaryOp, l, r uint64, d *hir.BinaryOpData) (hir.ConstValue, bool) {
	var v uint64
	switch op {
	case ast.OpAdd:
		v = l + r
	case ast.OpSub:
		v = l - r
	case ast.OpMul:
		v = l * r
	case ast.OpDiv:
		if r == 0 {
			e.diags.Errorf(diag.KindOther, d.Right.Span, "division by zero in constant expression")
			return hir.ConstValue{}, false
		}
		v = l / r
	case ast.OpRem:
		if r == 0 {
			e.diags.Errorf(diag.KindOther, d.Right.Span, "modulus by zero in constant expression")
			return hir.ConstValue{}, false
		}
		v = l % r
	case ast.OpBitAnd:
		v = l & r
	case ast.OpBitOr:
		v = l | r
	case ast.OpBitXor:
		v = l ^ r
	case ast.OpShl:
		v = l << r
	case ast.OpShr:
		v = l >> r
	default:
		e.diags.Errorf(diag.KindOther, d.Left.Span, "operator is not const-evaluable")
		return hir.ConstValue{}, false
	}
	return hir.ConstValue{Kind: hir.ConstIntUnsigned, Unsig: v % wrapMod}, true
}

func wrapSigned(v int64) int64 {
	const half = wrapMod / 2
	m := v % wrapMod
	if m < 0 {
		m += wrapMod
	}
	if m >= half {
		m -= wrapMod
	}
	return m
}

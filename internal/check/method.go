package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkCall implements the call rule. A Callee is only ever a
// FuncUse or a TypeStatic (the UFCS `Type::method(...)` form) — both were
// rejected as ordinary values by computeExpr's own cases, so this is the one
// place those two ExprData kinds are legal and are handled directly rather
// than through checkExpr.
func (c *Checker) checkCall(d *hir.CallData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	switch callee := d.Callee.Data.(type) {
	case *hir.FuncUseData:
		d.Callee.Info = &hir.ExprInfo{Type: c.poison()}
		return c.checkArgsAgainst(callee.Func.ParamTypes, callee.Func.ReturnType.MustResolved(), d.Args, span, fc)

	case *hir.TypeStaticData:
		d.Callee.Info = &hir.ExprInfo{Type: c.poison()}
		return c.checkUFCSCall(callee.Method, d.Args, span, fc)

	default:
		c.checkExpr(&d.Callee, typeck.Invalid, fc)
		c.Diags.Errorf(diag.KindNotCallable, span, "expression is not callable")
		for i := range d.Args {
			c.checkExpr(&d.Args[i], typeck.Invalid, fc)
		}
		return c.poison(), false, false, d.Callee.Info.Diverges
	}
}

// checkArgsAgainst checks args against a fixed parameter-type list, reporting
// an arity mismatch rather than checking any argument if the counts differ.
func (c *Checker) checkArgsAgainst(paramTypes []hir.TypeAnnotation, retType typeck.TypeId, args []hir.Expr, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	if len(args) != len(paramTypes) {
		c.Diags.Errorf(diag.KindArityMismatch, span, "expected %d argument(s), found %d", len(paramTypes), len(args))
		for i := range args {
			c.checkExpr(&args[i], typeck.Invalid, fc)
		}
		return retType, false, false, false
	}
	diverges := false
	for i := range args {
		c.checkExpr(&args[i], paramTypes[i].MustResolved(), fc)
		diverges = diverges || args[i].Info.Diverges
	}
	return retType, false, false, diverges
}

// checkUFCSCall checks a bare `Type::method(self_arg, rest...)` call: the
// first argument is the explicit self, checked against the method's self
// type the same way an ordinary parameter would be.
func (c *Checker) checkUFCSCall(m *hir.Method, args []hir.Expr, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	selfType := c.methodSelfType(m)
	paramTypes := make([]hir.TypeAnnotation, 0, len(m.ParamTypes)+1)
	var selfAnn hir.TypeAnnotation
	selfAnn.Set(selfType)
	paramTypes = append(paramTypes, selfAnn)
	paramTypes = append(paramTypes, m.ParamTypes...)
	return c.checkArgsAgainst(paramTypes, m.ReturnType.MustResolved(), args, span, fc)
}

// methodSelfType computes the concrete type a method's self parameter names:
// the owning Impl's ForType, by value or wrapped in a reference per
// Self.{IsReference,IsMutable}. UFCS call syntax is only ever resolved
// against a concrete Impl (never a bare Trait default), so the assertion
// below always holds (resolve.resolveTwoSegmentValue only ever looks methods
// up through the Impl Table).
func (c *Checker) methodSelfType(m *hir.Method) typeck.TypeId {
	impl := m.Owner.(*hir.Impl)
	base := impl.ForType.MustResolved()
	if !m.Self.IsReference {
		return base
	}
	return c.Finalize.Interner.Reference(base, m.Self.IsMutable)
}

// checkMethodCall implements the method-call rule.
func (c *Checker) checkMethodCall(d *hir.MethodCallData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	recvType := c.checkExpr(&d.Receiver, typeck.Invalid, fc)
	place, mutable, diverges := d.Receiver.Info.IsPlace, d.Receiver.Info.IsMutablePlace, d.Receiver.Info.Diverges

	method, adj, ok := c.resolveMethod(recvType, place, mutable, d.MethodName)
	if !ok {
		c.Diags.Errorf(diag.KindNoSuchMethod, span, "no method named %q found for type %s", d.MethodName, in.Display(recvType))
		for i := range d.Args {
			c.checkExpr(&d.Args[i], typeck.Invalid, fc)
		}
		return c.poison(), false, false, diverges
	}
	d.Resolved.Set(method, adj)

	retType, _, _, argsDiverge := c.checkArgsAgainst(method.ParamTypes, method.ReturnType.MustResolved(), d.Args, span, fc)
	return retType, false, false, diverges || argsDiverge
}

// resolveMethod implements the autoderef candidate search:
// increasing deref depth off the receiver's own type, preferring the
// shortest chain; at each depth a by-value-self method wins over a
// by-ref-self one, since a by-value match needs no further adjustment.
// Impls are indexed by bare (non-reference) TypeId, so autoref needs no
// separate candidate step — an impl's `&self`/`&mut self` methods already
// live on that same entry. Taking `&self` never requires a place: autoref can
// borrow a temporary just as well as an addressable one; `&mut self` does,
// since there is no such thing as a mutable reference to a temporary.
func (c *Checker) resolveMethod(recvType typeck.TypeId, place, mutable bool, name string) (*hir.Method, hir.Adjustment, bool) {
	in := c.Finalize.Interner
	candidate := recvType
	curPlace, curMutable := place, mutable

	for depth := 0; ; depth++ {
		for _, impl := range c.Impls.Lookup(candidate) {
			for _, m := range impl.Methods {
				if m.Name == name && !m.Self.IsReference {
					return m, hir.Adjustment{Derefs: depth}, true
				}
			}
		}
		for _, impl := range c.Impls.Lookup(candidate) {
			for _, m := range impl.Methods {
				if m.Name != name || !m.Self.IsReference {
					continue
				}
				if m.Self.IsMutable {
					if curPlace && curMutable {
						return m, hir.Adjustment{Derefs: depth, TakeRef: true, RefMutable: true}, true
					}
				} else {
					// &self only needs a shared reference, which autoref can
					// take of a temporary just as well as a place.
					return m, hir.Adjustment{Derefs: depth, TakeRef: true, RefMutable: false}, true
				}
			}
		}

		tt := in.Lookup(candidate)
		if tt.Kind != typeck.KReference {
			return nil, hir.Adjustment{}, false
		}
		if depth == 0 {
			curMutable = tt.Mutable
		} else {
			curMutable = curMutable && tt.Mutable
		}
		curPlace = true
		candidate = tt.Pointee
	}
}

// Package traits implements trait-implementation validation:
// a three-phase sweep over an already-resolved Program that checks every
// Impl naming a trait actually provides every item the trait requires, with
// a matching kind and signature. It is a single, demand-free sequential
// sweep in the same style as internal/cflow — this pass assumes type
// finalization has already run, so every signature it compares is a
// resolved typeck.TypeId, never a TypeAnnotation still in its Unresolved
// shape.
package traits

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
)

// Checker validates trait impls against their trait's required items.
type Checker struct {
	Diags *diag.Collector
}

func New(diags *diag.Collector) *Checker {
	return &Checker{Diags: diags}
}

// itemKind distinguishes the three kinds of trait/impl item.
type itemKind uint8

const (
	kindFunc itemKind = iota
	kindMethod
	kindConst
)

func (k itemKind) String() string {
	switch k {
	case kindFunc:
		return "function"
	case kindMethod:
		return "method"
	case kindConst:
		return "const"
	default:
		return "item"
	}
}

// requiredItem is one trait-declared item with its expected signature
// (phase 1: trait definition extraction).
type requiredItem struct {
	kind   itemKind
	fn     *hir.Function
	method *hir.Method
	cst    *hir.ConstDef
}

func (r requiredItem) name() string {
	switch r.kind {
	case kindFunc:
		return r.fn.Name
	case kindMethod:
		return r.method.Name
	default:
		return r.cst.Name
	}
}

// Run validates every Impl in prog whose Trait slot resolved to a concrete
// Trait, against that Trait's required items.
func (c *Checker) Run(prog *hir.Program) {
	for _, tr := range prog.Traits {
		items := extractRequiredItems(tr)
		for _, impl := range prog.Impls {
			if !impl.Trait.Resolved || impl.Trait.Trait != tr {
				continue
			}
			c.validateImpl(impl, items)
		}
	}
}

// extractRequiredItems implements phase 1: for every Trait, build a
// name → required-item map.
func extractRequiredItems(tr *hir.Trait) map[string]requiredItem {
	items := make(map[string]requiredItem, len(tr.Functions)+len(tr.Methods)+len(tr.Consts))
	for _, f := range tr.Functions {
		items[f.Name] = requiredItem{kind: kindFunc, fn: f}
	}
	for _, m := range tr.Methods {
		items[m.Name] = requiredItem{kind: kindMethod, method: m}
	}
	for _, cd := range tr.Consts {
		items[cd.Name] = requiredItem{kind: kindConst, cst: cd}
	}
	return items
}

// implItems mirrors extractRequiredItems over one Impl's own item lists, so
// the impl side of a by-name lookup is just a map index too.
func implItems(impl *hir.Impl) map[string]requiredItem {
	items := make(map[string]requiredItem, len(impl.Functions)+len(impl.Methods)+len(impl.Consts))
	for _, f := range impl.Functions {
		items[f.Name] = requiredItem{kind: kindFunc, fn: f}
	}
	for _, m := range impl.Methods {
		items[m.Name] = requiredItem{kind: kindMethod, method: m}
	}
	for _, cd := range impl.Consts {
		items[cd.Name] = requiredItem{kind: kindConst, cst: cd}
	}
	return items
}

// validateImpl implements phase 3 for one (impl, trait) pair: for each
// required item, find a same-named item in the impl, check its kind, then
// its signature.
func (c *Checker) validateImpl(impl *hir.Impl, required map[string]requiredItem) {
	provided := implItems(impl)
	for name, want := range required {
		got, ok := provided[name]
		if !ok {
			c.Diags.Report(&diag.Diagnostic{
				Severity: diag.Error,
				Kind:     diag.KindMissingTraitItem,
				Message:  "impl is missing trait item " + quote(name),
				Span:     impl.Span,
				SecondarySpans: []diag.SecondarySpan{
					{Span: spanOf(want), Label: "required by this trait item"},
				},
			})
			continue
		}
		if got.kind != want.kind {
			c.reportMismatch(impl, want, got, "expected a "+want.kind.String()+", found a "+got.kind.String())
			continue
		}
		switch want.kind {
		case kindFunc:
			c.checkFuncSignature(want.fn, got.fn)
		case kindMethod:
			c.checkMethodSignature(want.method, got.method)
		case kindConst:
			c.checkConstSignature(want.cst, got.cst)
		}
	}
}

func (c *Checker) checkFuncSignature(want, got *hir.Function) {
	if len(want.ParamTypes) != len(got.ParamTypes) {
		c.reportMismatch(requiredItem{kind: kindFunc, fn: want}, requiredItem{kind: kindFunc, fn: got},
			"parameter count does not match the trait's declaration")
		return
	}
	for i := range want.ParamTypes {
		if want.ParamTypes[i].MustResolved() != got.ParamTypes[i].MustResolved() {
			c.reportMismatch(requiredItem{kind: kindFunc, fn: want}, requiredItem{kind: kindFunc, fn: got},
				"parameter type does not match the trait's declaration")
			return
		}
	}
	if want.ReturnType.MustResolved() != got.ReturnType.MustResolved() {
		c.reportMismatch(requiredItem{kind: kindFunc, fn: want}, requiredItem{kind: kindFunc, fn: got},
			"return type does not match the trait's declaration")
	}
}

func (c *Checker) checkMethodSignature(want, got *hir.Method) {
	wantItem := requiredItem{kind: kindMethod, method: want}
	gotItem := requiredItem{kind: kindMethod, method: got}
	if want.Self.IsReference != got.Self.IsReference || want.Self.IsMutable != got.Self.IsMutable {
		c.reportMismatch(wantItem, gotItem, "self parameter does not match the trait's declaration")
		return
	}
	if len(want.ParamTypes) != len(got.ParamTypes) {
		c.reportMismatch(wantItem, gotItem, "parameter count does not match the trait's declaration")
		return
	}
	for i := range want.ParamTypes {
		if want.ParamTypes[i].MustResolved() != got.ParamTypes[i].MustResolved() {
			c.reportMismatch(wantItem, gotItem, "parameter type does not match the trait's declaration")
			return
		}
	}
	if want.ReturnType.MustResolved() != got.ReturnType.MustResolved() {
		c.reportMismatch(wantItem, gotItem, "return type does not match the trait's declaration")
	}
}

func (c *Checker) checkConstSignature(want, got *hir.ConstDef) {
	if want.Annotation.MustResolved() != got.Annotation.MustResolved() {
		c.reportMismatch(requiredItem{kind: kindConst, cst: want}, requiredItem{kind: kindConst, cst: got},
			"type does not match the trait's declaration")
	}
}

func (c *Checker) reportMismatch(want, got requiredItem, message string) {
	c.Diags.Report(&diag.Diagnostic{
		Severity: diag.Error,
		Kind:     diag.KindTraitImplMismatch,
		Message:  quote(want.name()) + ": " + message,
		Span:     spanOf(got),
		SecondarySpans: []diag.SecondarySpan{
			{Span: spanOf(want), Label: "trait declares it here"},
		},
	})
}

func quote(s string) string { return "\"" + s + "\"" }

func spanOf(r requiredItem) source.Span {
	switch r.kind {
	case kindFunc:
		return r.fn.Span
	case kindMethod:
		return r.method.Span
	default:
		return r.cst.Span
	}
}

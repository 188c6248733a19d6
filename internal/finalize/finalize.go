// Package finalize implements type & constant finalization:
// demand-driven, memoized resolution of every hir.TypeAnnotation to a
// typeck.TypeId and every hir.ConstDef to a hir.ConstValue, with a
// recursion guard that turns a self-referential type or constant into a
// CircularDependency diagnostic instead of infinite recursion. It sits above
// hir, scope, typeck, and consteval, which is why the tree-walking lives
// here rather than inside typeck itself: typeck only owns the canonical
// Type/TypeId representation and must stay free of an hir import (see its
// package doc), while this package is exactly the per-compilation glue that
// bundles them into a context passed by reference to every pass.
package finalize

import (
	"fmt"

	"github.com/rogerflowey/rust-compiler-sub006/internal/consteval"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// Context drives the two mutually-recursive algorithms resolve_type and
// resolve_constant.
type Context struct {
	Interner  *typeck.Interner
	Evaluator *consteval.Evaluator
	Diags     *diag.Collector

	typeInProgress  map[*hir.TypeAnnotation]bool
	constInProgress map[*hir.ConstDef]bool

	// typeStack/constStack mirror typeInProgress/constInProgress as ordered
	// call stacks, kept only so a detected cycle can report every slot along
	// it as a secondary span rather than just the one that closed the loop.
	typeStack  []*hir.TypeAnnotation
	constStack []*hir.ConstDef

	// constScopes remembers which scope each ConstDef's type annotation
	// should resolve names in, registered once by the driving pass (the
	// same scope it already has in hand when it first visits the const),
	// since a ConstUse encountered deep inside an unrelated expression has
	// no scope of its own to offer when it triggers resolution on demand.
	constScopes map[*hir.ConstDef]*scope.Scope
}

// NewContext wires an Evaluator whose ConstDef-resolution callback is this
// Context's own ResolveConstant, closing the mutual-recursion loop: a type
// can depend on a const's value via an array length, and a const's type can
// in principle depend on a struct — not legal in this language today, but
// the algorithm does not special-case that away.
func NewContext(interner *typeck.Interner, diags *diag.Collector) *Context {
	c := &Context{
		Interner:        interner,
		Diags:           diags,
		typeInProgress:  make(map[*hir.TypeAnnotation]bool),
		constInProgress: make(map[*hir.ConstDef]bool),
		constScopes:     make(map[*hir.ConstDef]*scope.Scope),
	}
	c.Evaluator = consteval.NewEvaluator(diags, c.resolveConstDefCallback)
	return c
}

// RegisterConst records the scope def's annotation and initializer should
// resolve names in. Must be called before the first ResolveConstant(def) or
// any ConstUse of def, normally once per const while the driving pass walks
// the program in source order.
func (c *Context) RegisterConst(def *hir.ConstDef, sc *scope.Scope) {
	c.constScopes[def] = sc
}

func (c *Context) resolveConstDefCallback(def *hir.ConstDef) (hir.ConstValue, bool) {
	v := c.ResolveConstant(def)
	return v, def.ValueState.Resolved
}

// ResolveType resolves ann in sc, returning its TypeId. Safe to call
// repeatedly or from multiple demand sites (e.g. a struct field's type being
// resolved both by its own struct's checker and transitively while resolving
// some other struct's field) — memoized by the slot itself.
func (c *Context) ResolveType(ann *hir.TypeAnnotation, sc *scope.Scope) typeck.TypeId {
	if ann.Resolved {
		return ann.Id
	}
	if c.typeInProgress[ann] {
		c.Diags.Report(&diag.Diagnostic{
			Severity:       diag.Error,
			Kind:           diag.KindCircularDependency,
			Message:        "type depends on itself",
			Span:           ann.Span,
			SecondarySpans: c.typeCycleTrail(),
		})
		return typeck.Invalid
	}
	c.typeInProgress[ann] = true
	c.typeStack = append(c.typeStack, ann)
	id := c.resolveNode(ann.Syntax, ann.Span, sc)
	c.typeStack = c.typeStack[:len(c.typeStack)-1]
	delete(c.typeInProgress, ann)
	ann.Set(id)
	return id
}

// typeCycleTrail renders every annotation currently on the resolution stack
// as a secondary span, in the order resolution entered them.
func (c *Context) typeCycleTrail() []diag.SecondarySpan {
	out := make([]diag.SecondarySpan, len(c.typeStack))
	for i, a := range c.typeStack {
		out[i] = diag.SecondarySpan{Span: a.Span, Label: "while resolving this type"}
	}
	return out
}

func (c *Context) resolveNode(node hir.TypeNode, span source.Span, sc *scope.Scope) typeck.TypeId {
	switch n := node.(type) {
	case *hir.PrimitiveTypeNode:
		return c.resolvePrimitiveName(n, span)

	case *hir.UnitTypeNode:
		return c.Interner.Unit()

	case *hir.InferredTypeNode:
		return c.Interner.Underscore()

	case *hir.RefTypeNode:
		pointee := c.resolveNode(n.Inner, span, sc)
		return c.Interner.Reference(pointee, n.Mutable)

	case *hir.ArrayTypeNode:
		elem := c.resolveNode(n.Element, span, sc)
		length, errDiag := c.Evaluator.EvalArrayLength(&n.Length, c.Interner)
		if errDiag != nil {
			c.Diags.Report(errDiag)
			return typeck.Invalid
		}
		return c.Interner.Array(elem, length)

	case *hir.PathTypeNode:
		return c.resolvePath(n, span, sc)

	default:
		diag.Bug("finalize: unhandled hir.TypeNode %T", node)
		return typeck.Invalid
	}
}

func (c *Context) resolvePrimitiveName(n *hir.PrimitiveTypeNode, span source.Span) typeck.TypeId {
	switch n.Name {
	case "i32":
		return c.Interner.Primitive(typeck.I32)
	case "u32":
		return c.Interner.Primitive(typeck.U32)
	case "isize":
		return c.Interner.Primitive(typeck.ISize)
	case "usize":
		return c.Interner.Primitive(typeck.USize)
	case "bool":
		return c.Interner.Primitive(typeck.Bool)
	case "char":
		return c.Interner.Primitive(typeck.Char)
	case "str":
		return c.Interner.Primitive(typeck.Str)
	default:
		c.Diags.Errorf(diag.KindUnresolvedName, span, "unknown primitive type %q", n.Name)
		return typeck.Invalid
	}
}

func (c *Context) resolvePath(n *hir.PathTypeNode, span source.Span, sc *scope.Scope) typeck.TypeId {
	name, ok := n.Syntax.Single()
	if !ok {
		c.Diags.Errorf(diag.KindUnresolvedName, span, "type paths may only name a single segment")
		return typeck.Invalid
	}
	def, found := sc.LookupType(name)
	if !found {
		c.Diags.Errorf(diag.KindUnresolvedName, span, "cannot find type %q in this scope", name)
		return typeck.Invalid
	}
	switch def.Kind {
	case scope.TypeStruct:
		return c.Interner.Struct(def.Struct.ID, def.Struct)
	case scope.TypeEnum:
		return c.Interner.Enum(def.Enum.ID, def.Enum)
	case scope.TypeTrait:
		c.Diags.Errorf(diag.KindTypeMismatch, span, "trait %q cannot be used as a type", name)
		return typeck.Invalid
	case scope.TypeSelf:
		if !def.Impl.ForType.Resolved {
			// Self used before the enclosing impl's own ForType is
			// resolved; resolve it now (it memoizes, so whichever of
			// the two call sites runs first pays the cost once).
			c.ResolveType(&def.Impl.ForType, sc)
		}
		t := c.Interner.Lookup(def.Impl.ForType.Id)
		switch t.Kind {
		case typeck.KStruct:
			return c.Interner.Struct(t.DefID, t.Def)
		case typeck.KEnum:
			return c.Interner.Enum(t.DefID, t.Def)
		default:
			return def.Impl.ForType.Id
		}
	default:
		diag.Bug("finalize: unhandled scope.TypeDefKind %v", def.Kind)
		return typeck.Invalid
	}
}

// ResolveConstant resolves def's value_state, returning its ConstValue (the
// zero ConstValue if resolution failed; callers must check
// def.ValueState.Resolved, not the return value alone).
func (c *Context) ResolveConstant(def *hir.ConstDef) hir.ConstValue {
	if def.ValueState.Resolved {
		return def.ValueState.Value
	}
	if c.constInProgress[def] {
		c.Diags.Report(&diag.Diagnostic{
			Severity:       diag.Error,
			Kind:           diag.KindCircularDependency,
			Message:        fmt.Sprintf("constant %q depends on itself", def.Name),
			Span:           def.Span,
			SecondarySpans: c.constCycleTrail(),
		})
		return hir.ConstValue{}
	}
	c.constInProgress[def] = true
	c.constStack = append(c.constStack, def)
	defer func() {
		c.constStack = c.constStack[:len(c.constStack)-1]
		delete(c.constInProgress, def)
	}()

	sc := c.constScopes[def]
	expected := c.ResolveType(&def.Annotation, sc)
	if def.Initializer == nil {
		// A trait's required const item: a signature with no default value,
		// never itself evaluated (only matched against by the trait
		// validator). Leave ValueState unresolved.
		return hir.ConstValue{}
	}
	v, ok := c.Evaluator.Eval(def.Initializer, expected, c.Interner)
	if !ok {
		return hir.ConstValue{}
	}
	def.ValueState.Resolved = true
	def.ValueState.Value = v
	return v
}

// constCycleTrail mirrors typeCycleTrail for the constant-evaluation stack.
func (c *Context) constCycleTrail() []diag.SecondarySpan {
	out := make([]diag.SecondarySpan, len(c.constStack))
	for i, d := range c.constStack {
		out[i] = diag.SecondarySpan{Span: d.Span, Label: fmt.Sprintf("while evaluating constant %q", d.Name)}
	}
	return out
}

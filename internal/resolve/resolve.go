// Package resolve implements name resolution: two-phase
// item discovery then body resolution over the lexical scope tree, plus
// construction of the Impl Table that method resolution searches later.
//
// The two-phase shape (register every declaration, then walk bodies against
// the now-complete table) mirrors a forward-declare-then-resolve analyzer,
// generalized to this language's three namespaces and boundary-scope rule.
package resolve

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/finalize"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// Resolver drives one program's name resolution.
type Resolver struct {
	Diags    *diag.Collector
	Finalize *finalize.Context
	Impls    *scope.ImplTable

	// implScopes remembers the per-impl item scope (with Self injected)
	// discovery built, so body resolution re-enters the same scope rather
	// than rebuilding it.
	implScopes map[*hir.Impl]*scope.Scope
}

func New(diags *diag.Collector, fin *finalize.Context, impls *scope.ImplTable) *Resolver {
	return &Resolver{Diags: diags, Finalize: fin, Impls: impls, implScopes: make(map[*hir.Impl]*scope.Scope)}
}

// Run resolves every item and body in prog against root, which must already
// be seeded with the predefined scope (scope.Predefined).
func (r *Resolver) Run(prog *hir.Program, root *scope.Scope) {
	r.discoverItems(prog, root)
	r.resolveSignatures(prog, root)
	r.resolveBodies(prog, root)
}

// defineTypeOrReport defines name in sc's Types namespace, reporting a
// duplicate-definition diagnostic on collision.
func (r *Resolver) defineTypeOrReport(sc *scope.Scope, name string, def scope.TypeDef, span source.Span) {
	if !sc.DefineType(name, def) {
		r.Diags.Errorf(diag.KindDuplicateDefinition, span, "type %q is already defined in this scope", name)
	}
}

func (r *Resolver) defineItemOrReport(sc *scope.Scope, name string, def scope.ValueDef, span source.Span) {
	if !sc.DefineItem(name, def) {
		r.Diags.Errorf(diag.KindDuplicateDefinition, span, "%q is already defined in this scope", name)
	}
}

func (r *Resolver) discoverItems(prog *hir.Program, root *scope.Scope) {
	for _, s := range prog.Structs {
		r.defineTypeOrReport(root, s.Name, scope.TypeDef{Kind: scope.TypeStruct, Struct: s}, s.Span)
		if len(s.Fields) == 0 {
			r.defineItemOrReport(root, s.Name, scope.ValueDef{Kind: scope.ValueStruct, Struct: s}, s.Span)
		}
	}
	for _, e := range prog.Enums {
		r.defineTypeOrReport(root, e.Name, scope.TypeDef{Kind: scope.TypeEnum, Enum: e}, e.Span)
		for idx, v := range e.Variants {
			r.defineItemOrReport(root, v, scope.ValueDef{Kind: scope.ValueEnumVar, Enum: e, VariantIndex: idx}, e.Span)
		}
	}
	for _, t := range prog.Traits {
		r.defineTypeOrReport(root, t.Name, scope.TypeDef{Kind: scope.TypeTrait, Trait: t}, t.Span)
	}
	for _, f := range prog.Functions {
		r.defineItemOrReport(root, f.Name, scope.ValueDef{Kind: scope.ValueFunc, Func: f}, f.Span)
	}
	for _, c := range prog.Consts {
		r.defineItemOrReport(root, c.Name, scope.ValueDef{Kind: scope.ValueConst, Const: c}, c.Span)
		r.Finalize.RegisterConst(c, root)
	}
	for _, impl := range prog.Impls {
		r.discoverImpl(impl, root)
	}
}

func (r *Resolver) discoverImpl(impl *hir.Impl, root *scope.Scope) {
	itemScope := root.Child(scope.KindItem)
	itemScope.DefineType("Self", scope.TypeDef{Kind: scope.TypeSelf, Impl: impl})
	r.implScopes[impl] = itemScope

	if !impl.IsInherent {
		name, ok := impl.Trait.Syntax.Single()
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, impl.Span, "trait reference must name a single trait")
		} else if def, found := root.LookupType(name); !found || def.Kind != scope.TypeTrait {
			r.Diags.Errorf(diag.KindUnresolvedName, impl.Span, "cannot find trait %q in this scope", name)
		} else {
			impl.Trait.Set(def.Trait)
		}
	}

	// The Impl Table is keyed by TypeId, so ForType must be resolved now
	// rather than lazily: struct/enum/primitive/reference/array TypeIds only
	// ever depend on already-known DefIDs or other already-resolvable
	// nodes, never on resolving a value, so resolving it here (eagerly, as
	// a name-resolution subroutine) does not reach ahead into the
	// demand-driven finalization pass for anything that isn't already
	// determined.
	typeID := r.Finalize.ResolveType(&impl.ForType, itemScope)
	if typeID != typeck.Invalid {
		r.Impls.Add(typeID, impl)
	}

	for _, c := range impl.Consts {
		r.Finalize.RegisterConst(c, itemScope)
	}
}

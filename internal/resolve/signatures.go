package resolve

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// resolveSignatures drives type & constant finalization over
// every declared signature now that item discovery has made every struct,
// enum, and impl's Self available. finalize.Context owns the actual
// demand-driven algorithm (memoized, cycle-guarded); this sweep only decides,
// once per slot, which scope it should resolve names in — information only
// the scope-building pass (this one) has in hand. Order here does not
// matter: ResolveType/ResolveConstant memoize, so a field reached
// transitively (e.g. an array length referencing a const) before this sweep
// gets to it is simply a cache hit when the sweep's own turn comes.
func (r *Resolver) resolveSignatures(prog *hir.Program, root *scope.Scope) {
	for _, s := range prog.Structs {
		for i := range s.Fields {
			r.Finalize.ResolveType(&s.Fields[i].Annotation, root)
		}
	}
	r.checkInfiniteSize(prog.Structs)
	for _, f := range prog.Functions {
		r.resolveFuncSignature(f, root)
	}
	for _, t := range prog.Traits {
		for _, f := range t.Functions {
			r.resolveFuncSignature(f, root)
		}
		for _, m := range t.Methods {
			r.resolveMethodSignature(m, root, typeck.Invalid)
		}
		for _, c := range t.Consts {
			r.Finalize.ResolveConstant(c)
		}
	}
	for _, impl := range prog.Impls {
		itemScope := r.implScopes[impl]
		forTypeID := impl.ForType.Id // already resolved during discoverImpl
		for _, f := range impl.Functions {
			r.resolveFuncSignature(f, itemScope)
		}
		for _, m := range impl.Methods {
			r.resolveMethodSignature(m, itemScope, forTypeID)
		}
		for _, c := range impl.Consts {
			r.Finalize.ResolveConstant(c)
		}
	}
	for _, c := range prog.Consts {
		r.Finalize.ResolveConstant(c)
	}
}

func (r *Resolver) resolveFuncSignature(f *hir.Function, sc *scope.Scope) {
	for i := range f.ParamTypes {
		r.Finalize.ResolveType(&f.ParamTypes[i], sc)
	}
	r.Finalize.ResolveType(&f.ReturnType, sc)
}

// resolveMethodSignature resolves a method's parameter/return types and
// synthesizes its implicit `self` local's type from Method.Self and the
// owning impl's ForType.
// forType is typeck.Invalid for a trait method, whose signature has no
// concrete Self to bind against (self's type is left unresolved; the trait
// validator compares shapes, not concrete types).
func (r *Resolver) resolveMethodSignature(m *hir.Method, sc *scope.Scope, forType typeck.TypeId) {
	for i := range m.ParamTypes {
		r.Finalize.ResolveType(&m.ParamTypes[i], sc)
	}
	r.Finalize.ResolveType(&m.ReturnType, sc)
	if forType == typeck.Invalid {
		return
	}
	selfID := forType
	if m.Self.IsReference {
		selfID = r.Finalize.Interner.Reference(forType, m.Self.IsMutable)
	}
	m.SelfLocal.Annotation.Set(selfID)
}

// checkInfiniteSize detects structs whose by-value layout is infinite: a
// field chain that never crosses a reference and leads back to the struct it
// started from. finalize.Context's own recursion guard cannot see this — it
// is keyed per TypeAnnotation slot and resolving a PathTypeNode to a struct
// interns that struct's TypeId immediately without walking into its fields,
// so a struct naming itself directly never re-enters that guard. This is a
// separate, definition-level walk run once every field signature above has
// already been resolved.
func (r *Resolver) checkInfiniteSize(structs []*hir.StructDef) {
	in := r.Finalize.Interner
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int64]int, len(structs))

	var walkStruct func(def *hir.StructDef)
	var walkType func(ann *hir.TypeAnnotation, t typeck.TypeId)

	walkType = func(ann *hir.TypeAnnotation, t typeck.TypeId) {
		if t == typeck.Invalid {
			return // already reported by the field's own resolution
		}
		tt := in.Lookup(t)
		switch tt.Kind {
		case typeck.KStruct:
			def := tt.Def.(*hir.StructDef)
			switch state[def.ID] {
			case visiting:
				r.Diags.Errorf(diag.KindCircularDependency, ann.Span,
					"struct %q has infinite size: it contains itself by value", def.Name)
			case unvisited:
				walkStruct(def)
			}
		case typeck.KArray:
			walkType(ann, tt.Element)
		}
	}

	walkStruct = func(def *hir.StructDef) {
		state[def.ID] = visiting
		for i := range def.Fields {
			walkType(&def.Fields[i].Annotation, def.Fields[i].Annotation.MustResolved())
		}
		state[def.ID] = done
	}

	for _, s := range structs {
		if state[s.ID] == unvisited {
			walkStruct(s)
		}
	}
}

package scope

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// Predefined builds the root scope pre-seeded with this language's builtin
// items plus the ImplTable entries for their inherent methods: a fixed set
// of synthetic declarations inserted before any user source is resolved.
// Each predefined function or method is a normal hir.Function/hir.Method
// with a nil body and directly-set Resolved TypeAnnotations — there is no
// user syntax to resolve, so finalize.ResolveType is never called for them.
// A nil body then short-circuits control-flow linking and const evaluation
// the same way a forward-declared/external method with no body is skipped
// by trait-impl validation.
func Predefined(interner *typeck.Interner, defIDs *hir.DefIDAllocator) (*Scope, *ImplTable, *hir.StructDef) {
	root := NewRoot()
	impls := NewImplTable()

	stringDef := &hir.StructDef{ID: defIDs.Next(), Name: "String"}
	stringID := interner.Struct(stringDef.ID, stringDef)
	root.DefineType("String", TypeDef{Kind: TypeStruct, Struct: stringDef})

	i32 := interner.Primitive(typeck.I32)
	u32 := interner.Primitive(typeck.U32)
	usize := interner.Primitive(typeck.USize)
	unitT := interner.Unit()
	strID := interner.Primitive(typeck.Str)
	strRef := interner.Reference(strID, false)

	defineFunc := func(name string, params []typeck.TypeId, ret typeck.TypeId) {
		fn := &hir.Function{Name: name}
		fn.ReturnType = resolvedAnnotation(ret)
		for _, p := range params {
			fn.ParamTypes = append(fn.ParamTypes, resolvedAnnotation(p))
			fn.Params = append(fn.Params, &hir.Local{Name: "_", Annotation: resolvedAnnotation(p)})
		}
		root.DefineItem(name, ValueDef{Kind: ValueFunc, Func: fn})
	}

	defineFunc("print", []typeck.TypeId{strRef}, unitT)
	defineFunc("println", []typeck.TypeId{strRef}, unitT)
	defineFunc("printInt", []typeck.TypeId{i32}, unitT)
	defineFunc("printlnInt", []typeck.TypeId{i32}, unitT)
	defineFunc("getString", nil, stringID)
	defineFunc("getInt", nil, i32)
	defineFunc("exit", []typeck.TypeId{i32}, unitT)

	addMethod := func(forType typeck.TypeId, name string, isRefSelf, isMutSelf bool, params []typeck.TypeId, ret typeck.TypeId) {
		impl := &hir.Impl{IsInherent: true}
		impl.ForType = resolvedAnnotation(forType)
		m := &hir.Method{
			Name:  name,
			Self:  hir.SelfParam{IsReference: isRefSelf, IsMutable: isMutSelf},
			Owner: impl,
		}
		m.ReturnType = resolvedAnnotation(ret)
		for _, p := range params {
			m.ParamTypes = append(m.ParamTypes, resolvedAnnotation(p))
			m.Params = append(m.Params, &hir.Local{Name: "_", Annotation: resolvedAnnotation(p)})
		}
		impl.Methods = append(impl.Methods, m)
		impls.Add(forType, impl)
	}

	addMethod(u32, "to_string", true, false, nil, stringID)
	addMethod(usize, "to_string", true, false, nil, stringID)
	addMethod(stringID, "as_str", true, false, nil, strRef)
	addMethod(stringID, "as_mut_str", true, true, nil, interner.Reference(strID, true))
	addMethod(stringID, "len", true, false, nil, usize)
	addMethod(stringID, "append", true, true, []typeck.TypeId{strRef}, unitT)
	addMethod(strID, "len", true, false, nil, usize)

	return root, impls, stringDef
}

func resolvedAnnotation(id typeck.TypeId) hir.TypeAnnotation {
	ann := hir.TypeAnnotation{}
	ann.Set(id)
	return ann
}

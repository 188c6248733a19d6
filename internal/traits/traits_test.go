package traits_test

import (
	"testing"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/traits"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ann(id typeck.TypeId) hir.TypeAnnotation {
	var a hir.TypeAnnotation
	a.Set(id)
	return a
}

// newImpl builds a resolved Impl naming tr as its trait, for the given type.
func newImpl(in *typeck.Interner, forType typeck.TypeId, tr *hir.Trait) *hir.Impl {
	impl := &hir.Impl{ForType: ann(forType)}
	impl.Trait.Set(tr)
	return impl
}

func TestMatchingImplProducesNoDiagnostics(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	i32 := in.Primitive(typeck.I32)
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ParamTypes: []hir.TypeAnnotation{ann(i32)}, ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	implFn := &hir.Function{Name: "make", ParamTypes: []hir.TypeAnnotation{ann(i32)}, ReturnType: ann(unit)}
	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Functions = []*hir.Function{implFn}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	assert.False(t, diags.HasErrors())
}

func TestMissingTraitItemIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindMissingTraitItem, errs[0].Kind)
	require.Len(t, errs[0].SecondarySpans, 1)
}

func TestItemKindMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	unit := in.Unit()

	traitMethod := &hir.Method{Name: "run", ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Runner", Methods: []*hir.Method{traitMethod}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Functions = []*hir.Function{{Name: "run", ReturnType: ann(unit)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestFunctionArityMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	i32 := in.Primitive(typeck.I32)
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ParamTypes: []hir.TypeAnnotation{ann(i32)}, ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Functions = []*hir.Function{{Name: "make", ReturnType: ann(unit)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestFunctionParamTypeMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	i32 := in.Primitive(typeck.I32)
	u32 := in.Primitive(typeck.U32)
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ParamTypes: []hir.TypeAnnotation{ann(i32)}, ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Functions = []*hir.Function{{Name: "make", ParamTypes: []hir.TypeAnnotation{ann(u32)}, ReturnType: ann(unit)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestFunctionReturnTypeMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	i32 := in.Primitive(typeck.I32)
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ReturnType: ann(i32)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Functions = []*hir.Function{{Name: "make", ReturnType: ann(unit)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestMethodSelfMutabilityMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	unit := in.Unit()

	traitMethod := &hir.Method{Name: "run", Self: hir.SelfParam{IsReference: true, IsMutable: true}, ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Runner", Methods: []*hir.Method{traitMethod}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Methods = []*hir.Method{{Name: "run", Self: hir.SelfParam{IsReference: true, IsMutable: false}, ReturnType: ann(unit)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestConstTypeMismatchIsDiagnosed(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	i32 := in.Primitive(typeck.I32)
	u32 := in.Primitive(typeck.U32)

	traitConst := &hir.ConstDef{Name: "MAX", Annotation: ann(i32)}
	tr := &hir.Trait{Name: "Bounded", Consts: []*hir.ConstDef{traitConst}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := newImpl(in, widget, tr)
	impl.Consts = []*hir.ConstDef{{Name: "MAX", Annotation: ann(u32)}}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	errs := diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diag.KindTraitImplMismatch, errs[0].Kind)
}

func TestInherentImplIsNotValidatedAgainstAnyTrait(t *testing.T) {
	diags := diag.NewCollector()
	in := typeck.NewInterner()
	unit := in.Unit()

	traitFn := &hir.Function{Name: "make", ReturnType: ann(unit)}
	tr := &hir.Trait{Name: "Make", Functions: []*hir.Function{traitFn}}

	def := &hir.StructDef{ID: 1, Name: "Widget"}
	widget := in.Struct(def.ID, def)
	impl := &hir.Impl{IsInherent: true, ForType: ann(widget)}

	prog := &hir.Program{Traits: []*hir.Trait{tr}, Impls: []*hir.Impl{impl}}
	traits.New(diags).Run(prog)

	assert.False(t, diags.HasErrors())
}

// Package lowering performs the mechanical AST→HIR rewrite:
// no semantic decisions, no deduplication, no validation beyond the shapes
// the surface grammar already guarantees. Every identifier in value or type
// position becomes an unresolved placeholder for name resolution to later
// rewrite in place.
package lowering

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"golang.org/x/text/unicode/norm"
)

// name canonicalizes an identifier's text once, at the point it first enters
// the HIR, so every declaration name stored in a scope map or HIR struct is
// already in normal form (internal/scope's own lookups normalize their probe
// key to match, "Identifier: a name plus hash; equality by
// string").
func name(id ast.Ident) string { return norm.NFC.String(id.Name) }

// locals accumulates the Local table for the function/method currently being
// lowered; a fresh one is used per body.
type locals struct {
	table *[]*hir.Local
}

func (l *locals) add(local *hir.Local) {
	*l.table = append(*l.table, local)
}

// Lowerer holds the state shared across one whole program's lowering: the
// DefID allocator struct/enum definitions draw their typeck identity from.
type Lowerer struct {
	defIDs *hir.DefIDAllocator
}

// New builds a Lowerer that draws struct/enum DefIDs from defIDs, which must
// be the same allocator scope.Predefined used so user-defined types never
// collide with the predefined String struct's ID.
func New(defIDs *hir.DefIDAllocator) *Lowerer {
	return &Lowerer{defIDs: defIDs}
}

// Lower rewrites an entire parsed file into a HIR Program.
func (lw *Lowerer) Lower(file *ast.File) *hir.Program {
	prog := &hir.Program{AST: file}
	for _, item := range file.Items {
		lw.lowerTopItem(prog, item)
	}
	return prog
}

func (lw *Lowerer) lowerTopItem(prog *hir.Program, item ast.Item) {
	switch it := item.(type) {
	case *ast.FunctionItem:
		prog.Functions = append(prog.Functions, lw.lowerFunction(it))
	case *ast.StructItem:
		prog.Structs = append(prog.Structs, lw.lowerStruct(it))
	case *ast.EnumItem:
		prog.Enums = append(prog.Enums, lw.lowerEnum(it))
	case *ast.ConstItem:
		prog.Consts = append(prog.Consts, lw.lowerConst(it))
	case *ast.TraitItem:
		prog.Traits = append(prog.Traits, lw.lowerTrait(it))
	case *ast.ImplItem:
		prog.Impls = append(prog.Impls, lw.lowerImpl(it))
	default:
		panic("lowering: invalid AST — unexpected top-level item shape")
	}
}

func (lw *Lowerer) lowerFunction(it *ast.FunctionItem) *hir.Function {
	fn := &hir.Function{Name: name(it.Name), AST: it, Span: it.Span()}
	ls := &locals{table: &fn.Locals}
	for _, p := range it.Params {
		local := lw.lowerParamLocal(p, ls)
		fn.Params = append(fn.Params, local)
		fn.ParamTypes = append(fn.ParamTypes, lw.lowerTypeAnnotation(p.Type))
	}
	fn.ReturnType = lw.lowerReturnType(it.ReturnType)
	if it.Body != nil {
		fn.Body = lw.lowerBlock(it.Body, ls)
	}
	return fn
}

func (lw *Lowerer) lowerMethod(it *ast.MethodItem, owner any) *hir.Method {
	m := &hir.Method{
		Name:  name(it.Name),
		Self:  hir.SelfParam{IsReference: it.Self.IsReference, IsMutable: it.Self.IsMutable},
		Owner: owner,
		AST:   it,
		Span:  it.Span(),
	}
	m.SelfLocal = &hir.Local{Name: "self", IsMutable: it.Self.IsMutable, Span: it.Self.SpanInfo}
	ls := &locals{table: &m.Locals}
	ls.add(m.SelfLocal)
	for _, p := range it.Params {
		local := lw.lowerParamLocal(p, ls)
		m.Params = append(m.Params, local)
		m.ParamTypes = append(m.ParamTypes, lw.lowerTypeAnnotation(p.Type))
	}
	m.ReturnType = lw.lowerReturnType(it.ReturnType)
	if it.Body != nil {
		m.Body = lw.lowerBlock(it.Body, ls)
	}
	return m
}

// lowerParamLocal lowers a parameter's irrefutable binding pattern into the
// one Local it must introduce (function/method parameters in this language
// are always a bare, possibly-`mut`, binding — see ast.Param).
func (lw *Lowerer) lowerParamLocal(p ast.Param, ls *locals) *hir.Local {
	bp, ok := p.Pattern.(*ast.BindingPattern)
	if !ok {
		panic("lowering: invalid AST — non-binding parameter pattern")
	}
	local := &hir.Local{Name: name(bp.Name), IsMutable: bp.IsMutable, AST: bp, Span: bp.Span()}
	ls.add(local)
	return local
}

func (lw *Lowerer) lowerReturnType(t ast.TypeExpr) hir.TypeAnnotation {
	if t == nil {
		return hir.TypeAnnotation{Syntax: &hir.UnitTypeNode{}}
	}
	return lw.lowerTypeAnnotation(t)
}

func (lw *Lowerer) lowerStruct(it *ast.StructItem) *hir.StructDef {
	def := &hir.StructDef{ID: lw.defIDs.Next(), Name: name(it.Name), AST: it, Span: it.Span()}
	for _, f := range it.Fields {
		def.Fields = append(def.Fields, hir.FieldDef{
			Name:       name(f.Name),
			Annotation: lw.lowerTypeAnnotation(f.Type),
			AST:        f,
		})
	}
	return def
}

func (lw *Lowerer) lowerEnum(it *ast.EnumItem) *hir.EnumDef {
	def := &hir.EnumDef{ID: lw.defIDs.Next(), Name: name(it.Name), AST: it, Span: it.Span()}
	for _, v := range it.Variants {
		def.Variants = append(def.Variants, name(v))
	}
	return def
}

func (lw *Lowerer) lowerConst(it *ast.ConstItem) *hir.ConstDef {
	def := &hir.ConstDef{Name: name(it.Name), AST: it, Span: it.Span()}
	def.Annotation = lw.lowerTypeAnnotation(it.Type)
	if it.Initializer != nil {
		v := lw.lowerExpr(it.Initializer, nil)
		def.Initializer = &v
	}
	return def
}

func (lw *Lowerer) lowerTrait(it *ast.TraitItem) *hir.Trait {
	tr := &hir.Trait{Name: name(it.Name), AST: it, Span: it.Span()}
	for _, member := range it.Items {
		switch m := member.(type) {
		case *ast.FunctionItem:
			tr.Functions = append(tr.Functions, lw.lowerFunction(m))
		case *ast.MethodItem:
			tr.Methods = append(tr.Methods, lw.lowerMethod(m, tr))
		case *ast.ConstItem:
			tr.Consts = append(tr.Consts, lw.lowerConst(m))
		default:
			panic("lowering: invalid AST — unexpected trait member shape")
		}
	}
	return tr
}

func (lw *Lowerer) lowerImpl(it *ast.ImplItem) *hir.Impl {
	impl := &hir.Impl{ForType: lw.lowerTypeAnnotation(it.ForType), AST: it, Span: it.Span()}
	if it.Trait != nil {
		impl.Trait = hir.TraitRef{Syntax: *it.Trait}
	} else {
		impl.IsInherent = true
	}
	for _, member := range it.Items {
		switch m := member.(type) {
		case *ast.FunctionItem:
			impl.Functions = append(impl.Functions, lw.lowerFunction(m))
		case *ast.MethodItem:
			impl.Methods = append(impl.Methods, lw.lowerMethod(m, impl))
		case *ast.ConstItem:
			impl.Consts = append(impl.Consts, lw.lowerConst(m))
		default:
			panic("lowering: invalid AST — unexpected impl member shape")
		}
	}
	return impl
}

package resolve

import (
	"golang.org/x/text/unicode/norm"

	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// resolveIdentExpr rewrites e's UnresolvedIdentData in place, per the
// one-/two-segment path resolution rules.
func (r *Resolver) resolveIdentExpr(e *hir.Expr, d *hir.UnresolvedIdentData, sc *scope.Scope) {
	switch len(d.Path.Segments) {
	case 1:
		r.resolveOneSegmentValue(e, d.Path.Segments[0], sc)
	case 2:
		r.resolveTwoSegmentValue(e, d.Path, d.Path.Segments[0], d.Path.Segments[1], sc)
	default:
		r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "paths longer than two segments are not supported")
	}
}

func (r *Resolver) resolveOneSegmentValue(e *hir.Expr, seg ast.PathSegment, sc *scope.Scope) {
	switch seg.Kind {
	case ast.SegmentSelfValue:
		def, ok := sc.LookupValue("self")
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "`self` used outside a method")
			return
		}
		e.Kind, e.Data = hir.KVariable, &hir.VariableData{Local: def.Local}

	case ast.SegmentSelfType:
		r.Diags.Errorf(diag.KindTypeMismatch, e.Span, "`Self` cannot be used as a value")

	case ast.SegmentName:
		def, ok := sc.LookupValue(seg.Name)
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "cannot find value %q in this scope", seg.Name)
			return
		}
		switch def.Kind {
		case scope.ValueLocal:
			e.Kind, e.Data = hir.KVariable, &hir.VariableData{Local: def.Local}
		case scope.ValueConst:
			e.Kind, e.Data = hir.KConstUse, &hir.ConstUseData{Const: def.Const}
		case scope.ValueFunc:
			e.Kind, e.Data = hir.KFuncUse, &hir.FuncUseData{Func: def.Func}
		case scope.ValueStruct:
			e.Kind, e.Data = hir.KStructConst, &hir.StructConstData{Struct: def.Struct}
		case scope.ValueEnumVar:
			e.Kind, e.Data = hir.KEnumVariant, &hir.EnumVariantData{Enum: def.Enum, VariantIndex: def.VariantIndex}
		default:
			diag.Bug("resolve: unhandled scope.ValueDefKind %v", def.Kind)
		}

	default:
		r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "invalid path segment in value position")
	}
}

// resolveTwoSegmentValue resolves `A::B`: A as a type, then B as an
// associated item of A — a struct/enum constructor, a method, or a const.
func (r *Resolver) resolveTwoSegmentValue(e *hir.Expr, path ast.Path, seg0, seg1 ast.PathSegment, sc *scope.Scope) {
	if seg1.Kind != ast.SegmentName {
		r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "expected an associated item name")
		return
	}
	typeID, ok := r.resolveTypeSegment(seg0, sc, e.Span)
	if !ok {
		return
	}

	itemName := norm.NFC.String(seg1.Name)

	t := r.Finalize.Interner.Lookup(typeID)
	if t.Kind == typeck.KEnum {
		enumDef := t.Def.(*hir.EnumDef)
		if idx := enumDef.VariantIndex(itemName); idx >= 0 {
			e.Kind, e.Data = hir.KEnumVariant, &hir.EnumVariantData{Enum: enumDef, VariantIndex: idx}
			return
		}
	}

	for _, impl := range r.Impls.Lookup(typeID) {
		for _, f := range impl.Functions {
			if f.Name == itemName {
				e.Kind, e.Data = hir.KFuncUse, &hir.FuncUseData{Func: f}
				return
			}
		}
		for _, c := range impl.Consts {
			if c.Name == itemName {
				e.Kind, e.Data = hir.KConstUse, &hir.ConstUseData{Const: c}
				return
			}
		}
		for _, m := range impl.Methods {
			if m.Name == itemName {
				// A method named without a call receiver (UFCS-style
				// `Type::method`); left as TypeStatic for a direct Call
				// callee to special-case, "method" branch.
				e.Kind, e.Data = hir.KTypeStatic, &hir.TypeStaticData{Syntax: path, Method: m}
				return
			}
		}
	}
	r.Diags.Errorf(diag.KindUnresolvedName, e.Span, "no associated item named %q", seg1.Name)
}

// resolveTypeSegment resolves the first segment of a two-segment path to a
// concrete TypeId, handling `Self` the same way finalize.resolvePath does.
func (r *Resolver) resolveTypeSegment(seg ast.PathSegment, sc *scope.Scope, span source.Span) (typeck.TypeId, bool) {
	var td scope.TypeDef
	var ok bool
	switch seg.Kind {
	case ast.SegmentSelfType:
		td, ok = sc.LookupType("Self")
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, span, "`Self` used outside an impl block")
			return typeck.Invalid, false
		}
	case ast.SegmentName:
		td, ok = sc.LookupType(seg.Name)
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, span, "cannot find type %q in this scope", seg.Name)
			return typeck.Invalid, false
		}
	default:
		r.Diags.Errorf(diag.KindUnresolvedName, span, "invalid path segment in type position")
		return typeck.Invalid, false
	}
	switch td.Kind {
	case scope.TypeStruct:
		return r.Finalize.Interner.Struct(td.Struct.ID, td.Struct), true
	case scope.TypeEnum:
		return r.Finalize.Interner.Enum(td.Enum.ID, td.Enum), true
	case scope.TypeTrait:
		r.Diags.Errorf(diag.KindTypeMismatch, span, "trait %q has no associated values", td.Trait.Name)
		return typeck.Invalid, false
	case scope.TypeSelf:
		return r.Finalize.ResolveType(&td.Impl.ForType, sc), true
	default:
		diag.Bug("resolve: unhandled scope.TypeDefKind %v", td.Kind)
		return typeck.Invalid, false
	}
}

func (r *Resolver) resolveStructLiteral(d *hir.StructLiteralData, span source.Span, sc *scope.Scope) {
	segs := d.Syntax.Segments
	if len(segs) != 1 {
		r.Diags.Errorf(diag.KindUnresolvedName, span, "struct literal type must name a single struct")
	} else {
		seg := segs[0]
		var td scope.TypeDef
		var ok bool
		switch seg.Kind {
		case ast.SegmentName:
			td, ok = sc.LookupType(seg.Name)
		case ast.SegmentSelfType:
			td, ok = sc.LookupType("Self")
		}
		if !ok {
			r.Diags.Errorf(diag.KindUnresolvedName, span, "cannot find struct type")
		} else if td.Kind != scope.TypeStruct {
			r.Diags.Errorf(diag.KindTypeMismatch, span, "path does not name a struct type")
		} else {
			d.Struct = td.Struct
		}
	}
	for i := range d.Fields {
		r.resolveExpr(&d.Fields[i].Value, sc)
	}
}

func (r *Resolver) resolvePathPattern(p *hir.PathPattern, sc *scope.Scope) {
	name, ok := p.Syntax.Single()
	if !ok {
		r.Diags.Errorf(diag.KindUnresolvedName, p.Syntax.Span, "pattern path must name a single item")
		return
	}
	def, found := sc.LookupValue(name)
	if !found {
		r.Diags.Errorf(diag.KindUnresolvedName, p.Syntax.Span, "cannot find %q in this scope", name)
		return
	}
	switch def.Kind {
	case scope.ValueConst:
		p.Ident.SetConst(def.Const)
	case scope.ValueEnumVar:
		p.Ident.SetEnumVariant(def.Enum, def.VariantIndex)
	case scope.ValueStruct:
		p.Ident.SetStructConst(def.Struct)
	default:
		r.Diags.Errorf(diag.KindTypeMismatch, p.Syntax.Span, "%q is not usable as a pattern", name)
		return
	}
	p.Resolved = true
}

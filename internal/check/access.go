package check

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// checkFieldAccess implements the field rule: autoderef the
// base, look the field name up in the base type's StructDef, and rewrite the
// FieldSelector from name to index.
func (c *Checker) checkFieldAccess(d *hir.FieldAccessData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	baseType := c.checkExpr(&d.Base, typeck.Invalid, fc)
	place, mutable, diverges := d.Base.Info.IsPlace, d.Base.Info.IsMutablePlace, d.Base.Info.Diverges
	baseType, place, mutable = autoderefPlace(in, baseType, place, mutable)

	tt := in.Lookup(baseType)
	if tt.Kind != typeck.KStruct {
		c.Diags.Errorf(diag.KindNoSuchField, span, "type %s has no fields", in.Display(baseType))
		return c.poison(), false, false, diverges
	}
	sd := tt.Def.(*hir.StructDef)
	idx := sd.FieldIndex(d.Selector.Name)
	if idx < 0 {
		c.Diags.Errorf(diag.KindNoSuchField, span, "struct %s has no field %q", sd.Name, d.Selector.Name)
		return c.poison(), false, false, diverges
	}
	d.Selector.Set(idx)
	return sd.Fields[idx].Annotation.MustResolved(), place, mutable, diverges
}

// checkIndex implements the array-index rule: the base must be
// an array (autoderefing references), the index must be usize.
func (c *Checker) checkIndex(d *hir.IndexData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	baseType := c.checkExpr(&d.Base, typeck.Invalid, fc)
	place, mutable, diverges := d.Base.Info.IsPlace, d.Base.Info.IsMutablePlace, d.Base.Info.Diverges
	baseType, place, mutable = autoderefPlace(in, baseType, place, mutable)

	tt := in.Lookup(baseType)
	if tt.Kind != typeck.KArray {
		c.Diags.Errorf(diag.KindTypeMismatch, span, "cannot index into type %s", in.Display(baseType))
		return c.poison(), false, false, diverges
	}
	c.checkExpr(&d.Index, in.Primitive(typeck.USize), fc)
	diverges = diverges || d.Index.Info.Diverges
	return tt.Element, place, mutable, diverges
}

// checkStructLiteral implements the struct-literal rule: every
// declared field must appear exactly once, each initializer checked against
// its field's declared type.
func (c *Checker) checkStructLiteral(d *hir.StructLiteralData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	if d.Struct == nil {
		// Name resolution already reported why the type path failed.
		for i := range d.Fields {
			c.checkExpr(&d.Fields[i].Value, typeck.Invalid, fc)
		}
		return c.poison(), false, false, false
	}
	seen := make([]bool, len(d.Struct.Fields))
	diverges := false
	for i := range d.Fields {
		fv := &d.Fields[i]
		idx := d.Struct.FieldIndex(fv.Selector.Name)
		if idx < 0 {
			c.Diags.Errorf(diag.KindNoSuchField, span, "struct %s has no field %q", d.Struct.Name, fv.Selector.Name)
			c.checkExpr(&fv.Value, typeck.Invalid, fc)
			continue
		}
		if seen[idx] {
			c.Diags.Errorf(diag.KindDuplicateDefinition, span, "field %q specified more than once", fv.Selector.Name)
		}
		seen[idx] = true
		fv.Selector.Set(idx)
		c.checkExpr(&fv.Value, d.Struct.Fields[idx].Annotation.MustResolved(), fc)
		diverges = diverges || fv.Value.Info.Diverges
	}
	for i, seenField := range seen {
		if !seenField {
			c.Diags.Errorf(diag.KindArityMismatch, span, "missing field %q in initializer of struct %s", d.Struct.Fields[i].Name, d.Struct.Name)
		}
	}
	return c.Finalize.Interner.Struct(d.Struct.ID, d.Struct), false, false, diverges
}

// checkArrayLiteral implements the array-literal rule: the first element
// fixes the element type; every other element is checked against it. An
// empty literal can only be typed from an expected array type.
func (c *Checker) checkArrayLiteral(d *hir.ArrayLiteralData, expected typeck.TypeId, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	if len(d.Elements) == 0 {
		if expected != typeck.Invalid {
			if tt := in.Lookup(expected); tt.Kind == typeck.KArray {
				return in.Array(tt.Element, 0), false, false, false
			}
		}
		c.Diags.Errorf(diag.KindOther, span, "cannot infer the element type of an empty array literal")
		return c.poison(), false, false, false
	}
	elemExpected := typeck.Invalid
	if expected != typeck.Invalid {
		if tt := in.Lookup(expected); tt.Kind == typeck.KArray {
			elemExpected = tt.Element
		}
	}
	elemType := c.checkExpr(&d.Elements[0], elemExpected, fc)
	diverges := d.Elements[0].Info.Diverges
	for i := 1; i < len(d.Elements); i++ {
		c.checkExpr(&d.Elements[i], elemType, fc)
		diverges = diverges || d.Elements[i].Info.Diverges
	}
	return in.Array(elemType, uint64(len(d.Elements))), false, false, diverges
}

// checkArrayRepeat implements the array-repeat rule: `[value; count]` with
// no expected type flowing into value; count is a compile-time usize constant.
func (c *Checker) checkArrayRepeat(d *hir.ArrayRepeatData, span source.Span, fc *funcCtx) (typeck.TypeId, bool, bool, bool) {
	in := c.Finalize.Interner
	elemType := c.checkExpr(&d.Value, typeck.Invalid, fc)
	diverges := d.Value.Info.Diverges
	c.checkExpr(&d.Count, in.Primitive(typeck.USize), fc)
	length, errDiag := c.Finalize.Evaluator.EvalArrayLength(&d.Count, in)
	if errDiag != nil {
		c.Diags.Report(errDiag)
		return c.poison(), false, false, diverges
	}
	return in.Array(elemType, length), false, false, diverges
}

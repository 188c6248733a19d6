package hir

import "github.com/rogerflowey/rust-compiler-sub006/ast"

// ValueIdentKind discriminates the Resolved shape of a ValueIdent slot.
type ValueIdentKind uint8

const (
	ValueLocal ValueIdentKind = iota
	ValueConst
	ValueFunc
	ValueStructConst // a unit struct used as a constructor
	ValueEnumVariant
)

// ValueIdent is the Unresolved(Path)/Resolved(one-of) slot populated by name
// resolution for any value-position identifier.
type ValueIdent struct {
	Resolved bool
	Syntax   ast.Path

	Kind         ValueIdentKind
	Local        *Local
	Const        *ConstDef
	Func         *Function
	Struct       *StructDef
	Enum         *EnumDef
	VariantIndex int
}

func (v *ValueIdent) SetLocal(l *Local)    { v.Resolved, v.Kind, v.Local = true, ValueLocal, l }
func (v *ValueIdent) SetConst(c *ConstDef) { v.Resolved, v.Kind, v.Const = true, ValueConst, c }
func (v *ValueIdent) SetFunc(f *Function)  { v.Resolved, v.Kind, v.Func = true, ValueFunc, f }
func (v *ValueIdent) SetStructConst(s *StructDef) {
	v.Resolved, v.Kind, v.Struct = true, ValueStructConst, s
}
func (v *ValueIdent) SetEnumVariant(e *EnumDef, index int) {
	v.Resolved, v.Kind, v.Enum, v.VariantIndex = true, ValueEnumVariant, e, index
}

// FieldSelector is the Unresolved(Identifier)/Resolved(index) slot on
// FieldAccess and struct-literal field initializers.
type FieldSelector struct {
	Resolved bool
	Name     string
	Index    int
}

func (f *FieldSelector) Set(index int) { f.Resolved, f.Index = true, index }

// Adjustment records the autoderef/autoref chain the method-call (or, in
// principle, field/index) resolver applied to get from a receiver's written
// type to the type an impl is actually found for.
type Adjustment struct {
	Derefs     int  // how many `*receiver` steps to reach the receiving type
	TakeRef    bool // whether an additional `&`/`&mut` is then applied
	RefMutable bool
}

// MethodResolution is the absent/Resolved(&Method) slot on MethodCall.
type MethodResolution struct {
	Resolved   bool
	Method     *Method
	Adjustment Adjustment
}

func (m *MethodResolution) Set(method *Method, adj Adjustment) {
	m.Resolved, m.Method, m.Adjustment = true, method, adj
}

// LoopTarget is implemented by the ExprData of Loop and While expressions,
// letting Break/Continue.target point at either.
type LoopTarget interface {
	loopTargetNode()
}

// FuncTarget is implemented by Function and Method, letting Return.target
// point at either.
type FuncTarget interface {
	funcTargetNode()
}

func (*Function) funcTargetNode() {}
func (*Method) funcTargetNode()   {}

// BreakContinueTarget is the absent/Resolved(&Loop|&While) slot shared by
// Break and Continue.
type BreakContinueTarget struct {
	Resolved bool
	Loop     LoopTarget
}

func (t *BreakContinueTarget) Set(l LoopTarget) { t.Resolved, t.Loop = true, l }

// ReturnTarget is the absent/Resolved(&Function|&Method) slot on Return.
type ReturnTarget struct {
	Resolved bool
	Func     FuncTarget
}

func (t *ReturnTarget) Set(f FuncTarget) { t.Resolved, t.Func = true, f }

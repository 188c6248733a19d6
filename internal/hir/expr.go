package hir

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// ExprKind tags which concrete ExprData an Expr carries, so passes can
// switch on Kind without a type assertion on the hot path. This mirrors the
// ExprKind+ExprData interface-payload split used for HIR expressions in the
// surge compiler's internal/hir/expr.go: a single concrete Expr struct holds
// the mutable ExprInfo slot uniformly across every variant, while Data holds
// the per-kind fields as an interface so the variant set stays closed (only
// types in this file implement ExprData).
type ExprKind uint8

const (
	KIntLiteral ExprKind = iota
	KBoolLiteral
	KCharLiteral
	KStringLiteral
	KUnresolvedIdent
	KVariable
	KConstUse
	KFuncUse
	KTypeStatic
	KStructConst
	KEnumVariant
	KFieldAccess
	KIndex
	KStructLiteral
	KArrayLiteral
	KArrayRepeat
	KUnaryOp
	KBinaryOp
	KAssignment
	KCast
	KCall
	KMethodCall
	KIf
	KLoop
	KWhile
	KBreak
	KContinue
	KReturn
	KBlock
	KUnderscore
)

// ExprData is the closed per-kind payload; exactly one concrete type below
// satisfies it for each ExprKind.
type ExprData interface {
	exprDataNode()
}

// ExprInfo is the slot the expression checker populates on every reachable
// Expr. Nil until checked.
type ExprInfo struct {
	Type           typeck.TypeId
	IsPlace        bool
	IsMutablePlace bool
	Diverges       bool
}

// Expr is one HIR expression node: a fixed envelope (span, AST back-ref,
// ExprInfo slot) around a variant-specific Data payload.
type Expr struct {
	Kind ExprKind
	Data ExprData
	Info *ExprInfo
	AST  ast.Expr
	Span source.Span
}

// --- Literals ---

type IntLiteralData struct {
	Text       string
	Suffix     string
	IsNegative bool
}

func (*IntLiteralData) exprDataNode() {}

type BoolLiteralData struct{ Value bool }

func (*BoolLiteralData) exprDataNode() {}

type CharLiteralData struct{ Value rune }

func (*CharLiteralData) exprDataNode() {}

type StringLiteralData struct{ Value string }

func (*StringLiteralData) exprDataNode() {}

// --- Identifiers and resolved value uses ---

// UnresolvedIdentData exists only until name resolution runs, which rewrites
// the owning Expr's Kind/Data to one of Variable/ConstUse/FuncUse/
// StructConst/EnumVariant/TypeStatic in place. A path whose resolution fails
// keeps this shape after its diagnostic is reported, and the expression
// checker treats it as an already-reported error.
type UnresolvedIdentData struct{ Path ast.Path }

func (*UnresolvedIdentData) exprDataNode() {}

type VariableData struct{ Local *Local }

func (*VariableData) exprDataNode() {}

type ConstUseData struct{ Const *ConstDef }

func (*ConstUseData) exprDataNode() {}

type FuncUseData struct{ Func *Function }

func (*FuncUseData) exprDataNode() {}

// TypeStaticData is a resolved `Type::method` reference with no call syntax
// and no receiver — UFCS style, e.g. `Point::distance(&a, &b)`. Name
// resolution has already found the concrete Method; Syntax is kept only for
// diagnostics. Only legal as a direct Call's Callee, where the checker
// treats Args[0] as the explicit `self` argument ("method"
// branch of two-segment path resolution).
type TypeStaticData struct {
	Syntax ast.Path
	Method *Method
}

func (*TypeStaticData) exprDataNode() {}

type StructConstData struct{ Struct *StructDef }

func (*StructConstData) exprDataNode() {}

type EnumVariantData struct {
	Enum         *EnumDef
	VariantIndex int
}

func (*EnumVariantData) exprDataNode() {}

// --- Field/index/struct/array ---

type FieldAccessData struct {
	Base     Expr
	Selector FieldSelector
}

func (*FieldAccessData) exprDataNode() {}

type IndexData struct {
	Base  Expr
	Index Expr
}

func (*IndexData) exprDataNode() {}

// StructFieldValue is one `name: value` (or, post-check, `index: value`)
// initializer in a struct literal.
type StructFieldValue struct {
	Selector FieldSelector
	Value    Expr
}

type StructLiteralData struct {
	// Syntax is the written type path, e.g. `Point` in `Point { x: 0 }`.
	// Name resolution resolves it and fills Struct in place; Syntax is kept
	// around afterward only for diagnostics, never re-consulted once
	// Struct is non-nil.
	Syntax ast.Path
	Struct *StructDef
	Fields []StructFieldValue
}

func (*StructLiteralData) exprDataNode() {}

type ArrayLiteralData struct{ Elements []Expr }

func (*ArrayLiteralData) exprDataNode() {}

type ArrayRepeatData struct {
	Value Expr
	Count Expr
}

func (*ArrayRepeatData) exprDataNode() {}

// --- Operators ---

type UnaryOpData struct {
	Op      ast.UnaryOp
	Operand Expr
}

func (*UnaryOpData) exprDataNode() {}

type BinaryOpData struct {
	Op    ast.BinaryOp
	Left  Expr
	Right Expr
}

func (*BinaryOpData) exprDataNode() {}

type AssignmentData struct {
	Left       Expr
	Right      Expr
	CompoundOp *ast.BinaryOp
}

func (*AssignmentData) exprDataNode() {}

type CastData struct {
	Expr       Expr
	TargetType TypeAnnotation
}

func (*CastData) exprDataNode() {}

// --- Calls ---

type CallData struct {
	Callee Expr
	Args   []Expr
}

func (*CallData) exprDataNode() {}

type MethodCallData struct {
	Receiver   Expr
	MethodName string
	Args       []Expr
	Resolved   MethodResolution
}

func (*MethodCallData) exprDataNode() {}

// --- Control flow ---

type IfData struct {
	Cond Expr
	Then *Block
	Else *Expr // nil, or an If (else-if) or Block wrapped as an Expr
}

func (*IfData) exprDataNode() {}

type LoopData struct{ Body *Block }

func (*LoopData) exprDataNode()   {}
func (*LoopData) loopTargetNode() {}

type WhileData struct {
	Cond Expr
	Body *Block
}

func (*WhileData) exprDataNode()   {}
func (*WhileData) loopTargetNode() {}

type BreakData struct {
	Value  *Expr
	Target BreakContinueTarget
}

func (*BreakData) exprDataNode() {}

type ContinueData struct {
	Target BreakContinueTarget
}

func (*ContinueData) exprDataNode() {}

type ReturnData struct {
	Value  *Expr
	Target ReturnTarget
}

func (*ReturnData) exprDataNode() {}

// Block is `{ stmts...; [final] }`. It is its own type (not merely an
// ExprData variant) because Function/Method/If/Loop/While all anchor one
// directly rather than through an Expr envelope, matching 's
// "body (optional Block)" phrasing.
type Block struct {
	Stmts []Stmt
	Final *Expr
	Span  source.Span
}

func (*Block) exprDataNode() {}

type UnderscoreData struct{}

func (*UnderscoreData) exprDataNode() {}

// Package typeck holds the interned Type representation: canonical Type
// values and the TypeId handles that stand for them. Resolving a syntactic
// type to a TypeId is done by internal/finalize, not here. This package
// imports no other package of this module, in particular not hir: hir owns the
// struct/enum definitions a Type can point at, so to avoid an import cycle a
// Type stores such a definition as an opaque `any`, keeping this package
// decoupled from hir. Callers that need the concrete *hir.StructDef back
// perform the type assertion themselves, at the hir package boundary.
package typeck

// Kind is the closed set of type shapes this language has.
type Kind uint8

const (
	KPrimitive Kind = iota
	KStruct
	KEnum
	KReference
	KArray
	KUnit
	KNever
	KUnderscore
)

func (k Kind) String() string {
	switch k {
	case KPrimitive:
		return "primitive"
	case KStruct:
		return "struct"
	case KEnum:
		return "enum"
	case KReference:
		return "reference"
	case KArray:
		return "array"
	case KUnit:
		return "unit"
	case KNever:
		return "never"
	case KUnderscore:
		return "underscore"
	default:
		return "unknown"
	}
}

// PrimitiveKind is the closed set of primitive scalar types, including the
// two unresolved integer-literal defaults AnyInt/AnyUInt
// which never survive past expression checking onto a final HIR type slot.
type PrimitiveKind uint8

const (
	I32 PrimitiveKind = iota
	U32
	ISize
	USize
	Bool
	Char
	Str
	AnyInt
	AnyUInt
)

func (p PrimitiveKind) String() string {
	switch p {
	case I32:
		return "i32"
	case U32:
		return "u32"
	case ISize:
		return "isize"
	case USize:
		return "usize"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Str:
		return "str"
	case AnyInt:
		return "{integer}"
	case AnyUInt:
		return "{unsigned integer}"
	default:
		return "?"
	}
}

// IsInteger reports whether p is one of the concrete or defaultable integer
// primitives (everything except Bool, Char, Str).
func (p PrimitiveKind) IsInteger() bool {
	switch p {
	case I32, U32, ISize, USize, AnyInt, AnyUInt:
		return true
	default:
		return false
	}
}

// IsSigned reports whether p is a signed integer kind. Only meaningful when
// IsInteger(p) is true.
func (p PrimitiveKind) IsSigned() bool {
	switch p {
	case I32, ISize, AnyInt:
		return true
	default:
		return false
	}
}

// TypeId is a canonical handle into an Interner. The zero value is never a
// valid id; Interner reserves index 0 as a sentinel so a stray zero-valued
// TypeId (e.g. a forgotten field) fails loudly instead of aliasing a real
// type.
type TypeId int32

// Invalid is the sentinel TypeId no Interner ever hands out.
const Invalid TypeId = 0

// Type is one canonical type shape. Only the fields relevant to Kind are
// meaningful; see the constructors on Interner, which are the only supported
// way to build one.
type Type struct {
	Kind Kind
	Prim PrimitiveKind

	// Def is the defining *hir.StructDef or *hir.EnumDef, opaque here to
	// keep this package free of an hir import. DefID is its stable numeric
	// identity, assigned once per definition at lowering time, and is what
	// the Interner actually keys on (two Types with the same DefID denote
	// the same struct/enum, regardless of how many times it's looked up).
	Def   any
	DefID int64

	// Reference fields.
	Pointee TypeId
	Mutable bool

	// Array fields.
	Element TypeId
	Length  uint64
}

type typeKey struct {
	kind    Kind
	prim    PrimitiveKind
	defID   int64
	pointee TypeId
	mutable bool
	element TypeId
	length  uint64
}

func (t Type) key() typeKey {
	return typeKey{
		kind:    t.Kind,
		prim:    t.Prim,
		defID:   t.DefID,
		pointee: t.Pointee,
		mutable: t.Mutable,
		element: t.Element,
		length:  t.Length,
	}
}

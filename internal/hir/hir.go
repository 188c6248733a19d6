// Package hir is the high-level intermediate representation the semantic
// passes build, mutate, and finally hand to a code generator. Unlike the
// surface ast package, HIR nodes are not a closed interface hierarchy of
// immutable trees: several fields are sum-typed "slots" that start in an
// Unresolved shape and are advanced in place, exactly once, by the pass that
// owns them. Go has no tagged-union sum types, so each slot is modeled as a
// small struct with a Resolved bool discriminant plus fields for both
// shapes — a variant with monotonic state, expressed the Go way rather than
// as an enum+payload pair to keep zero values meaningful (an unresolved slot
// is simply the zero value).
//
// HIR entities never own each other cyclically (Impl ↔ Method, Break ↔ Loop):
// Go's garbage collector tracks reference cycles through pointers natively,
// so unlike an arena-indexed implementation in a language without a tracing
// GC, this package links entities with ordinary pointers.
package hir

import (
	"golang.org/x/text/unicode/norm"

	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// DefIDAllocator hands out stable identities to struct/enum definitions for use as
// typeck.Interner keys. It is reset per
// Program via NewDefIDAllocator rather than held as package state, so two
// compilations in the same process never collide and there is no global
// mutable state.
type DefIDAllocator struct{ next int64 }

func NewDefIDAllocator() *DefIDAllocator { return &DefIDAllocator{next: 1} }

func (a *DefIDAllocator) Next() int64 {
	id := a.next
	a.next++
	return id
}

// TypeAnnotation is the Unresolved/Resolved slot for a syntactic type
// position.
type TypeAnnotation struct {
	Resolved bool
	Syntax   TypeNode // meaningful iff !Resolved
	Id       typeck.TypeId
	Span     source.Span // for diagnostics when resolution fails
}

// Set advances the slot to its Resolved shape. Calling it twice with
// different ids is a pipeline bug: slot progression is monotonic.
func (a *TypeAnnotation) Set(id typeck.TypeId) {
	if a.Resolved && a.Id != id {
		panic("hir: TypeAnnotation slot overwritten with a different TypeId")
	}
	a.Resolved = true
	a.Id = id
}

// MustResolved returns the resolved TypeId, panicking if the slot was never
// resolved, so downstream passes never silently read half-finished state.
func (a TypeAnnotation) MustResolved() typeck.TypeId {
	if !a.Resolved {
		panic("hir: TypeAnnotation read before resolution")
	}
	return a.Id
}

// Program is the root HIR node owning every top-level item.
type Program struct {
	Functions []*Function
	Structs   []*StructDef
	Enums     []*EnumDef
	Consts    []*ConstDef
	Traits    []*Trait
	Impls     []*Impl

	AST *ast.File
}

// Local is one binding slot in a function or method's local table.
type Local struct {
	Name       string
	IsMutable  bool
	Annotation TypeAnnotation // absent (zero Syntax) when the binding has no explicit type
	AST        ast.Pattern
	Span       source.Span
}

// SelfParam mirrors ast.SelfParam on the HIR side, resolved to a concrete
// reference-or-value type once the owning Method's Impl.ForType is known.
type SelfParam struct {
	IsReference bool
	IsMutable   bool
}

// Function is a free function declaration.
type Function struct {
	Name       string
	Params     []*Local
	ParamTypes []TypeAnnotation // parallel to Params
	ReturnType TypeAnnotation   // absent means Unit
	Body       *Block           // nil for a trait item with no default
	Locals     []*Local         // every Local declared anywhere in this function, in declaration order
	AST        ast.Item
	Span       source.Span
}

// String returns the function's name. Functions are never interned as types,
// so unlike StructDef/EnumDef a Function has no TypeName method and does not
// satisfy typeck's structural `named` interface.
func (f *Function) String() string { return f.Name }

// Method is like Function but carries a receiver and is always found inside
// an Impl or Trait's item list.
type Method struct {
	Name       string
	Self       SelfParam
	SelfLocal  *Local // populated during lowering; its type is set once Impl.ForType resolves
	Params     []*Local
	ParamTypes []TypeAnnotation
	ReturnType TypeAnnotation
	Body       *Block
	Locals     []*Local
	// Owner is the *Impl or *Trait this method was declared inside,
	// carried as `any` the same way typeck.Type.Def is: a Method can live
	// in either container and neither Impl nor Trait needs to know about
	// the other's shape, so this avoids making them mutually aware for a
	// field only used to answer "what does Self mean here."
	Owner any
	AST   ast.Item
	Span  source.Span
}

func (m *Method) String() string { return m.Name }

// FieldDef is one struct field.
type FieldDef struct {
	Name       string
	Annotation TypeAnnotation
	AST        ast.FieldDecl
}

// StructDef is a struct type declaration.
type StructDef struct {
	ID     int64 // stable identity, see DefIDAllocator; used as the typeck.Interner key
	Name   string
	Fields []FieldDef
	AST    ast.Item
	Span   source.Span
}

// TypeName satisfies typeck's structural `named` interface used by
// Interner.Display.
func (s *StructDef) TypeName() string { return s.Name }

// FieldIndex returns the index of a field by name, or -1.
func (s *StructDef) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// EnumDef is an enum type declaration; variants carry no payload.
type EnumDef struct {
	ID       int64
	Name     string
	Variants []string
	AST      ast.Item
	Span     source.Span
}

func (e *EnumDef) TypeName() string { return e.Name }

// VariantIndex returns the index of a variant by name, or -1. name is
// normalized before comparison, since Variants was populated with already-
// normalized text by lowering ("Identifier... equality by
// string").
func (e *EnumDef) VariantIndex(name string) int {
	name = norm.NFC.String(name)
	for i, v := range e.Variants {
		if v == name {
			return i
		}
	}
	return -1
}

// ConstValueState is the Unresolved{expr}/Resolved{ConstValue} slot on
// ConstDef.
type ConstValueState struct {
	Resolved bool
	Value    ConstValue // meaningful iff Resolved
}

// ConstValue is the closed sum type produced by the constant evaluator.
// Exactly one of the fields is meaningful, selected by Kind; modeled as a
// tag+fields struct rather than an interface hierarchy since ConstValue is
// a plain data value copied by assignment, not a node participating in a
// visitor dispatch.
type ConstKind uint8

const (
	ConstIntSigned ConstKind = iota
	ConstIntUnsigned
	ConstBool
	ConstChar
	ConstString
)

type ConstValue struct {
	Kind   ConstKind
	Signed int64  // ConstIntSigned
	Unsig  uint64 // ConstIntUnsigned
	Bool   bool   // ConstBool
	Char   rune   // ConstChar
	Str    string // ConstString
}

// ConstDef is a `const NAME: T = expr;` declaration. Initializer is nil for a
// trait's required (no-default) const item, which carries only a signature
// for trait-impl validation to match against and is never evaluated.
type ConstDef struct {
	Name        string
	Annotation  TypeAnnotation
	Initializer *Expr
	ValueState  ConstValueState
	AST         ast.Item
	Span        source.Span
}

func (c *ConstDef) String() string { return c.Name }

// TraitRef is the Unresolved(Path)/Resolved(&Trait) slot on Impl.
type TraitRef struct {
	Resolved bool
	Syntax   ast.Path
	Trait    *Trait
}

func (r *TraitRef) Set(t *Trait) { r.Resolved = true; r.Trait = t }

// Trait is a trait declaration; its Items are Function/Method/ConstDef
// entities whose Body/Initializer may be nil (a required item with no
// default).
type Trait struct {
	Name      string
	Functions []*Function
	Methods   []*Method
	Consts    []*ConstDef
	AST       ast.Item
	Span      source.Span
}

// Impl is `impl [Trait for] Type { ... }`.
type Impl struct {
	Trait      TraitRef // Resolved=false and Syntax zero for an inherent impl
	IsInherent bool
	ForType    TypeAnnotation
	Functions  []*Function
	Methods    []*Method
	Consts     []*ConstDef
	AST        ast.Item
	Span       source.Span
}

// Package scope implements the lexical scope tree name resolution walks:
// one of {global, item, function/method, block}, each with three namespaces
// (Types, Items, Bindings), and the "boundary scope" rule that keeps a
// nested function from seeing its enclosing function's locals while still
// seeing enclosing items. The tree itself is a table per scope chained to
// its parent and looked up by walking the chain, generalized to three
// case-sensitive namespaces since this language has no overload resolution
// to thread through a lookup.
package scope

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"golang.org/x/text/unicode/norm"
)

// normalize canonicalizes an identifier's text before it is used as a map
// key, so two Unicode-equivalent spellings of the same name (distinct byte
// sequences, same canonical form) collide. This language is case-sensitive,
// so NFC normalization is the only fold needed for identifier equality.
func normalize(name string) string { return norm.NFC.String(name) }

// Kind is the closed set of scope roles.
type Kind uint8

const (
	KindGlobal Kind = iota
	KindItem
	KindFunction
	KindBlock
)

// TypeDefKind discriminates what a Types-namespace entry denotes.
type TypeDefKind uint8

const (
	TypeStruct TypeDefKind = iota
	TypeEnum
	TypeTrait
	TypeSelf // `Self` inside an impl/trait item scope
)

// TypeDef is one Types-namespace binding.
type TypeDef struct {
	Kind   TypeDefKind
	Struct *hir.StructDef // TypeStruct
	Enum   *hir.EnumDef   // TypeEnum
	Trait  *hir.Trait     // TypeTrait
	Impl   *hir.Impl      // TypeSelf: resolve through Impl.ForType once finalized
}

// ValueDefKind discriminates what an Items/Bindings-namespace entry denotes.
type ValueDefKind uint8

const (
	ValueFunc    ValueDefKind = iota
	ValueConst                // a free const or a zero-arg enum-variant constructor's const form is not used; consts only
	ValueStruct               // a unit struct used as a value (constructor)
	ValueEnumVar              // an enum variant constructor
	ValueLocal                // a let/parameter binding
)

// ValueDef is one Items- or Bindings-namespace binding.
type ValueDef struct {
	Kind         ValueDefKind
	Func         *hir.Function
	Const        *hir.ConstDef
	Struct       *hir.StructDef
	Enum         *hir.EnumDef
	VariantIndex int
	Local        *hir.Local
}

// Scope is one node in the lexical scope tree.
type Scope struct {
	kind   Kind
	parent *Scope

	types    map[string]TypeDef
	items    map[string]ValueDef
	bindings map[string]ValueDef
}

// NewRoot creates the global scope with no parent.
func NewRoot() *Scope {
	return newScope(KindGlobal, nil)
}

// Child creates a new scope nested under s.
func (s *Scope) Child(kind Kind) *Scope {
	return newScope(kind, s)
}

func newScope(kind Kind, parent *Scope) *Scope {
	return &Scope{
		kind:     kind,
		parent:   parent,
		types:    make(map[string]TypeDef),
		items:    make(map[string]ValueDef),
		bindings: make(map[string]ValueDef),
	}
}

// Kind reports this scope's role.
func (s *Scope) Kind() Kind { return s.kind }

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// DefineType binds name in the Types namespace of this scope. Returns false
// if name is already bound here.
func (s *Scope) DefineType(name string, def TypeDef) bool {
	name = normalize(name)
	if _, exists := s.types[name]; exists {
		return false
	}
	s.types[name] = def
	return true
}

// DefineItem binds name in the Items namespace of this scope. Returns false
// on duplicate.
func (s *Scope) DefineItem(name string, def ValueDef) bool {
	name = normalize(name)
	if _, exists := s.items[name]; exists {
		return false
	}
	s.items[name] = def
	return true
}

// DefineBinding binds name in the Bindings namespace of this scope.
// Last-write-wins: explicit shadowing within the same scope is legal.
func (s *Scope) DefineBinding(name string, def ValueDef) {
	s.bindings[normalize(name)] = def
}

// LookupType walks parents unconditionally, since type names (and Self) have
// no boundary-masking rule.
func (s *Scope) LookupType(name string) (TypeDef, bool) {
	name = normalize(name)
	for cur := s; cur != nil; cur = cur.parent {
		if d, ok := cur.types[name]; ok {
			return d, true
		}
	}
	return TypeDef{}, false
}

// LookupValue walks parents, masking Bindings once a function/method
// boundary scope has been crossed: a nested function sees enclosing items
// but not enclosing locals.
func (s *Scope) LookupValue(name string) (ValueDef, bool) {
	name = normalize(name)
	crossedBoundary := false
	for cur := s; cur != nil; cur = cur.parent {
		if !crossedBoundary {
			if d, ok := cur.bindings[name]; ok {
				return d, true
			}
		}
		if d, ok := cur.items[name]; ok {
			return d, true
		}
		if cur.kind == KindFunction {
			crossedBoundary = true
		}
	}
	return ValueDef{}, false
}

// LookupLocal looks up name in this scope only (neither namespace walks
// parents), preferring a binding over an item the way a single-scope shadow
// would ("current scope only").
func (s *Scope) LookupLocal(name string) (ValueDef, bool) {
	name = normalize(name)
	if d, ok := s.bindings[name]; ok {
		return d, true
	}
	if d, ok := s.items[name]; ok {
		return d, true
	}
	return ValueDef{}, false
}

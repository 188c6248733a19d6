package hir

import "github.com/rogerflowey/rust-compiler-sub006/ast"

// Pattern is the closed HIR pattern variant set, lowered
// mechanically from ast.Pattern with no semantic decisions made yet.
type Pattern interface {
	patternNode()
}

// BindingPattern introduces Local as a new binding.
type BindingPattern struct {
	Local     *Local
	IsMutable bool
	IsRef     bool
}

func (*BindingPattern) patternNode() {}

// LiteralPattern matches a literal value.
type LiteralPattern struct {
	Value      Expr
	IsNegative bool
}

func (*LiteralPattern) patternNode() {}

// WildcardPattern is `_`.
type WildcardPattern struct{}

func (*WildcardPattern) patternNode() {}

// RefPattern is `&p` or `&mut p`.
type RefPattern struct {
	Inner   Pattern
	Mutable bool
}

func (*RefPattern) patternNode() {}

// PathPattern names a unit struct or enum variant constructor, resolved the
// same way a value-position identifier is.
type PathPattern struct {
	Syntax   ast.Path
	Resolved bool
	Ident    ValueIdent
}

func (*PathPattern) patternNode() {}

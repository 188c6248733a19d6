// Package ast defines the syntax tree the semantic core consumes. It is a
// pure data model: no behavior beyond construction and small accessors (each
// node's Span, Path.Single) lives here, and the core never mutates a node reached through this package. A real
// front end (lexer + parser) is an external collaborator that produces
// these nodes; this package exists only so the core has something concrete
// to lower from.
package ast

import "github.com/rogerflowey/rust-compiler-sub006/internal/source"

// Ident is a bare identifier: a name plus its span. Two Idents are
// considered the same name by string equality; Span never participates in
// that comparison.
type Ident struct {
	Name string
	Span source.Span
}

// PathSegmentKind distinguishes the three forms a path segment can take.
type PathSegmentKind int

const (
	// SegmentName is an ordinary identifier segment.
	SegmentName PathSegmentKind = iota
	// SegmentSelfValue is the `self` receiver segment.
	SegmentSelfValue
	// SegmentSelfType is the `Self` implementing-type segment.
	SegmentSelfType
)

// PathSegment is one element of a Path.
type PathSegment struct {
	Kind PathSegmentKind
	Name string // only meaningful when Kind == SegmentName
	Span source.Span
}

// Path is an ordered sequence of segments, e.g. `Foo::bar` or `self`.
type Path struct {
	Segments []PathSegment
	Span     source.Span
}

// Single reports whether the path has exactly one segment and returns its
// name (only valid when the segment is SegmentName).
func (p Path) Single() (string, bool) {
	if len(p.Segments) != 1 || p.Segments[0].Kind != SegmentName {
		return "", false
	}
	return p.Segments[0].Name, true
}

// File is the root of one compilation unit: an ordered list of top-level
// items. The core never mutates it.
type File struct {
	Items []Item
	Span  source.Span
}

// Package source provides the position and span types shared by the AST and
// HIR. A Span is optional on every node and never participates in equality —
// it exists purely to let diagnostics point at source text.
package source

import "fmt"

// Position is a single point in a source file, 1-indexed.
type Position struct {
	Line   int
	Column int
}

// String renders a position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Span is a half-open range [Start, End) in a single source file. Both AST
// and HIR nodes carry an optional Span for diagnostics; Span is never
// compared for node equality or identity.
type Span struct {
	File  string
	Start Position
	End   Position
}

// String renders a span as "file:line:column".
func (s Span) String() string {
	if s.File == "" {
		return s.Start.String()
	}
	return fmt.Sprintf("%s:%s", s.File, s.Start)
}

// IsZero reports whether the span was never set (e.g. a synthesized node).
func (s Span) IsZero() bool {
	return s.File == "" && s.Start.IsZero() && s.End.IsZero()
}

// Package diag collects and renders compiler diagnostics. Each diagnostic
// renders as a severity-and-position header followed by its message (no
// source line or caret is printed), and carries a severity tier so non-fatal
// hints (unused bindings, etc.) can share the collector with hard errors
// without being mistaken for them.
package diag

import (
	"fmt"
	"strings"

	"github.com/rogerflowey/rust-compiler-sub006/internal/source"
)

// Severity distinguishes diagnostics that abort the pipeline from advisory
// ones that do not.
type Severity int

const (
	// Error is a fatal diagnostic; pipeline.Run stops after the pass that
	// collected one when Options.StopOnFirstError is set.
	Error Severity = iota
	// Hint is advisory (e.g. an unused local) and never halts compilation.
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Kind names the category of a diagnostic for tests and tooling that want to
// match on something sturdier than the message text.
type Kind string

const (
	KindUnresolvedName      Kind = "unresolved-name"
	KindDuplicateDefinition Kind = "duplicate-definition"
	KindTypeMismatch        Kind = "type-mismatch"
	KindCircularDependency  Kind = "circular-dependency"
	KindNotAPlace           Kind = "not-a-place"
	KindImmutableAssign     Kind = "immutable-assign"
	KindNoSuchField         Kind = "no-such-field"
	KindNoSuchMethod        Kind = "no-such-method"
	KindAmbiguousMethod     Kind = "ambiguous-method"
	KindArityMismatch       Kind = "arity-mismatch"
	KindBreakOutsideLoop    Kind = "break-outside-loop"
	KindContinueOutsideLoop Kind = "continue-outside-loop"
	KindReturnOutsideFn     Kind = "return-outside-function"
	KindTraitImplMismatch   Kind = "trait-impl-mismatch"
	KindMissingTraitItem    Kind = "missing-trait-item"
	KindUnusedBinding       Kind = "unused-binding"
	KindInvalidCast         Kind = "invalid-cast"
	KindNotCallable         Kind = "not-callable"
	KindOther               Kind = "other"
)

// Diagnostic is one reported problem, anchored at a source span.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Span     source.Span

	// SecondarySpans points at other locations relevant to the same
	// diagnostic (e.g. a trait's declaration of an item an impl failed to
	// match, or each edge of a circular-dependency cycle). Empty for most
	// diagnostics.
	SecondarySpans []SecondarySpan
}

// SecondarySpan is one extra location attached to a Diagnostic, with a
// short label explaining what it points at.
type SecondarySpan struct {
	Span  source.Span
	Label string
}

func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic as a header naming its severity and starting
// position, then the message, then one note line per secondary span. It
// prints no source line and no caret: source.Span carries positions only.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder
	pos := d.Span.Start
	if d.Span.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", strings.ToUpper(d.Severity.String()[:1])+d.Severity.String()[1:], d.Span.File, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", strings.ToUpper(d.Severity.String()[:1])+d.Severity.String()[1:], pos.Line, pos.Column)
	}
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	for _, s := range d.SecondarySpans {
		spos := s.Span.Start
		if s.Span.File != "" {
			fmt.Fprintf(&sb, "\n  note: %s at %s:%d:%d", s.Label, s.Span.File, spos.Line, spos.Column)
		} else {
			fmt.Fprintf(&sb, "\n  note: %s at %d:%d", s.Label, spos.Line, spos.Column)
		}
	}
	return sb.String()
}

// Collector accumulates diagnostics across a whole pipeline run. It is not
// safe for concurrent use; each compilation owns exactly one.
type Collector struct {
	diags []*Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends a diagnostic.
func (c *Collector) Report(d *Diagnostic) {
	c.diags = append(c.diags, d)
}

// Errorf is a convenience constructor for a Severity Error diagnostic.
func (c *Collector) Errorf(kind Kind, span source.Span, format string, args ...any) {
	c.Report(&Diagnostic{Severity: Error, Kind: kind, Message: fmt.Sprintf(format, args...), Span: span})
}

// Hintf is a convenience constructor for a Severity Hint diagnostic.
func (c *Collector) Hintf(kind Kind, span source.Span, format string, args ...any) {
	c.Report(&Diagnostic{Severity: Hint, Kind: kind, Message: fmt.Sprintf(format, args...), Span: span})
}

// HasErrors reports whether any Severity Error diagnostic was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// All returns every collected diagnostic in report order.
func (c *Collector) All() []*Diagnostic {
	return c.diags
}

// Errors returns only the Severity Error diagnostics, in report order.
func (c *Collector) Errors() []*Diagnostic {
	out := make([]*Diagnostic, 0, len(c.diags))
	for _, d := range c.diags {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// Hints returns only the Severity Hint diagnostics, in report order.
func (c *Collector) Hints() []*Diagnostic {
	out := make([]*Diagnostic, 0, len(c.diags))
	for _, d := range c.diags {
		if d.Severity == Hint {
			out = append(out, d)
		}
	}
	return out
}

// FormatAll renders every collected diagnostic, numbering each one when
// there is more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostic(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

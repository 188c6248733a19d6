package check

import (
	"strings"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
)

// checkUnusedLocals implements the unused-binding hint pass: any Local never
// read by a Variable expression gets a Hint, never an Error, so it can never
// block a compilation. A leading underscore opts a binding out, the usual
// convention for an intentionally-ignored value.
func (c *Checker) checkUnusedLocals(locals []*hir.Local, used map[*hir.Local]bool) {
	for _, l := range locals {
		if used[l] || strings.HasPrefix(l.Name, "_") {
			continue
		}
		c.Diags.Hintf(diag.KindUnusedBinding, l.Span, "unused binding %q", l.Name)
	}
}

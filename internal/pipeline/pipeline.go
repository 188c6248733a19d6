// Package pipeline orchestrates the whole semantic analysis run: lowering,
// name resolution, type/constant finalization, bidirectional checking,
// control-flow linking, and trait-impl validation, in that order. The passes
// here are not independent Pass implementations behind a common interface:
// each one needs a different, concrete piece of shared state
// (finalize.Context, ImplTable) rather than a single generic PassContext, so
// Run simply calls each pass constructor directly in sequence.
package pipeline

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/cflow"
	"github.com/rogerflowey/rust-compiler-sub006/internal/check"
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/finalize"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/lowering"
	"github.com/rogerflowey/rust-compiler-sub006/internal/resolve"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
	"github.com/rogerflowey/rust-compiler-sub006/internal/traits"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// Options configures one pipeline run, threaded in from cmd/rustsubc's
// `check` subcommand flags.
type Options struct {
	// StopOnFirstError halts the pass sequence as soon as any pass reports
	// an Error-severity diagnostic, rather than running every later pass
	// against a program later passes may not be ready to see.
	StopOnFirstError bool
	// Hints controls whether Hint-severity diagnostics (e.g. unused
	// bindings) are kept in the result at all.
	Hints bool
}

// Result is everything a caller needs after one run: the lowered program
// (for tooling that wants to inspect it) and every diagnostic collected.
type Result struct {
	Program *hir.Program
	Diags   []*diag.Diagnostic
}

// Run lowers file and drives it through every pass in sequence, returning
// the collected diagnostics. The returned error is non-nil only for an
// internal InvariantViolation (a pipeline bug, not a problem with the input
// program); semantic errors are always reported through Result.Diags.
func Run(file *ast.File, opts Options) (result *Result, err error) {
	defer diag.Recover(&err)

	diags := diag.NewCollector()
	in := typeck.NewInterner()
	defIDs := hir.NewDefIDAllocator()
	root, impls, _ := scope.Predefined(in, defIDs)
	fin := finalize.NewContext(in, diags)

	prog := lowering.New(defIDs).Lower(file)

	resolve.New(diags, fin, impls).Run(prog, root)
	if opts.StopOnFirstError && diags.HasErrors() {
		return newResult(prog, diags, opts), nil
	}

	check.New(diags, fin, impls).Run(prog)
	if opts.StopOnFirstError && diags.HasErrors() {
		return newResult(prog, diags, opts), nil
	}

	cflow.New(diags).Run(prog)
	if opts.StopOnFirstError && diags.HasErrors() {
		return newResult(prog, diags, opts), nil
	}

	traits.New(diags).Run(prog)

	return newResult(prog, diags, opts), nil
}

func newResult(prog *hir.Program, diags *diag.Collector, opts Options) *Result {
	all := diags.All()
	if opts.Hints {
		return &Result{Program: prog, Diags: all}
	}
	out := make([]*diag.Diagnostic, 0, len(all))
	for _, d := range all {
		if d.Severity != diag.Hint {
			out = append(out, d)
		}
	}
	return &Result{Program: prog, Diags: out}
}

// Render formats every diagnostic in result, in report order, the way
// diag.FormatAll does for a single collector's worth.
func Render(result *Result, color bool) string {
	return diag.FormatAll(result.Diags, color)
}

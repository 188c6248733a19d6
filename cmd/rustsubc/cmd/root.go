package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rustsubc",
	Short: "Semantic checker for the Rust-subset systems language",
	Long: `rustsubc runs the semantic analysis pipeline — name resolution, type and
constant finalization, expression checking, control-flow linking, and
trait-impl validation — over a program and reports its diagnostics.

This binary has no lexer or parser of its own; the "check" subcommand
drives the pipeline over a small set of built-in sample programs (see
"rustsubc check --list") rather than reading source files from disk.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline-phase progress to stderr")
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/pipeline"
	"github.com/rogerflowey/rust-compiler-sub006/internal/samples"
	"github.com/spf13/cobra"
)

var (
	stopOnFirstError bool
	hintsMode        string
	color            bool
	listSamples      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [sample]",
	Short: "Run the semantic pipeline over a built-in sample program",
	Long: `Run the semantic analysis pipeline over one of the built-in sample
programs and print its diagnostics.

Examples:
  # List the available samples
  rustsubc check --list

  # Check the "undefined-name" sample
  rustsubc check undefined-name`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&stopOnFirstError, "stop-on-first-error", false, "halt the pass sequence at the first erroring pass")
	checkCmd.Flags().StringVar(&hintsMode, "hints", "on", "include Hint-severity diagnostics (on|off)")
	checkCmd.Flags().BoolVar(&color, "color", false, "colorize diagnostic output")
	checkCmd.Flags().BoolVar(&listSamples, "list", false, "list the available sample programs and exit")
}

func runCheck(_ *cobra.Command, args []string) error {
	if listSamples || len(args) == 0 {
		printSampleList()
		return nil
	}

	name := args[0]
	sample, ok := samples.Find(name)
	if !ok {
		return fmt.Errorf("no sample named %q; run \"rustsubc check --list\" to see the available samples", name)
	}

	var hints bool
	switch hintsMode {
	case "on":
		hints = true
	case "off":
		hints = false
	default:
		return fmt.Errorf("invalid --hints value %q; must be \"on\" or \"off\"", hintsMode)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "lowering %s...\n", name)
		fmt.Fprintln(os.Stderr, "resolving names...")
		fmt.Fprintln(os.Stderr, "checking expressions...")
		fmt.Fprintln(os.Stderr, "linking control flow...")
		fmt.Fprintln(os.Stderr, "validating trait impls...")
	}

	result, err := pipeline.Run(sample.Build(), pipeline.Options{
		StopOnFirstError: stopOnFirstError,
		Hints:            hints,
	})
	if err != nil {
		return fmt.Errorf("internal error while checking %q: %w", name, err)
	}

	if len(result.Diags) == 0 {
		fmt.Printf("%s: no diagnostics\n", name)
		return nil
	}

	fmt.Println(pipeline.Render(result, color))

	errorCount := 0
	for _, d := range result.Diags {
		if d.Severity == diag.Error {
			errorCount++
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%s: %d error(s)", name, errorCount)
	}
	return nil
}

func printSampleList() {
	var sb strings.Builder
	sb.WriteString("available samples:\n")
	for _, s := range samples.List() {
		fmt.Fprintf(&sb, "  %-16s %s\n", s.Name, s.Description)
	}
	fmt.Print(sb.String())
}

package main

import (
	"fmt"
	"os"

	"github.com/rogerflowey/rust-compiler-sub006/cmd/rustsubc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"flagren/internal/errors"
	"flagren/internal/log"
	"flagren/internal/shell"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// cobra skips post-run hooks when a command fails
	defer func() { _ = log.Default().Close() }()

	if err := rootCmd.Execute(); err != nil {
		// The shell has already told the user
		if errors.IsInvalidMode(err) {
			return shell.ExitCode(err)
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

package main

import (
	"fmt"
	"io"
	"os"

	"asteroidcli/internal/config"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and prints a single diagnostic line on failure
func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return err
	}
	return nil
}

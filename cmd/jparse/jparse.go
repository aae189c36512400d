// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Program jparse validates JSON documents. Each named input (or stdin, if
// none are named) is parsed, and failures are reported with a line:column
// diagnostic. The exit status is nonzero if any input was invalid.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/kmatt/jparse"
)

var quiet = flag.Bool("q", false, "Suppress output for valid inputs")

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	okLabel := color.GreenString("ok")
	fail := color.New(color.FgRed)

	var failed bool
	for _, name := range args {
		data, err := readInput(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jparse: %v\n", err)
			os.Exit(2)
		}
		if _, err := jparse.Parse(data); err != nil {
			failed = true
			fail.Fprintf(os.Stderr, "%s: %v\n", name, err)
		} else if !*quiet {
			fmt.Printf("%s: %s\n", name, okLabel)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

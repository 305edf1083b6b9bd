package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// printSuccess prints a green success line, falling back to plain text when
// stdout is not a terminal.
func printSuccess(message string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\x1b[1;32m%s\x1b[1;0m\n", message)
		return
	}

	fmt.Println(message)
}

package main

import (
	"fmt"
	"os"

	"overcall/internal/demo"
	"overcall/repl"
)

func main() {
	universe, err := demo.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build dispatch universe:", err)
		os.Exit(1)
	}

	if err := repl.Run(os.Stdin, os.Stdout, universe); err != nil {
		fmt.Fprintln(os.Stderr, "repl exited with error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"overcall/internal/demo"
	"overcall/repl"
)

func main() {
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("overcall.repl")

	universe, err := demo.New()
	if err != nil {
		log.Errorf("failed to build dispatch universe: %s", err)
		os.Exit(1)
	}

	fmt.Println("overcall demo REPL — try: add(1, 2)  combine(1, 2.0)  greet()")
	if err := repl.Run(os.Stdin, os.Stdout, universe); err != nil {
		log.Errorf("repl exited with error: %s", err)
		os.Exit(1)
	}
}

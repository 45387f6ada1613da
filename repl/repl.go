// Package repl drives the demo dispatch universe from a line-oriented
// input: parse one call-expression per line, dispatch it, print the result
// or a colorized diagnostic.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"overcall/grammar"
	"overcall/internal/demo"
	"overcall/internal/dispatcherrors"
	"overcall/internal/value"
)

const prompt = "overcall> "

// Run reads lines from in until EOF, dispatching each non-blank, non-comment
// line against u and writing results (or diagnostics) to out.
func Run(in io.Reader, out io.Writer, u *demo.Universe) error {
	reporter := dispatcherrors.NewReporter()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		program, err := grammar.ParseString("repl", line)
		if err != nil {
			continue // reportParseError already printed the diagnostic
		}

		for _, call := range program.Calls {
			evalCall(out, reporter, u, call)
		}
	}
	return scanner.Err()
}

func evalCall(out io.Writer, reporter *dispatcherrors.Reporter, u *demo.Universe, call *grammar.Call) {
	actuals := make([]value.Value, len(call.Args))
	for i, lit := range call.Args {
		v, err := literalToValue(lit)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		actuals[i] = v
	}

	result, err := u.Dispatch(call.Name, actuals)
	if err != nil {
		if coded, ok := err.(dispatcherrors.Coded); ok {
			fmt.Fprint(out, reporter.FormatPlain(coded))
		} else {
			fmt.Fprintln(out, err)
		}
		return
	}
	fmt.Fprintf(out, "=> %v\n", result)
}

func literalToValue(lit *grammar.Literal) (value.Value, error) {
	switch {
	case lit.Bool != nil:
		return *lit.Bool == "true", nil
	case lit.String != nil:
		unquoted, err := strconv.Unquote(*lit.String)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %s: %w", *lit.String, err)
		}
		return unquoted, nil
	case lit.Float != nil:
		f, err := strconv.ParseFloat(*lit.Float, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %s: %w", *lit.Float, err)
		}
		return f, nil
	case lit.Int != nil:
		n, err := strconv.ParseInt(*lit.Int, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad int literal %s: %w", *lit.Int, err)
		}
		return n, nil
	case lit.Ident != nil:
		return nil, fmt.Errorf("identifiers are not supported in this demo, got %q", *lit.Ident)
	default:
		return nil, fmt.Errorf("empty literal")
	}
}

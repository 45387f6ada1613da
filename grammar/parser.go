package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"overcall/internal/dispatcherrors"
)

// ParseString parses one REPL line (or a whole script) of the call-expression
// language into a Program.
func ParseString(name, source string) (*Program, error) {
	parser, err := participle.Build[Program](
		participle.Lexer(CallLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	program, err := parser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return program, nil
}

// syntaxError adapts a participle parse failure into the dispatcherrors.Coded
// shape, so a grammar failure renders through the same Reporter the dispatch
// core's own diagnostics use instead of a second, parallel printer.
type syntaxError struct {
	filename     string
	line, column int
	underlying   error
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("%s [%s]: %s at %s:%d:%d", dispatcherrors.Description(dispatcherrors.CodeSyntaxError), dispatcherrors.CodeSyntaxError, e.underlying, e.filename, e.line, e.column)
}

func (e *syntaxError) Code() string { return dispatcherrors.CodeSyntaxError }

var _ dispatcherrors.Coded = (*syntaxError)(nil)

// reportParseError renders a parse failure with dispatcherrors.Reporter,
// passing the offending source line and a caret underneath the failing
// column as the reporter's note lines rather than hand-rolling a second
// caret-printer next to the core's own.
func reportParseError(src string, err error) {
	reporter := dispatcherrors.NewReporter()

	pe, ok := err.(participle.Error)
	if !ok {
		fmt.Println(reporter.FormatPlain(&syntaxError{underlying: err}))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Println(reporter.FormatPlain(&syntaxError{filename: pos.Filename, underlying: err}))
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	coded := &syntaxError{filename: pos.Filename, line: pos.Line, column: pos.Column, underlying: fmt.Errorf("%s", pe.Message())}
	fmt.Println(reporter.Format(coded, []string{line, caret}, ""))
}

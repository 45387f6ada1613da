package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CallLexer tokenizes the demo call-expression language. Rule order matters:
// String/Float/Int/Ident must each be tried before Punctuation can mistake
// part of them for a lone symbol.
var CallLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"String", `"(\\.|[^"\\])*"`, nil},
		{"Float", `[0-9]+\.[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Punctuation", `[(),;]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

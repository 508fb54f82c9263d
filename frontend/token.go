package frontend

import (
	"github.com/isaacev/Kaleido/source"
)

// TokenSymbol is the classification system for tokens. Identifier and number
// tokens are represented by general token symbols (like "Identifier") while
// keyword and literal-character tokens are represented by their literal values
type TokenSymbol string

// Token structs represent a lexical atom and are tagged with a token symbol
// classification and source code line/column data. Number tokens also carry
// the converted floating-point value so that the lexer's scratch state travels
// with the token instead of living beside it
type Token struct {
	Symbol TokenSymbol
	Lexeme string
	Value  float64
	Span   source.Span
}

// The most common token symbols are defined as part of the "frontend" package.
// Keywords and literal-character tokens use their own lexeme as their symbol
const (
	EOFSymbol    TokenSymbol = "EOF"
	IdentSymbol  TokenSymbol = "Identifier"
	NumberSymbol TokenSymbol = "Number"
	DefSymbol    TokenSymbol = "def"
	ExternSymbol TokenSymbol = "extern"
)

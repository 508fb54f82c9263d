package frontend

import (
	"strconv"
	"strings"

	"github.com/isaacev/Kaleido/source"
)

// Lexer structs maintain state during the lexical analysis of a chunk of
// source code, generating a sequence of Tokens. The Lexer holds exactly one
// rune of lookahead which persists across calls because the scanning loops
// over-read by one rune to detect the end of an identifier or number
type Lexer struct {
	Scanner *Scanner
	Grammar *Grammar
	c       rune
	cPos    source.Pos
	eof     bool
}

// NewLexer is a constructor function that takes a source File and a Grammar
// and returns a reference to a newly minted Lexer struct
func NewLexer(file *source.File, grammar *Grammar) *Lexer {
	// The lookahead is primed with a single space so that the first call to
	// Next starts in the whitespace skip and performs the initial fetch
	return &Lexer{
		Scanner: NewScanner(file),
		Grammar: grammar,
		c:       ' ',
		cPos:    source.Pos{Line: 1, Col: 0},
	}
}

// fetch advances the lookahead rune. Once the scanner is exhausted the EOF
// flag stays set and the lookahead stops changing
func (l *Lexer) fetch() {
	l.c, l.cPos, l.eof = l.Scanner.Next()
}

// Next digests runes from the scanner and produces exactly one Token. The
// lexer never rejects input: runes that don't begin an identifier, number or
// comment are emitted as literal single-character tokens
func (l *Lexer) Next() (tok Token) {
	// The scan restarts here after a comment has been discarded. This is a
	// loop rather than self-recursion so that long runs of comment lines
	// can't grow the call stack
	for {
		// Skip whitespace between tokens
		for !l.eof && l.Grammar.isWhitespace(l.c) {
			l.fetch()
		}

		// Once the scanner is exhausted, emit an EOF token. Repeated calls
		// keep emitting EOF without consuming anything further
		if l.eof {
			span := source.Span{Start: l.cPos, End: l.cPos}
			return Token{Symbol: EOFSymbol, Lexeme: "<EOF>", Span: span}
		}

		if l.Grammar.isAlphabetical(l.c) {
			return l.lexWord()
		}

		if l.Grammar.isNumeric(l.c) || l.c == '.' {
			return l.lexNumber()
		}

		if l.Grammar.isCommentStart(l.c) {
			// Discard everything up to the end of the line. The terminating
			// newline is left in the lookahead so the whitespace skip
			// consumes it on the next pass
			for {
				l.fetch()

				if l.eof || l.c == '\n' || l.c == '\r' {
					break
				}
			}

			if l.eof {
				span := source.Span{Start: l.cPos, End: l.cPos}
				return Token{Symbol: EOFSymbol, Lexeme: "<EOF>", Span: span}
			}

			continue
		}

		// Any other rune is emitted as itself with the lexeme doubling as
		// the token symbol
		tok = Token{
			Symbol: TokenSymbol(string(l.c)),
			Lexeme: string(l.c),
			Span:   source.Span{Start: l.cPos, End: l.cPos},
		}

		l.fetch()
		return tok
	}
}

// Identifiers and Keywords
//  - match [A-Za-z][A-Za-z0-9]*
func (l *Lexer) lexWord() (tok Token) {
	var lexeme string
	var span source.Span

	span.Start = l.cPos

	for {
		// Append rune to lexeme and expand the token's span
		lexeme += string(l.c)
		span.End = l.cPos

		// The loop over-reads by one rune which becomes the lookahead for
		// the following call
		l.fetch()

		if l.eof {
			break
		}

		// Continue lexing while the upcoming rune is alphanumeric
		if l.Grammar.isAlphabetical(l.c) || l.Grammar.isNumeric(l.c) {
			continue
		}

		break
	}

	// Determine whether the word classifies as a keyword recognized by the
	// grammar. If it does, the lexeme doubles as the token symbol
	if l.Grammar.isKeyword(lexeme) {
		return Token{Symbol: TokenSymbol(lexeme), Lexeme: lexeme, Span: span}
	}

	return Token{Symbol: IdentSymbol, Lexeme: lexeme, Span: span}
}

// Number literals
//  - match [0-9.]+ and convert the longest valid prefix to a float
func (l *Lexer) lexNumber() (tok Token) {
	var lexeme string
	var span source.Span

	span.Start = l.cPos

	for {
		// Append rune to lexeme and expand the token's span
		lexeme += string(l.c)
		span.End = l.cPos

		l.fetch()

		if l.eof {
			break
		}

		// Continue lexing while the upcoming rune is a digit or a decimal
		// point. Malformed text like "3.1.4" is accumulated whole and
		// resolved by the conversion below
		if l.Grammar.isNumeric(l.c) || l.c == '.' {
			continue
		}

		break
	}

	return Token{
		Symbol: NumberSymbol,
		Lexeme: lexeme,
		Value:  numberValue(lexeme),
		Span:   span,
	}
}

// numberValue converts a number lexeme the way C's strtod would: conversion
// stops at the first syntactically invalid suffix and the valid prefix alone
// produces the value. "3.1.4" therefore yields 3.1 and a lone "." yields 0.
// This looseness is observable, documented behavior and is kept on purpose.
// Go's strconv.ParseFloat rejects trailing garbage outright, so the prefix is
// cut explicitly before conversion
func numberValue(lexeme string) float64 {
	if dot := strings.IndexByte(lexeme, '.'); dot >= 0 {
		if second := strings.IndexByte(lexeme[dot+1:], '.'); second >= 0 {
			lexeme = lexeme[:dot+1+second]
		}
	}

	value, _ := strconv.ParseFloat(lexeme, 64)
	return value
}

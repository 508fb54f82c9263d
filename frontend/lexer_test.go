package frontend

import (
	"testing"

	"github.com/isaacev/Kaleido/source"
)

func lex(src string) *Lexer {
	return NewLexer(source.NewFile("test.ks", src), NewGrammar())
}

// lexAll collects every token up to but not including the first EOF token
func lexAll(t *testing.T, src string) []Token {
	t.Helper()

	l := lex(src)
	var toks []Token

	for i := 0; ; i++ {
		tok := l.Next()

		if tok.Symbol == EOFSymbol {
			return toks
		}

		toks = append(toks, tok)

		if i > 1000 {
			t.Fatalf("lexer failed to reach EOF\nsource:\n%s", src)
		}
	}
}

func wantSymbols(t *testing.T, src string, want []TokenSymbol) []Token {
	t.Helper()

	got := lexAll(t, src)

	if len(got) != len(want) {
		t.Fatalf("source %q\nwant %d tokens, got %d: %+v", src, len(want), len(got), got)
	}

	for i, tok := range got {
		if tok.Symbol != want[i] {
			t.Fatalf("source %q\ntoken %d: want symbol %q, got %q (lexeme %q)",
				src, i, want[i], tok.Symbol, tok.Lexeme)
		}
	}

	return got
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	got := wantSymbols(t, "def extern foo bar9 defn", []TokenSymbol{
		DefSymbol, ExternSymbol, IdentSymbol, IdentSymbol, IdentSymbol,
	})

	if got[2].Lexeme != "foo" || got[3].Lexeme != "bar9" || got[4].Lexeme != "defn" {
		t.Fatalf("identifier lexemes wrong: %+v", got)
	}
}

func TestLexer_NumberConversion(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
		value  float64
	}{
		{"42", "42", 42},
		{"3.14", "3.14", 3.14},

		// A second decimal point terminates the valid prefix: conversion
		// silently yields the prefix value, mirroring strtod
		{"3.1.4", "3.1.4", 3.1},
		{"1.", "1.", 1},
		{".5", ".5", 0.5},
		{".", ".", 0},
		{"..5", "..5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := wantSymbols(t, tt.input, []TokenSymbol{NumberSymbol})

			if got[0].Lexeme != tt.lexeme {
				t.Fatalf("want lexeme %q, got %q", tt.lexeme, got[0].Lexeme)
			}

			if got[0].Value != tt.value {
				t.Fatalf("want value %v, got %v", tt.value, got[0].Value)
			}
		})
	}
}

func TestLexer_CommentsSkipped(t *testing.T) {
	got := wantSymbols(t, "# comment\n42", []TokenSymbol{NumberSymbol})

	if got[0].Value != 42 {
		t.Fatalf("want 42, got %v", got[0].Value)
	}

	// A comment that runs to end-of-stream produces no token at all
	wantSymbols(t, "# only a comment", []TokenSymbol{})

	// Consecutive comment lines restart the scan without recursing
	wantSymbols(t, "# one\n# two\r\n# three\nx", []TokenSymbol{IdentSymbol})
}

func TestLexer_EOFIdempotent(t *testing.T) {
	l := lex("x")

	if tok := l.Next(); tok.Symbol != IdentSymbol {
		t.Fatalf("want identifier, got %q", tok.Symbol)
	}

	// Requesting tokens past exhaustion keeps returning EOF without
	// consuming anything further
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Symbol != EOFSymbol {
			t.Fatalf("call %d past exhaustion: want EOF, got %q", i, tok.Symbol)
		}
	}
}

func TestLexer_LiteralCharacterTokens(t *testing.T) {
	got := wantSymbols(t, "a+b(c,d)!", []TokenSymbol{
		IdentSymbol,
		TokenSymbol("+"),
		IdentSymbol,
		TokenSymbol("("),
		IdentSymbol,
		TokenSymbol(","),
		IdentSymbol,
		TokenSymbol(")"),
		TokenSymbol("!"),
	})

	if got[1].Lexeme != "+" || got[8].Lexeme != "!" {
		t.Fatalf("literal-character lexemes wrong: %+v", got)
	}
}

func TestLexer_WhitespaceVarieties(t *testing.T) {
	wantSymbols(t, " \t\v\f\r\n 42 \r\n", []TokenSymbol{NumberSymbol})
}

func TestLexer_MaximalMunchLookahead(t *testing.T) {
	// The identifier loop over-reads one rune; it must survive as the
	// lookahead for the following token
	got := wantSymbols(t, "abc123+4", []TokenSymbol{
		IdentSymbol, TokenSymbol("+"), NumberSymbol,
	})

	if got[0].Lexeme != "abc123" {
		t.Fatalf("want lexeme %q, got %q", "abc123", got[0].Lexeme)
	}

	if got[2].Value != 4 {
		t.Fatalf("want 4, got %v", got[2].Value)
	}
}

func TestLexer_TokenSpans(t *testing.T) {
	got := lexAll(t, "ab\n cd")

	if len(got) != 2 {
		t.Fatalf("want 2 tokens, got %d", len(got))
	}

	want := []source.Span{
		{Start: source.Pos{Line: 1, Col: 1}, End: source.Pos{Line: 1, Col: 2}},
		{Start: source.Pos{Line: 2, Col: 2}, End: source.Pos{Line: 2, Col: 3}},
	}

	for i, tok := range got {
		if tok.Span != want[i] {
			t.Fatalf("token %d: want span %+v, got %+v", i, want[i], tok.Span)
		}
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	l := lex("")

	for i := 0; i < 2; i++ {
		if tok := l.Next(); tok.Symbol != EOFSymbol {
			t.Fatalf("want EOF on empty input, got %q", tok.Symbol)
		}
	}
}

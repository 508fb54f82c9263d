package frontend

// Grammar holds a collection of helper methods for classifying runes and
// keywords based on a given language specification. Classification is
// ASCII-range only; any rune outside the listed classes falls through to the
// lexer's literal-character handling
type Grammar struct {
	Keywords []string
}

// NewGrammar returns the default grammar with the keywords recognized by the
// language
func NewGrammar() *Grammar {
	return &Grammar{
		Keywords: []string{
			"def",
			"extern",
		},
	}
}

func (g *Grammar) isCommentStart(r rune) (matches bool) {
	return (r == '#')
}

func (g *Grammar) isWhitespace(r rune) (matches bool) {
	return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
}

func (g *Grammar) isAlphabetical(r rune) (matches bool) {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (g *Grammar) isNumeric(r rune) (matches bool) {
	return (r >= '0' && r <= '9')
}

// isKeyword returns true if a given string is included in the Grammar's list
// of valid keywords
func (g *Grammar) isKeyword(s string) (matches bool) {
	for i, l := 0, len(g.Keywords); i < l; i++ {
		if g.Keywords[i] == s {
			return true
		}
	}

	return false
}

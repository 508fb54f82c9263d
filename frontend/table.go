package frontend

// OpTable maps single-character binary operators to an integer precedence
// where a larger value binds tighter. Entries that are absent or non-positive
// mean "not a binary operator" as far as expression parsing is concerned. The
// table is deliberately mutable so user-defined operators can be registered
// before or between parses
type OpTable struct {
	prec map[rune]int
}

// NewOpTable returns a table seeded with the built-in binary operators
func NewOpTable() *OpTable {
	return &OpTable{
		prec: map[rune]int{
			'<': 10,
			'+': 20,
			'-': 20,
			'*': 40,
		},
	}
}

// Set registers or replaces the precedence of a single-character operator
func (t *OpTable) Set(op rune, precedence int) {
	t.prec[op] = precedence
}

// Lookup returns the precedence of an operator, or -1 if the rune has no
// positive precedence entry
func (t *OpTable) Lookup(op rune) (precedence int) {
	if precedence, ok := t.prec[op]; ok && precedence > 0 {
		return precedence
	}

	return -1
}

package source

// Pos identifies a single rune in a program by its one-based line and column.
// The column counts runes, not bytes
type Pos struct {
	Line int
	Col  int
}

// Span is the inclusive region between two positions. Tokens and AST nodes
// carry a Span so diagnostics can point back into the program text
type Span struct {
	Start Pos
	End   Pos
}

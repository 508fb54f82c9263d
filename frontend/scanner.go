package frontend

import (
	"unicode/utf8"

	"github.com/isaacev/Kaleido/source"
)

/**
 * # Handling of Line & File terminations
 *
 * The first character in each line is considered to be in column 1. A newline
 * at the end of a line with `N` characters is considered to be in column
 * `N + 1`.
 *
 * Exhaustion is signalled with an EOF flag instead of a sentinel rune. Once
 * the document is exhausted every subsequent call to `Next()` returns the EOF
 * flag again without advancing, so downstream consumers may keep pulling past
 * the end of the stream without special casing.
 */

// Scanner structs hold the state of a scanner instance which consumes source
// code runes one at a time. Since source code documents can be Unicode, the
// scanner must keep track of each rune's byte offset. The scanner also records
// line and column data which it emits along with each rune.
type Scanner struct {
	File     *source.File
	nextByte int // initialized to 0
	nextLine int // ...  ...  ...  1
	nextCol  int // ...  ...  ...  1
}

// NewScanner is a basic constructor function for Scanners which populates
// private fields with the appropriate starting values
func NewScanner(file *source.File) *Scanner {
	return &Scanner{
		File:     file,
		nextByte: 0,
		nextLine: 1,
		nextCol:  1,
	}
}

// Next returns the next rune, the rune's position and an end-of-file flag and
// advances the Scanner permanently. Once the document is exhausted, Next keeps
// returning a zero rune with the EOF flag set
func (s *Scanner) Next() (r rune, pos source.Pos, eof bool) {
	pos.Line = s.nextLine
	pos.Col = s.nextCol

	if s.nextByte >= len(s.File.Contents) {
		return 0, pos, true
	}

	// Extract the next rune from the document buffer
	runeValue, runeWidth := utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])

	// Update `nextLine`, `nextCol`
	if runeValue == '\n' {
		s.nextLine++
		s.nextCol = 1
	} else {
		s.nextCol++
	}

	// Update `nextByte` to account for byte width of this rune
	s.nextByte += runeWidth

	return runeValue, pos, false
}

package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/isaacev/Kaleido/source"
)

// Message is the interface for all diagnostics emitted by the stages of the
// pipeline. Text returns the bare description for log-style output while Make
// produces a fully rendered source code selection
type Message interface {
	Text() string
	Make(withColor bool) string
}

// Selection represents a region of the source code file along with a
// corresponding description that supplies information as to why an error
// occurred
type Selection struct {
	Description string
	Span        source.Span
}

// Error classification constants
const (
	SyntaxError string = "syntax error"
)

// Error messages are emitted when a construct cannot be parsed. The enclosing
// construct is abandoned but the overall pipeline continues
type Error struct {
	Classification string
	File           *source.File
	What           Selection
}

// Text returns the bare description with no source context attached
func (e Error) Text() string {
	return e.What.Description
}

// Make takes an Error and produces a fully rendered message with the option
// of using colors to make elements of the message more clear. The rendered
// message is returned as a single string and can then be output to stderr or
// some other destination
func (e Error) Make(withColor bool) string {
	color.NoColor = !withColor
	return makeMessage(e.Classification, e.File, e.What)
}

// makeMessage is a utility function which takes an error's parts and makes a
// rendered message of the form:
//
// error: <error classification>
//   --> <filename>:<line number>:<column number>
//    |
//  1 | <offending line of source code>
//    |  ^^^^^^^^^ <message detailing error>
//
func makeMessage(classification string, file *source.File, what Selection) string {
	redBold := color.New(color.FgRed, color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	gutter := utf8.RuneCountInString(fmt.Sprintf("%d", what.Span.End.Line))

	var lines []string

	lines = append(lines, redBold(fmt.Sprintf("error: %s", classification)))

	lines = append(lines, fmt.Sprintf(" %s%s %s:%d:%d",
		strings.Repeat(" ", gutter),
		blue("-->"),
		file.Filename,
		what.Span.Start.Line,
		what.Span.Start.Col))

	lines = append(lines, blue(fmt.Sprintf(" %s |", strings.Repeat(" ", gutter))))

	for lineNum := what.Span.Start.Line; lineNum <= what.Span.End.Line; lineNum++ {
		var srcLine string

		if lineNum-1 < len(file.Lines) {
			srcLine = strings.TrimRight(file.Lines[lineNum-1], "\r\n")
		}

		lines = append(lines, fmt.Sprintf(" %s %s %s",
			blue(fmt.Sprintf("%*d", gutter, lineNum)),
			blue("|"),
			srcLine))
	}

	// Underline width must be at least 1 character wide. Selections that
	// cross a line boundary only underline their first column
	width := (what.Span.End.Col + 1) - what.Span.Start.Col

	if width < 1 || what.Span.Start.Line != what.Span.End.Line {
		width = 1
	}

	leftPad := what.Span.Start.Col - 1

	if leftPad < 0 {
		leftPad = 0
	}

	lines = append(lines, fmt.Sprintf(" %s %s %s%s %s",
		strings.Repeat(" ", gutter),
		blue("|"),
		strings.Repeat(" ", leftPad),
		red(strings.Repeat("^", width)),
		red(what.Description)))

	return strings.Join(lines, "\n")
}

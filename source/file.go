package source

import (
	"strings"
)

// File represents a chunk of source code to be processed by the front-end. The
// "Contents" field is a raw string representation of the program text. The
// "Lines" field is a cached slice of the contents split by '\n' so that error
// messages aren't required to repeatedly split the contents.
type File struct {
	Filename string
	Contents string
	Lines    []string
}

// NewFile builds a File from a filename and the raw program text, caching the
// line slice used by diagnostic rendering
func NewFile(filename string, contents string) *File {
	return &File{
		Filename: filename,
		Contents: contents,
		Lines:    strings.SplitAfter(contents, "\n"),
	}
}

// FromArgs concatenates a list of program arguments into a single ordered
// character sequence separated by single spaces. The resulting File behaves
// exactly like one read from disk, which lets inline programs share the
// scanning and parsing pipeline
func FromArgs(args []string) *File {
	return NewFile("<args>", strings.Join(args, " "))
}

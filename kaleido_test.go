package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/isaacev/Kaleido/frontend"
	"github.com/isaacev/Kaleido/source"
)

func digestLines(t *testing.T, file *source.File) []string {
	t.Helper()

	var log bytes.Buffer
	digestFile(file, frontend.NewOpTable(), &log)

	out := strings.TrimRight(log.String(), "\n")

	if out == "" {
		return nil
	}

	return strings.Split(out, "\n")
}

func TestDigestFile_ReportLines(t *testing.T) {
	file := source.FromArgs([]string{
		"def foo(x) x+1", ";",
		"extern sin(a)", ";",
		"2+3",
	})

	want := []string{
		"Parsed a function definition.",
		"Parsed an extern",
		"Parsed a top-level expr",
	}

	if got := digestLines(t, file); !reflect.DeepEqual(got, want) {
		t.Fatalf("want lines %q, got %q", want, got)
	}
}

func TestDigestFile_LogErrorLine(t *testing.T) {
	want := []string{
		"LogError: Expected ')' or ',' in argument list",
	}

	if got := digestLines(t, source.NewFile("<args>", "foo(1,2")); !reflect.DeepEqual(got, want) {
		t.Fatalf("want lines %q, got %q", want, got)
	}
}

func TestDigestFile_ContinuesAfterFailure(t *testing.T) {
	// A failed construct never halts the loop; the stream is digested to
	// its end and later constructs still report
	file := source.NewFile("<args>", "def 1 ; extern sin(x)")

	want := []string{
		"LogError: Expected function name in prototype",
		"Parsed an extern",
	}

	if got := digestLines(t, file); !reflect.DeepEqual(got, want) {
		t.Fatalf("want lines %q, got %q", want, got)
	}
}

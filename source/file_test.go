package source

import (
	"reflect"
	"testing"
)

func TestNewFile_CachesLines(t *testing.T) {
	f := NewFile("test.ks", "def foo(x) x\nfoo(1)\n")

	want := []string{"def foo(x) x\n", "foo(1)\n", ""}

	if !reflect.DeepEqual(f.Lines, want) {
		t.Fatalf("want lines %q, got %q", want, f.Lines)
	}
}

func TestFromArgs_SingleSpaceSeparator(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"def foo(x)", "x+1"}, "def foo(x) x+1"},
		{[]string{"42"}, "42"},
		{[]string{}, ""},
	}

	for _, tt := range tests {
		f := FromArgs(tt.args)

		if f.Contents != tt.want {
			t.Fatalf("args %q: want contents %q, got %q", tt.args, tt.want, f.Contents)
		}

		if f.Filename != "<args>" {
			t.Fatalf("want filename %q, got %q", "<args>", f.Filename)
		}
	}
}

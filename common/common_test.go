package common

import (
	"runtime"
	"testing"

	protocol "github.com/gluax-lang/lsp"
)

func TestStackOrder(t *testing.T) {
	s := NewStack(0)
	s.Push(2)
	s.Push(4)
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if top, _ := s.Peek(); top != 4 {
		t.Errorf("Peek() = %d, want 4", top)
	}
	for _, want := range []int{4, 2, 0} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %v; want %d, true", got, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty stack reported ok")
	}
	if !s.Empty() {
		t.Error("stack should be empty")
	}
}

func TestSpanToRange(t *testing.T) {
	span := SpanNew(3, 3, 5, 9)
	rng := span.ToRange()
	if rng.Start.Line != 2 || rng.Start.Character != 4 {
		t.Errorf("start = %+v, want line 2 char 4", rng.Start)
	}
	if rng.End.Line != 2 || rng.End.Character != 9 {
		t.Errorf("end = %+v, want line 2 char 9", rng.End)
	}
}

func TestSpanContains(t *testing.T) {
	span := SpanNew(2, 2, 3, 6)
	tests := []struct {
		pos  protocol.Position
		want bool
	}{
		{protocol.Position{Line: 1, Character: 2}, true},
		{protocol.Position{Line: 1, Character: 5}, true},
		{protocol.Position{Line: 1, Character: 1}, false},
		{protocol.Position{Line: 1, Character: 6}, false},
		{protocol.Position{Line: 0, Character: 3}, false},
	}
	for _, tt := range tests {
		if got := span.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestURIRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths only")
	}
	path := "/tmp/my project/app.loto"
	uri := FilePathToURI(path)
	if uri != "file:///tmp/my%20project/app.loto" {
		t.Fatalf("FilePathToURI() = %q", uri)
	}
	back, err := URIToFilePath(uri)
	if err != nil {
		t.Fatal(err)
	}
	if back != path {
		t.Errorf("URIToFilePath() = %q, want %q", back, path)
	}
}

func TestReplaceExt(t *testing.T) {
	if got := ReplaceExt("examples/hello.loto", ".js"); got != "examples/hello.js" {
		t.Errorf("ReplaceExt() = %q", got)
	}
}

package scanner

import (
	"errors"
	"testing"

	"github.com/rufum-lang/rufum/source"
)

func TestSkipDiscardsSpacesAndComments(t *testing.T) {
	src := source.NewSlice([]byte("  # a comment\nx"))
	if err := skip(src); err != nil {
		t.Fatalf("skip: %v", err)
	}
	c, err := src.GetChar()
	if err != nil || c != '\n' {
		t.Fatalf("GetChar after skip = (%v,%v), want ('\\n', nil)", c, err)
	}
}

// P6 — nested block comments: only the outermost '{' opens the comment and
// only the matching '}' at depth 0 closes it.
func TestSkipNestedBlockComment(t *testing.T) {
	src := source.NewSlice([]byte("{a{b{c}d}e}x"))
	if err := skip(src); err != nil {
		t.Fatalf("skip: %v", err)
	}
	c, err := src.GetChar()
	if err != nil || c != 'x' {
		t.Fatalf("GetChar after skip = (%v,%v), want ('x', nil)", c, err)
	}
}

func TestSkipUnterminatedBlockComment(t *testing.T) {
	src := source.NewSlice([]byte("{a{b"))
	err := skip(src)
	var ce *commentError
	if !errors.As(err, &ce) {
		t.Fatalf("skip error = %v, want *commentError", err)
	}
	if ce.line != 1 || ce.col != 1 {
		t.Fatalf("commentError position = (%d,%d), want (1,1)", ce.line, ce.col)
	}
}

func TestSkipUnterminatedLineComment(t *testing.T) {
	src := source.NewSlice([]byte("   # no newline"))
	err := skip(src)
	var ce *commentError
	if !errors.As(err, &ce) {
		t.Fatalf("skip error = %v, want *commentError", err)
	}
	if ce.line != 1 || ce.col != 4 {
		t.Fatalf("commentError position = (%d,%d), want (1,4)", ce.line, ce.col)
	}
}

// Spaces followed by a backslash are absorbed as a continuation; the byte
// after the backslash (here a newline) is left for the next read.
func TestTrySkipContinuationSucceeds(t *testing.T) {
	src := source.NewSlice([]byte("  \\\nrest"))
	skipped, err := trySkipContinuation(src)
	if err != nil {
		t.Fatalf("trySkipContinuation: %v", err)
	}
	if !skipped {
		t.Fatalf("skipped = false, want true")
	}
	c, err := src.GetChar()
	if err != nil || c != '\n' {
		t.Fatalf("GetChar after successful continuation = (%v,%v), want ('\\n', nil)", c, err)
	}
}

// P7 — continuation idempotence: a newline followed by spaces and a
// non-backslash byte leaves the stream exactly as it was before the
// newline was read.
func TestTrySkipContinuationFailsAndRestores(t *testing.T) {
	const rest = "  xyz"
	// trySkipContinuation is only ever called by skip right after it has
	// read the leading '\n' itself, so the fixture does the same: consume
	// a real newline first (populating the newline-column stack) before
	// driving trySkipContinuation on what follows it.
	src := source.NewSlice([]byte("\n" + rest))
	if c, err := src.GetChar(); err != nil || c != '\n' {
		t.Fatalf("setup GetChar = (%v,%v), want ('\\n', nil)", c, err)
	}
	before := readerState{line: src.Line(), col: src.Column()}

	skipped, err := trySkipContinuation(src)
	if err != nil {
		t.Fatalf("trySkipContinuation: %v", err)
	}
	if skipped {
		t.Fatalf("skipped = true, want false")
	}
	after := readerState{line: src.Line(), col: src.Column()}
	if after.line != before.line-1 {
		t.Fatalf("line after failed continuation = %d, want %d (the '\\n' was pushed back)", after.line, before.line-1)
	}

	// replaying must reproduce the pushed-back '\n' followed by the exact
	// original bytes, in order.
	want := "\n" + rest
	got := make([]byte, 0, len(want))
	for i := 0; i < len(want); i++ {
		c, err := src.GetChar()
		if err != nil {
			t.Fatalf("GetChar #%d: %v", i, err)
		}
		got = append(got, byte(c))
	}
	if string(got) != want {
		t.Fatalf("replayed bytes = %q, want %q", got, want)
	}
}

type readerState struct{ line, col uint64 }

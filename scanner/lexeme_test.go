package scanner

import (
	"testing"

	"github.com/rufum-lang/rufum/source"
)

// lexeme grows its backing array in fixed l.step increments rather than via
// append's amortized doubling, so the step stays directly observable on the
// cap after each growth.
func TestLexemeGrowsByStep(t *testing.T) {
	const step = 4
	l := newLexeme(step)
	l.start(source.NewSlice(nil))

	if cap(l.text) != 0 {
		t.Fatalf("initial cap = %d, want 0", cap(l.text))
	}
	for i := 0; i < step; i++ {
		l.append('x')
	}
	if cap(l.text) != step {
		t.Fatalf("cap after %d appends = %d, want %d", step, cap(l.text), step)
	}
	l.append('x')
	if cap(l.text) != 2*step {
		t.Fatalf("cap after %d appends = %d, want %d", step+1, cap(l.text), 2*step)
	}
}

// newLexeme falls back to defaultLexemeStep for a non-positive step.
func TestLexemeDefaultStep(t *testing.T) {
	l := newLexeme(0)
	if l.step != defaultLexemeStep {
		t.Fatalf("step = %d, want defaultLexemeStep (%d)", l.step, defaultLexemeStep)
	}
}

// WithLexemeStep must actually reach the Scanner's lexeme, not just be
// accepted and ignored.
func TestWithLexemeStepOption(t *testing.T) {
	s := New(source.NewSlice([]byte("x")), WithLexemeStep(8))
	if s.lx.step != 8 {
		t.Fatalf("s.lx.step = %d, want 8", s.lx.step)
	}
}

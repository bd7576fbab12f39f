package token_test

import (
	"testing"

	"github.com/rufum-lang/rufum/token"
)

func TestNumKindRoundTrip(t *testing.T) {
	bases := []token.Base{token.Bin, token.Oct, token.Dec, token.Hex}
	forms := []token.Form{token.IntForm, token.FltForm}
	tags := []token.ErrTag{token.ErrNone, token.ErrDot, token.ErrCom, token.ErrSeq, token.ErrSuf}

	seen := make(map[token.Kind]bool)
	for _, b := range bases {
		for _, f := range forms {
			for _, e := range tags {
				k := token.NumKind(b, f, e)
				if seen[k] {
					t.Fatalf("kind %v (%v %v %v) collides with a previous triple", k, b, f, e)
				}
				seen[k] = true

				gb, gf, ge, ok := k.Decompose()
				if !ok {
					t.Fatalf("Decompose(%v): ok = false, want true", k)
				}
				if gb != b || gf != f || ge != e {
					t.Errorf("Decompose(%v) = %v, %v, %v; want %v, %v, %v", k, gb, gf, ge, b, f, e)
				}
			}
		}
	}
	if len(seen) != 40 {
		t.Errorf("got %d distinct numeric kinds, want 40", len(seen))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    token.Kind
		want string
	}{
		{token.Lowercase, "LOWERCASE"},
		{token.Uppercase, "UPPERCASE"},
		{token.EOL, "EOL"},
		{token.End, "END"},
		{token.BadComment, "BAD_COM"},
		{token.BadMLComment, "BAD_ML_COM"},
		{token.Unknown, "UNKNOWN"},
		{token.NumKind(token.Bin, token.IntForm, token.ErrNone), "BIN_INT"},
		{token.NumKind(token.Dec, token.FltForm, token.ErrSuf), "DEC_FLT_SUF"},
		{token.NumKind(token.Hex, token.IntForm, token.ErrSeq), "HEX_INT_SEQ"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestKindNotNumeric(t *testing.T) {
	for _, k := range []token.Kind{token.Lowercase, token.Uppercase, token.EOL, token.End, token.BadComment, token.BadMLComment, token.Unknown} {
		if k.IsNumeric() {
			t.Errorf("%v.IsNumeric() = true, want false", k)
		}
	}
}

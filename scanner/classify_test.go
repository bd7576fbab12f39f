package scanner

import (
	"testing"

	"github.com/rufum-lang/rufum/source"
	"github.com/rufum-lang/rufum/token"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(source.Char) bool
		yes  string
		no   string
	}{
		{"isLower", isLower, "abcxyz", "ABC019_? \n"},
		{"isUpper", isUpper, "ABCXYZ", "abc019_? \n"},
		{"isBin", isBin, "01", "23456789abcxyz"},
		{"isOct", isOct, "01234567", "89abcxyz"},
		{"isDec", isDec, "0123456789", "abcxyz?_"},
		{"isHex", isHex, "0123456789abcdefABCDEF", "ghijGHIJ?_ \n"},
		{"isFollowing", isFollowing, "abcXYZ019?_", " \n.,{}#"},
		{"isSufBin", isSufBin, "abc23456789?_", "01 \n.,"},
		{"isSufOct", isSufOct, "abc89?_", "01234567 \n.,"},
		{"isSufDec", isSufDec, "abc?_", "0123456789 \n.,"},
		{"isSufHex", isSufHex, "ghijGHIJ?_", "abcdef0123456789 \n.,"},
		{"isSuffix", isSuffix, "abc019?_,.", " \n{}#"},
		{"isSequence", isSequence, ".,", "abc019 \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, b := range []byte(tt.yes) {
				if !tt.fn(source.Char(b)) {
					t.Errorf("%s(%q) = false, want true", tt.name, b)
				}
			}
			for _, b := range []byte(tt.no) {
				if tt.fn(source.Char(b)) {
					t.Errorf("%s(%q) = true, want false", tt.name, b)
				}
			}
			if tt.fn(source.End) {
				t.Errorf("%s(End) = true, want false", tt.name)
			}
		})
	}
}

func TestBaseDigitAndSuf(t *testing.T) {
	for _, b := range []token.Base{token.Bin, token.Oct, token.Dec, token.Hex} {
		if baseDigit(b) == nil || baseSuf(b) == nil {
			t.Fatalf("baseDigit/baseSuf(%v) returned nil", b)
		}
	}
	if !baseDigit(token.Hex)(source.Char('f')) {
		t.Errorf("baseDigit(Hex)('f') = false, want true")
	}
	if !baseSuf(token.Oct)(source.Char('9')) {
		t.Errorf("baseSuf(Oct)('9') = false, want true (8/9 are oct suffix starters)")
	}
}

// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package token

//go:generate stringer -type Kind

// Kind identifies the lexical class of a Unit.
//
// Numeric kinds have no named constants: they are obtained with NumKind
// from a (Base, Form, ErrTag) triple and print as base + form (+ error
// tag), e.g. BIN_INT, DEC_FLT, HEX_INT_SUF. A kind with ErrNone denotes a
// well-formed literal; ErrDot/ErrCom/ErrSeq/ErrSuf tag the four
// malformed-construct families described on the ErrTag constants.
//
type Kind int

// Base identifies a numeric literal's base.
//
type Base int

// Recognized numeric bases.
//
const (
	Bin Base = iota
	Oct
	Dec
	Hex
)

// String returns the conventional prefix-free name of a base ("bin", "oct", "dec", "hex").
//
func (b Base) String() string {
	switch b {
	case Bin:
		return "bin"
	case Oct:
		return "oct"
	case Dec:
		return "dec"
	case Hex:
		return "hex"
	default:
		return "base?"
	}
}

// Form distinguishes integer from fractional numeric literals.
//
type Form int

const (
	IntForm Form = iota
	FltForm
)

// ErrTag marks why a numeric literal is malformed; ErrNone means well-formed.
//
type ErrTag int

const (
	ErrNone ErrTag = iota
	ErrDot            // trailing dot, or a second dot in a fraction, e.g. "3." or "3.1.2"
	ErrCom            // trailing comma, e.g. "3," or "3.1,"
	ErrSeq            // a dot/comma directly followed by another dot/comma
	ErrSuf            // an identifier-like run following an otherwise valid literal
)

// Reserved, non-numeric kinds.
//
const (
	Lowercase Kind = iota // a lowercase identifier
	Uppercase             // an uppercase identifier
	EOL                   // a single newline
	End                   // end of input
	BadComment            // "#" comment not terminated by a newline
	BadMLComment          // "{" comment not terminated before end of input
	Unknown               // a single byte that starts no other token

	numericBase // sentinel: numeric kinds start here
)

// numKinds holds the 40 (base, form, errTag) numeric kinds, indexed by
// kindIndex(base, form, errTag). Populated by init from a single table so
// that the bin/oct/dec/hex families stay in lockstep instead of being
// typed out four times over (see DESIGN.md, "token package").
var numKinds [4 * 2 * 5]Kind

func kindIndex(b Base, f Form, e ErrTag) int {
	return (int(b)*2+int(f))*5 + int(e)
}

func init() {
	for i := range numKinds {
		numKinds[i] = numericBase + Kind(i)
	}
}

// NumKind returns the Kind for a given base, form and error tag.
//
func NumKind(b Base, f Form, e ErrTag) Kind {
	return numKinds[kindIndex(b, f, e)]
}

// Decompose returns the (base, form, errTag) triple for a numeric Kind.
// ok is false if k is not a numeric kind.
//
func (k Kind) Decompose() (b Base, f Form, e ErrTag, ok bool) {
	i := int(k - numericBase)
	if i < 0 || i >= len(numKinds) {
		return 0, 0, 0, false
	}
	e = ErrTag(i % 5)
	i /= 5
	f = Form(i % 2)
	i /= 2
	b = Base(i)
	return b, f, e, true
}

// IsNumeric reports whether k is one of the 40 numeric kinds.
//
func (k Kind) IsNumeric() bool {
	_, _, _, ok := k.Decompose()
	return ok
}

var errTagSuffix = [...]string{"", "_DOT", "_COM", "_SEQ", "_SUF"}

// String renders k the way the original lexer names its tokens, e.g.
// "BIN_INT", "DEC_FLT_SUF", "LOWERCASE", "EOL".
//
func (k Kind) String() string {
	switch k {
	case Lowercase:
		return "LOWERCASE"
	case Uppercase:
		return "UPPERCASE"
	case EOL:
		return "EOL"
	case End:
		return "END"
	case BadComment:
		return "BAD_COM"
	case BadMLComment:
		return "BAD_ML_COM"
	case Unknown:
		return "UNKNOWN"
	}
	if b, f, e, ok := k.Decompose(); ok {
		form := "INT"
		if f == FltForm {
			form = "FLT"
		}
		base := map[Base]string{Bin: "BIN", Oct: "OCT", Dec: "DEC", Hex: "HEX"}[b]
		return base + "_" + form + errTagSuffix[e]
	}
	return "Kind(?)"
}

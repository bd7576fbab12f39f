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

package scanner

import (
	"github.com/rufum-lang/rufum/source"
	"github.com/rufum-lang/rufum/token"
)

// stateFn is one DFA state: given the byte just read, it decides whether to
// continue (next) or accept the lexeme scanned so far. A state is a value,
// not a dispatch-table index, so the parameterized base families below can
// build their five states as closures over a single (base, digit-predicate,
// suffix-predicate) triple instead of being typed out four times.
//
type stateFn func(c source.Char) step

// acceptMode distinguishes the ordinary accept rule (the triggering byte is
// pushed back, unconsumed) from the three single-step exceptions the
// initial state can produce: EOL, UNKNOWN and END each consume or emit
// without any pushback.
//
type acceptMode int

const (
	modePushback acceptMode = iota // default: accept, push c back
	modeConsume                    // EOL/UNKNOWN: c is itself the lexeme
	modeEmpty                      // END: lexeme is empty, nothing to push back
)

// step is the result of feeding a byte to a stateFn. next == nil means this
// is a terminal accept; kind/mode are only meaningful then.
//
type step struct {
	next stateFn
	kind token.Kind
	mode acceptMode
}

func cont(f stateFn) step { return step{next: f} }

func accept(k token.Kind) step { return step{kind: k, mode: modePushback} }

func acceptConsume(k token.Kind) step { return step{kind: k, mode: modeConsume} }

func acceptEmpty(k token.Kind) step { return step{kind: k, mode: modeEmpty} }

// initial is the state invoked with the first byte read after skip.
//
func initial(c source.Char) step {
	switch {
	case isLower(c):
		return cont(stateLower)
	case isUpper(c):
		return cont(stateUpper)
	case c == '0':
		return cont(stateZero)
	case isDec(c): // non-zero, '0' already handled above
		return cont(decFamily.stateInt)
	case c == '\n':
		return acceptConsume(token.EOL)
	case c == source.End:
		return acceptEmpty(token.End)
	default:
		return acceptConsume(token.Unknown)
	}
}

// stateLower / stateUpper: identifier bodies, greedy on is_following.
//
func stateLower(c source.Char) step {
	if isFollowing(c) {
		return cont(stateLower)
	}
	return accept(token.Lowercase)
}

func stateUpper(c source.Char) step {
	if isFollowing(c) {
		return cont(stateUpper)
	}
	return accept(token.Uppercase)
}

// stateZero: a leading '0' is either a lone decimal integer or the prefix
// of a based literal.
//
func stateZero(c source.Char) step {
	switch {
	case isDec(c):
		return cont(decFamily.stateInt)
	case c == '.':
		return cont(decFamily.stateIntDot)
	case c == ',':
		return cont(decFamily.stateIntComma)
	case c == 'b':
		return cont(statePrefix(binFamily))
	case c == 'o':
		return cont(statePrefix(octFamily))
	case c == 'x':
		return cont(statePrefix(hexFamily))
	default:
		return accept(token.NumKind(token.Dec, token.IntForm, token.ErrNone))
	}
}

// statePrefix builds the S_bin_prefix/S_oct_prefix/S_hex_prefix state for
// family nf: a digit of that base continues the literal in its own base; a
// decimal suffix-starter reinterprets the prefix as decimal zero followed
// by a malformed tail (S_dec_int_suf) — the decimal predicate is used here
// uniformly across all three bases, not nf's own, since the prefix itself
// is being reinterpreted as a decimal literal, not as a based one; anything
// else accepts DEC_INT_SUF on the prefix alone.
//
func statePrefix(nf numFamily) stateFn {
	return func(c source.Char) step {
		switch {
		case nf.digit(c):
			return cont(nf.stateInt)
		case isSufDec(c):
			return cont(decFamily.stateIntSuf)
		default:
			return accept(token.NumKind(token.Dec, token.IntForm, token.ErrSuf))
		}
	}
}

// numFamily bundles one numeric base's digit/suffix predicates with its
// kind constructor, letting the five-state-per-form pattern be written
// once and instantiated four times (bin, oct, dec, hex) instead of typed
// out by hand.
//
type numFamily struct {
	base  token.Base
	digit func(source.Char) bool
	suf   func(source.Char) bool
}

func newNumFamily(b token.Base) numFamily {
	return numFamily{base: b, digit: baseDigit(b), suf: baseSuf(b)}
}

func (nf numFamily) kind(f token.Form, e token.ErrTag) token.Kind {
	return token.NumKind(nf.base, f, e)
}

var (
	binFamily = newNumFamily(token.Bin)
	octFamily = newNumFamily(token.Oct)
	decFamily = newNumFamily(token.Dec)
	hexFamily = newNumFamily(token.Hex)
)

// --- integer-body states: S_B_int, S_B_int_dot, S_B_int_comma, S_B_int_seq, S_B_int_suf ---

func (nf numFamily) stateInt(c source.Char) step {
	switch {
	case nf.digit(c):
		return cont(nf.stateInt)
	case c == '.':
		return cont(nf.stateIntDot)
	case c == ',':
		return cont(nf.stateIntComma)
	case nf.suf(c):
		return cont(nf.stateIntSuf)
	default:
		return accept(nf.kind(token.IntForm, token.ErrNone))
	}
}

func (nf numFamily) stateIntDot(c source.Char) step {
	switch {
	case nf.digit(c):
		return cont(nf.stateFloat) // promote to fractional
	case isSequence(c):
		return cont(nf.stateIntSeq)
	case nf.suf(c):
		return cont(nf.stateFloatSuf)
	default:
		return accept(nf.kind(token.IntForm, token.ErrDot))
	}
}

func (nf numFamily) stateIntComma(c source.Char) step {
	switch {
	case nf.digit(c):
		return cont(nf.stateInt)
	case isSequence(c):
		return cont(nf.stateIntSeq)
	case nf.suf(c):
		return cont(nf.stateIntSuf)
	default:
		return accept(nf.kind(token.IntForm, token.ErrCom))
	}
}

func (nf numFamily) stateIntSeq(c source.Char) step {
	if isSuffix(c) {
		return cont(nf.stateIntSeq)
	}
	return accept(nf.kind(token.IntForm, token.ErrSeq))
}

func (nf numFamily) stateIntSuf(c source.Char) step {
	if isSuffix(c) {
		return cont(nf.stateIntSuf)
	}
	return accept(nf.kind(token.IntForm, token.ErrSuf))
}

// --- float-body states: the same five-state pattern, post-dot ---

func (nf numFamily) stateFloat(c source.Char) step {
	switch {
	case nf.digit(c):
		return cont(nf.stateFloat)
	case c == '.':
		return cont(nf.stateFloatDot)
	case c == ',':
		return cont(nf.stateFloatComma)
	case nf.suf(c):
		return cont(nf.stateFloatSuf)
	default:
		return accept(nf.kind(token.FltForm, token.ErrNone))
	}
}

func (nf numFamily) stateFloatDot(c source.Char) step {
	if isSuffix(c) {
		return cont(nf.stateFloatDot)
	}
	return accept(nf.kind(token.FltForm, token.ErrDot))
}

func (nf numFamily) stateFloatComma(c source.Char) step {
	switch {
	case nf.digit(c):
		return cont(nf.stateFloat)
	case isSequence(c):
		return cont(nf.stateFloatSeq)
	case nf.suf(c):
		return cont(nf.stateFloatSuf)
	default:
		return accept(nf.kind(token.FltForm, token.ErrCom))
	}
}

func (nf numFamily) stateFloatSeq(c source.Char) step {
	if isSuffix(c) {
		return cont(nf.stateFloatSeq)
	}
	return accept(nf.kind(token.FltForm, token.ErrSeq))
}

func (nf numFamily) stateFloatSuf(c source.Char) step {
	if isSuffix(c) {
		return cont(nf.stateFloatSuf)
	}
	return accept(nf.kind(token.FltForm, token.ErrSuf))
}

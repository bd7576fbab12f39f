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

// Character classifiers take a source.Char rather than a plain byte so that
// source.End (-1) fails every one of them instead of wrapping around as an
// out-of-range byte value — the DFA states never need a separate "is this
// End" branch of their own because of it.

func isLower(c source.Char) bool { return c >= 'a' && c <= 'z' }

func isUpper(c source.Char) bool { return c >= 'A' && c <= 'Z' }

func isLetter(c source.Char) bool { return isLower(c) || isUpper(c) }

func isBin(c source.Char) bool { return c == '0' || c == '1' }

func isOct(c source.Char) bool { return c >= '0' && c <= '7' }

func isDec(c source.Char) bool { return c >= '0' && c <= '9' }

func isHex(c source.Char) bool {
	return isDec(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isFollowing reports whether c can continue an identifier started by a
// lowercase or uppercase letter.
//
func isFollowing(c source.Char) bool {
	return isLower(c) || isUpper(c) || isDec(c) || c == '?' || c == '_'
}

// isSuf{Base} reports whether c is a "suffix starter": an identifier-like
// character that is not itself a valid digit of the given base, and so
// renders an otherwise-numeric literal malformed.
//
// Each is (identifier chars) minus (valid digits for that base); see
// categories.i.c in the original source for the base case this mirrors.

func isSufBin(c source.Char) bool {
	return isLetter(c) || (c >= '2' && c <= '9') || c == '?' || c == '_'
}

func isSufOct(c source.Char) bool {
	return isLetter(c) || c == '8' || c == '9' || c == '?' || c == '_'
}

func isSufDec(c source.Char) bool {
	return isLetter(c) || c == '?' || c == '_'
}

func isSufHex(c source.Char) bool {
	return (c >= 'g' && c <= 'z') || (c >= 'G' && c <= 'Z') || c == '?' || c == '_'
}

// isSuffix reports whether c continues a malformed-number run; the _SEQ/_SUF
// states absorb everything matching this predicate, greedily, rather than
// stopping at the narrower is_following set (see DESIGN.md).
//
func isSuffix(c source.Char) bool {
	return isLetter(c) || isDec(c) || c == '?' || c == '_' || c == ',' || c == '.'
}

// isSequence reports whether c is a punctuator that can start a "sequence
// error" (two dots/commas in a row).
//
func isSequence(c source.Char) bool { return c == '.' || c == ',' }

// baseDigit and baseSuf return the digit and suffix-starter predicates for
// a given numeric base, letting the four base families share one set of
// state constructors (state.go) instead of being typed out four times.
//
func baseDigit(b token.Base) func(source.Char) bool {
	switch b {
	case token.Bin:
		return isBin
	case token.Oct:
		return isOct
	case token.Hex:
		return isHex
	default:
		return isDec
	}
}

func baseSuf(b token.Base) func(source.Char) bool {
	switch b {
	case token.Bin:
		return isSufBin
	case token.Oct:
		return isSufOct
	case token.Hex:
		return isSufHex
	default:
		return isSufDec
	}
}

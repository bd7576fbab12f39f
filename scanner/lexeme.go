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

import "github.com/rufum-lang/rufum/source"

const defaultLexemeStep = 32

// lexeme accumulates the bytes of the token currently being scanned, along
// with the (line, column) of its first byte. It grows in fixed steps
// rather than relying on append's own (larger, amortized) growth policy,
// so the buffer's allocation pattern stays observable and controllable.
//
type lexeme struct {
	text         []byte
	line, column uint64
	step         int
}

func newLexeme(step int) *lexeme {
	if step <= 0 {
		step = defaultLexemeStep
	}
	return &lexeme{step: step}
}

// start resets l and snapshots src's current position as the lexeme's
// starting position.
//
func (l *lexeme) start(src *source.Source) {
	l.text = l.text[:0]
	l.line = src.Line()
	l.column = src.Column()
}

// startAt resets l with an explicit starting position, used when skip has
// already consumed bytes before the caller could snapshot the position
// itself (e.g. the "#" of an unterminated comment).
//
func (l *lexeme) startAt(line, column uint64) {
	l.text = l.text[:0]
	l.line, l.column = line, column
}

// append adds c to the lexeme, growing the backing array by l.step bytes
// whenever it is exhausted.
//
func (l *lexeme) append(c byte) {
	if len(l.text) == cap(l.text) {
		grown := make([]byte, len(l.text), cap(l.text)+l.step)
		copy(grown, l.text)
		l.text = grown
	}
	l.text = append(l.text, c)
}

// finalize returns an owned copy of the accumulated bytes, trimmed to
// exactly the bytes written (mirroring the original's shrink-to-fit
// realloc). A zero-length lexeme yields a nil slice.
//
func (l *lexeme) finalize() []byte {
	if len(l.text) == 0 {
		return nil
	}
	out := make([]byte, len(l.text))
	copy(out, l.text)
	return out
}

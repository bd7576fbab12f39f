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

// Package scanner turns a source.Source into a stream of token.Units. It is
// strictly single-threaded and synchronous: Scan never suspends and every
// call consumes a minimal prefix of the remaining input, at most pushing
// back one byte of lookahead for the next call to see.
//
package scanner

import (
	"errors"

	"github.com/rufum-lang/rufum/source"
	"github.com/rufum-lang/rufum/token"
)

// Scanner drives the DFA (state.go) over a source.Source, using skip
// (skip.go) to discard whitespace, comments and escaped newlines between
// tokens, and lexeme (lexeme.go) to accumulate each token's captured bytes.
//
type Scanner struct {
	src *source.Source
	lx  *lexeme
}

// Option configures a Scanner created by New.
//
type Option func(*Scanner)

// WithLexemeStep overrides the lexeme buffer's fixed growth step (default
// 32 bytes).
//
func WithLexemeStep(n int) Option {
	return func(s *Scanner) { s.lx = newLexeme(n) }
}

// New returns a Scanner reading from src.
//
func New(src *source.Source, opts ...Option) *Scanner {
	s := &Scanner{src: src, lx: newLexeme(defaultLexemeStep)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the next lexical unit. Malformed input is never reported as
// an error: it comes back as a Unit whose Kind names the malformation
// (BadComment, BadMLComment, or one of the numeric _Dot/_Com/_Seq/_Suf
// kinds, or Unknown). Only resource exhaustion or an I/O failure from the
// underlying source.Source is returned as an error.
//
func (s *Scanner) Scan() (*token.Unit, error) {
	if err := skip(s.src); err != nil {
		var ce *commentError
		if errors.As(err, &ce) {
			s.lx.startAt(ce.line, ce.col)
			return &token.Unit{
				Kind:   ce.kind,
				Text:   s.lx.finalize(),
				Line:   ce.line,
				Column: ce.col,
			}, nil
		}
		return nil, err
	}

	s.lx.start(s.src)

	c, err := s.src.GetChar()
	if err != nil {
		return nil, err
	}

	st := initial(c)
	for st.next != nil {
		s.lx.append(byte(c))
		c, err = s.src.GetChar()
		if err != nil {
			return nil, err
		}
		st = st.next(c)
	}

	switch st.mode {
	case modeConsume:
		s.lx.append(byte(c))
	case modeEmpty:
		// END: empty lexeme, nothing to push back.
	default:
		s.src.UngetChar(c)
	}

	return &token.Unit{
		Kind:   st.kind,
		Text:   s.lx.finalize(),
		Line:   s.lx.line,
		Column: s.lx.column,
	}, nil
}

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

// Package source provides a buffered, position-tracking byte reader with
// unlimited pushback, the lowest layer of the scanner.
//
// A Source wraps either an io.Reader (the pull backend, refilled in chunks)
// or a byte slice (the slice backend, read directly with no copy). Both
// backends share the same pushback stack, newline-column stack and
// line/column bookkeeping; GetChar and UngetChar behave identically
// regardless of which backend is in use.
//
// A Source is not safe for concurrent use; it is meant to be driven by a
// single scanner.Scanner at a time.
//
package source

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Char is a byte value (0..255) or the sentinel End, read from or pushed
// back into a Source.
//
type Char int

// End is returned by GetChar at end of input and accepted by UngetChar to
// push end-of-input back onto the stream.
//
const End Char = -1

// Errors returned by Source methods.
//
var (
	// ErrIO wraps an error returned by the underlying io.Reader.
	ErrIO = errors.New("source: i/o error")
	// ErrLineLimit is returned when the line counter would overflow.
	ErrLineLimit = errors.New("source: line counter overflow")
	// ErrColumnLimit is returned when the column counter would overflow.
	ErrColumnLimit = errors.New("source: column counter overflow")
	// ErrMemory is kept for interface parity with the status taxonomy this
	// package is modeled on; Go's garbage-collected allocator does not
	// return allocation failures the way the original C realloc-based
	// implementation does, so this package never actually produces it.
	ErrMemory = errors.New("source: allocation failure")
)

// backend abstracts the two concrete byte sources (pull and slice). read
// returns the next raw byte with ok set to true, or ok false at end of
// input, or a non-nil error on I/O failure.
//
type backend interface {
	read() (b byte, ok bool, err error)
}

const defaultReadBufferSize = 4096

// readerBackend is the pull backend: it refills a fixed-size buffer from an
// io.Reader whenever the buffer is exhausted. It stays a plain forward
// buffer, with no ring-buffer pushback of its own, since unlimited pushback
// is already handled one layer up by Source's pushback stack.
//
type readerBackend struct {
	r          io.Reader
	buf        []byte
	pos, limit int
}

func (b *readerBackend) read() (byte, bool, error) {
	if b.pos == b.limit {
		n, err := b.r.Read(b.buf)
		b.limit, b.pos = n, 0
		if n == 0 {
			if err != nil && err != io.EOF {
				return 0, false, err
			}
			return 0, false, nil
		}
		// n > 0: data takes priority even if err is also set (e.g. io.EOF);
		// the error (if not io.EOF) will resurface on the next empty read.
	}
	c := b.buf[b.pos]
	b.pos++
	return c, true, nil
}

// sliceBackend is the slice backend: it reads directly from a borrowed
// byte slice with no copy and no error path.
//
type sliceBackend struct {
	b   []byte
	pos int
}

func (s *sliceBackend) read() (byte, bool, error) {
	if s.pos == len(s.b) {
		return 0, false, nil
	}
	c := s.b[s.pos]
	s.pos++
	return c, true, nil
}

// Source is a position-tracked byte stream with unlimited pushback.
//
type Source struct {
	backend backend

	pushback      []byte // pushback stack; top is the last element
	endPushedBack bool   // End has been pushed back and not yet re-read
	postEndCount  int    // ordinary bytes pushed back after End, in order

	colStack []uint64 // column saved before each newline currently "behind" the read head
	line     uint64
	column   uint64
}

// Option configures a Source created by NewReader.
//
type Option func(*Source)

// WithReadBufferSize overrides the pull backend's fill-buffer size (default
// 4096 bytes). It has no effect on a slice-backed Source.
//
func WithReadBufferSize(n int) Option {
	return func(s *Source) {
		if rb, ok := s.backend.(*readerBackend); ok && n > 0 {
			rb.buf = make([]byte, n)
		}
	}
}

func newSource(b backend) *Source {
	return &Source{
		backend: b,
		line:    1,
		column:  1,
	}
}

// NewReader returns a Source that pulls bytes from r (the pull backend).
//
func NewReader(r io.Reader, opts ...Option) *Source {
	s := newSource(&readerBackend{r: r, buf: make([]byte, defaultReadBufferSize)})
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSlice returns a Source that reads directly from b (the slice backend).
//
func NewSlice(b []byte) *Source {
	return newSource(&sliceBackend{b: b})
}

// Line returns the 1-based line number of the next byte to be read.
//
func (s *Source) Line() uint64 { return s.line }

// Column returns the 1-based column number of the next byte to be read.
//
func (s *Source) Column() uint64 { return s.column }

// advance updates the line/column tracker for an ordinary byte that has
// just been returned by GetChar.
//
func (s *Source) advance(c byte) error {
	if c == '\n' {
		if s.line == math.MaxUint64 {
			return ErrLineLimit
		}
		s.colStack = append(s.colStack, s.column)
		s.line++
		s.column = 1
		return nil
	}
	if s.column == math.MaxUint64 {
		return ErrColumnLimit
	}
	s.column++
	return nil
}

// retreat reverses advance for a byte being pushed back.
//
func (s *Source) retreat(c byte) {
	if c == '\n' {
		s.line--
		n := len(s.colStack) - 1
		s.column = s.colStack[n]
		s.colStack = s.colStack[:n]
		return
	}
	s.column--
}

// nextRaw returns the next byte or End with no position bookkeeping: the
// end-pushed-back flag (and its post-end counter) take priority, then the
// pushback stack, then the backend.
//
func (s *Source) nextRaw() (Char, error) {
	if s.endPushedBack {
		if s.postEndCount > 0 {
			s.postEndCount--
			n := len(s.pushback) - 1
			b := s.pushback[n]
			s.pushback = s.pushback[:n]
			return Char(b), nil
		}
		s.endPushedBack = false
		return End, nil
	}
	if n := len(s.pushback); n > 0 {
		b := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return Char(b), nil
	}
	b, ok, err := s.backend.read()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrIO, err)
	}
	if !ok {
		return End, nil
	}
	return Char(b), nil
}

// GetChar returns the next byte in the stream, or End at end of input,
// advancing the read head. On a tracking error (line/column overflow) the
// byte is pushed back so it is not lost: a future GetChar call will see it
// again (and fail again, since the counter that overflowed does not reset).
//
func (s *Source) GetChar() (Char, error) {
	c, err := s.nextRaw()
	if err != nil {
		return 0, err
	}
	if c == End {
		return End, nil
	}
	b := byte(c)
	if err := s.advance(b); err != nil {
		s.pushback = append(s.pushback, b)
		if s.endPushedBack {
			s.postEndCount++
		}
		return 0, err
	}
	return c, nil
}

// UngetChar pushes c back onto the stream so that the next call to GetChar
// returns it again. Pushback depth is unbounded. Pushing back End simply
// sets a flag (End cannot be stored on the byte pushback stack); pushing
// back a newline pops the column saved when that newline was consumed.
//
func (s *Source) UngetChar(c Char) {
	if c == End {
		s.endPushedBack = true
		return
	}
	b := byte(c)
	s.pushback = append(s.pushback, b)
	if s.endPushedBack {
		s.postEndCount++
	}
	s.retreat(b)
}

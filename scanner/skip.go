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
	"errors"
	"fmt"

	"github.com/rufum-lang/rufum/source"
	"github.com/rufum-lang/rufum/token"
)

// errBadComment and errBadMLComment are sentinels internal to skip; Scan
// turns them into a BadComment/BadMLComment token rather than surfacing
// them as errors: malformed input is reported as a token, never a Go error.
var (
	errBadComment   = errors.New("scanner: line comment not terminated by newline")
	errBadMLComment = errors.New("scanner: block comment not terminated")
)

// commentError reports an unterminated comment together with the position
// of the byte that opened it ('#' or '{'); by the time skipLineComment or
// skipBlockComment return, the source has moved well past that point, so
// skip captures it up front, before reading the opening byte.
//
type commentError struct {
	kind      token.Kind
	line, col uint64
	err       error
}

func (e *commentError) Error() string {
	return fmt.Sprintf("scanner: %s at %d:%d", e.err, e.line, e.col)
}

func (e *commentError) Unwrap() error { return e.err }

// skip consumes whitespace, line comments, nestable block comments and
// escaped newlines, leaving the source positioned at the first byte of the
// next token (pushed back, ready for the DFA to read). When a comment runs
// into end of input it returns a *commentError wrapping
// errBadComment/errBadMLComment; skip records the position of each byte
// before reading it, so the error carries where the comment started even
// though the source has moved on by then.
//
func skip(src *source.Source) error {
	for {
		line, col := src.Line(), src.Column()
		c, err := src.GetChar()
		if err != nil {
			return err
		}
		switch c {
		case ' ':
			continue
		case '#':
			if err := skipLineComment(src); err != nil {
				return &commentError{kind: token.BadComment, line: line, col: col, err: err}
			}
			continue
		case '{':
			if err := skipBlockComment(src); err != nil {
				return &commentError{kind: token.BadMLComment, line: line, col: col, err: err}
			}
			continue
		case '\n':
			skipped, err := trySkipContinuation(src)
			if err != nil {
				return err
			}
			if skipped {
				continue
			}
			// trySkipContinuation has pushed the '\n' back; let the DFA
			// scan it as an EOL token.
			return nil
		default:
			src.UngetChar(c)
			return nil
		}
	}
}

// skipLineComment eats bytes until '\n' or End, having already consumed
// the leading '#'. On '\n' it pushes the newline back so it is scanned as
// an EOL token next.
//
func skipLineComment(src *source.Source) error {
	for {
		c, err := src.GetChar()
		if err != nil {
			return err
		}
		if c == '\n' {
			src.UngetChar(c)
			return nil
		}
		if c == source.End {
			return errBadComment
		}
	}
}

// skipBlockComment eats bytes until the '{' already consumed (depth 1) is
// balanced by a matching '}', supporting arbitrary nesting.
//
func skipBlockComment(src *source.Source) error {
	depth := 1
	for {
		c, err := src.GetChar()
		if err != nil {
			return err
		}
		switch c {
		case source.End:
			return errBadMLComment
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

// trySkipContinuation attempts to absorb the sequence "\n ␠*\\" that
// follows a newline just read by skip. If the newline is not followed
// (after any number of spaces) by a backslash, every byte read here is
// pushed back in reverse order — including the original newline — so the
// stream is left exactly as it was before skip read it.
//
func trySkipContinuation(src *source.Source) (skipped bool, err error) {
	spaces := 0
	var c source.Char
	for {
		c, err = src.GetChar()
		if err != nil {
			return false, err
		}
		if c != ' ' {
			break
		}
		spaces++
	}

	if c == '\\' {
		return true, nil
	}

	src.UngetChar(c)
	for ; spaces > 0; spaces-- {
		src.UngetChar(' ')
	}
	src.UngetChar('\n')
	return false, nil
}

package ics

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// LogicalLine is a single content line after unfolding.  It still holds the
// raw NAME;PARAMS:VALUE text and is normally handed straight to
// ParseContentLine.
type LogicalLine string

// CalendarStream reads logical lines from an iCalendar stream.  Lines in an
// iCalendar file are "folded" by inserting a line break followed by a single
// space or horizontal tab (RFC 5545 section 3.1).  This type hides that detail
// by returning unfolded lines.  CRLF and bare LF are treated the same.
type CalendarStream struct {
	r io.Reader
	b *bufio.Reader
}

// NewCalendarStream wraps r so the caller can read unfolded lines.
func NewCalendarStream(r io.Reader) *CalendarStream {
	return &CalendarStream{
		r: r,
		b: bufio.NewReader(r),
	}
}

// ReadLine returns the next non-empty logical line.  At the end of the input
// it returns io.EOF, possibly together with a final line, so callers should
// consume a non-empty line before checking the error.
func (cs *CalendarStream) ReadLine() (LogicalLine, error) {
	for {
		l, err := cs.readLine()
		if len(l) > 0 || err != nil {
			return l, err
		}
	}
}

func (cs *CalendarStream) readLine() (LogicalLine, error) {
	var r []byte
	for {
		b, err := cs.b.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		r = append(r, trimLineEnd(b)...)
		if err == io.EOF {
			return LogicalLine(r), io.EOF
		}
		p, perr := cs.b.Peek(1)
		if perr != nil || (p[0] != ' ' && p[0] != '\t') {
			return LogicalLine(r), nil
		}
		_, _ = cs.b.Discard(1) // nolint:errcheck
	}
}

func trimLineEnd(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}

// Unfold splits text into logical lines.  It never fails: empty lines are
// dropped and any mix of CRLF and LF terminators is accepted.
func Unfold(text string) []LogicalLine {
	var lines []LogicalLine
	cs := NewCalendarStream(strings.NewReader(text))
	for {
		l, err := cs.ReadLine()
		if len(l) > 0 {
			lines = append(lines, l)
		}
		if err != nil {
			return lines
		}
	}
}

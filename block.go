package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Block is one BEGIN/END delimited component before assembly: its content
// lines grouped by name and its nested blocks in document order.
type Block struct {
	Type       ComponentType
	Properties PropertyBag
	Children   []Block
}

// ParseBlock unfolds text and reads exactly one block from it.  The text
// must start with a BEGIN line and nothing may follow the matching END.
func ParseBlock(text string) (Block, error) {
	return readDocument(NewCalendarStream(strings.NewReader(text)))
}

func readDocument(cs *CalendarStream) (Block, error) {
	l, err := cs.ReadLine()
	if len(l) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return Block{}, fmt.Errorf("%w: no content", ErrMalformedComponent)
		}
		return Block{}, err
	}
	begin, err := ParseContentLine(l)
	if err != nil {
		return Block{}, fmt.Errorf("parsing line 0: %w", err)
	}
	if begin.Name != "BEGIN" {
		return Block{}, fmt.Errorf("%w: expected BEGIN, got %s", ErrMalformedComponent, begin.Name)
	}
	b, err := ReadBlock(cs, begin)
	if err != nil {
		return Block{}, err
	}
	for {
		l, err := cs.ReadLine()
		if len(l) > 0 {
			return Block{}, fmt.Errorf("%w: unexpected content after END:%s", ErrMalformedComponent, b.Type)
		}
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		if err != nil {
			return Block{}, err
		}
	}
}

// ReadBlock reads lines from cs up to the END that closes begin.  Nested
// BEGIN lines start child blocks.  Running out of input or an END naming a
// different component is ErrMalformedComponent.
func ReadBlock(cs *CalendarStream, begin ContentLine) (Block, error) {
	if begin.Value == "" {
		return Block{}, fmt.Errorf("%w: BEGIN without a component name", ErrMalformedComponent)
	}
	b := Block{
		Type:       ComponentType(strings.ToUpper(begin.Value)),
		Properties: PropertyBag{},
	}
	for ln := 1; ; ln++ {
		l, err := cs.ReadLine()
		if len(l) == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return Block{}, fmt.Errorf("%w: %s: missing END", ErrMalformedComponent, b.Type)
			}
			return Block{}, err
		}
		line, perr := ParseContentLine(l)
		if perr != nil {
			return Block{}, fmt.Errorf("%s line %d: %w", b.Type, ln, perr)
		}
		switch line.Name {
		case "BEGIN":
			child, err := ReadBlock(cs, line)
			if err != nil {
				return Block{}, err
			}
			b.Children = append(b.Children, child)
		case "END":
			if ComponentType(strings.ToUpper(line.Value)) != b.Type {
				return Block{}, fmt.Errorf("%w: END:%s inside %s", ErrMalformedComponent, line.Value, b.Type)
			}
			return b, nil
		default:
			b.Properties.Add(line)
		}
	}
}

package ics

import (
	"errors"
	"fmt"
	"strings"
)

// Assemble builds a component from a block.  On failure the zero value is
// returned together with the error; nothing partially built escapes.
func (s *Schema[C]) Assemble(b Block, ops ...any) (C, error) {
	cfg, err := parseParseOps(ops)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.assemble(b, cfg)
}

// AssembleBag builds a component from the properties of a single block that
// has no nested components.
func (s *Schema[C]) AssembleBag(bag PropertyBag, ops ...any) (C, error) {
	return s.Assemble(Block{Type: s.Type, Properties: bag}, ops...)
}

// Parse unfolds text holding one BEGIN/END block of this schema's type and
// assembles it.
func (s *Schema[C]) Parse(text string, ops ...any) (C, error) {
	var zero C
	b, err := ParseBlock(text)
	if err != nil {
		return zero, err
	}
	return s.Assemble(b, ops...)
}

func (s *Schema[C]) assemble(b Block, cfg *ParseConfiguration) (C, error) {
	var zero C
	if b.Type != s.Type {
		return zero, fmt.Errorf("%w: expected %s, got %s", ErrMalformedComponent, s.Type, b.Type)
	}
	c := zero
	if s.New != nil {
		c = s.New()
	}

	bag := make(PropertyBag, len(b.Properties))
	for k, v := range b.Properties {
		bag[k] = v
	}

	for _, f := range s.Fields {
		lines := bag[f.Name]
		delete(bag, f.Name)
		switch f.Cardinality {
		case CardinalityRequired, CardinalityOptional:
			if len(lines) == 0 {
				if f.Cardinality == CardinalityRequired {
					return zero, &PropertyError{Component: s.Type, Property: f.Name, Err: ErrMissingField}
				}
				continue
			}
			if len(lines) > 1 {
				switch cfg.Duplicates {
				case DuplicateModeKeepFirst:
					lines = lines[:1]
				case DuplicateModeKeepLast:
					lines = lines[len(lines)-1:]
				default:
					return zero, &PropertyError{Component: s.Type, Property: f.Name, Value: lines[1].Value, Err: ErrDuplicateProperty}
				}
			}
		}
		for _, cl := range lines {
			if err := f.bind(&c, cl, cfg); err != nil {
				return zero, &PropertyError{Component: s.Type, Property: f.Name, Value: cl.Value, Err: err}
			}
		}
	}

	var ext *Extensions
	if s.Extensions != nil {
		ext = s.Extensions(&c)
	}
	if ext != nil {
		for name, lines := range bag {
			if len(lines) == 0 {
				continue
			}
			if strings.HasPrefix(name, "X-") {
				if ext.XProps == nil {
					ext.XProps = map[string][]ContentLine{}
				}
				ext.XProps[name] = append(ext.XProps[name], lines...)
			} else {
				if ext.IANAProps == nil {
					ext.IANAProps = map[string][]ContentLine{}
				}
				ext.IANAProps[name] = append(ext.IANAProps[name], lines...)
			}
		}
	}

	for _, child := range b.Children {
		bound := false
		for _, cs := range s.Children {
			if cs.Type != child.Type {
				continue
			}
			if err := cs.bind(&c, child, cfg); err != nil {
				return zero, fmt.Errorf("%s: %w", s.Type, err)
			}
			bound = true
			break
		}
		if !bound && ext != nil {
			ext.Components = append(ext.Components, child)
		}
	}

	if s.Check != nil {
		if err := s.Check(&c); err != nil {
			var pe *PropertyError
			if errors.As(err, &pe) {
				return zero, err
			}
			return zero, fmt.Errorf("%s: %w", s.Type, err)
		}
	}
	return c, nil
}

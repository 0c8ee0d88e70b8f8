package ics

// Cardinality says how many content lines a schema field binds to and how
// several of them are combined.
type Cardinality int

const (
	// CardinalityRequired binds exactly one line; absence is ErrMissingField.
	CardinalityRequired Cardinality = iota
	// CardinalityOptional binds zero or one line.
	CardinalityOptional
	// CardinalityRepeated binds any number of lines, one element per line.
	CardinalityRepeated
	// CardinalityRepeatedFlat binds any number of lines, each producing a
	// list of elements that are concatenated in order.
	CardinalityRepeatedFlat
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityRequired:
		return "required"
	case CardinalityOptional:
		return "optional"
	case CardinalityRepeated:
		return "repeated"
	case CardinalityRepeatedFlat:
		return "repeated-flat"
	}
	return "unknown"
}

// ValueParser turns one content line into a typed value.
type ValueParser[V any] func(ContentLine, *ParseConfiguration) (V, error)

// Field is one declared property of a component schema.
type Field[C any] struct {
	Name        string
	Cardinality Cardinality
	bind        func(c *C, cl ContentLine, cfg *ParseConfiguration) error
}

// Required declares a property that must occur exactly once.
func Required[C, V any](name Property, parse ValueParser[V], field func(*C) *V) Field[C] {
	return Field[C]{
		Name:        string(name),
		Cardinality: CardinalityRequired,
		bind: func(c *C, cl ContentLine, cfg *ParseConfiguration) error {
			v, err := parse(cl, cfg)
			if err != nil {
				return err
			}
			*field(c) = v
			return nil
		},
	}
}

// Optional declares a property that may occur once.  The field is a pointer
// that stays nil when the property is absent.
func Optional[C, V any](name Property, parse ValueParser[V], field func(*C) **V) Field[C] {
	return Field[C]{
		Name:        string(name),
		Cardinality: CardinalityOptional,
		bind: func(c *C, cl ContentLine, cfg *ParseConfiguration) error {
			v, err := parse(cl, cfg)
			if err != nil {
				return err
			}
			*field(c) = &v
			return nil
		},
	}
}

// Repeated declares a property whose every line adds one element.
func Repeated[C, V any](name Property, parse ValueParser[V], field func(*C) *[]V) Field[C] {
	return Field[C]{
		Name:        string(name),
		Cardinality: CardinalityRepeated,
		bind: func(c *C, cl ContentLine, cfg *ParseConfiguration) error {
			v, err := parse(cl, cfg)
			if err != nil {
				return err
			}
			p := field(c)
			*p = append(*p, v)
			return nil
		},
	}
}

// RepeatedFlat declares a multi-valued property such as CATEGORIES or EXDATE:
// every line yields a list and the lists are concatenated.
func RepeatedFlat[C, V any](name Property, parse ValueParser[[]V], field func(*C) *[]V) Field[C] {
	return Field[C]{
		Name:        string(name),
		Cardinality: CardinalityRepeatedFlat,
		bind: func(c *C, cl ContentLine, cfg *ParseConfiguration) error {
			vs, err := parse(cl, cfg)
			if err != nil {
				return err
			}
			p := field(c)
			*p = append(*p, vs...)
			return nil
		},
	}
}

// Child declares a nested component, such as VALARM inside VEVENT.
type Child[C any] struct {
	Type ComponentType
	bind func(c *C, b Block, cfg *ParseConfiguration) error
}

// Nested assembles sub-blocks of type typ with schema and appends them to
// the field.
func Nested[C, S any](typ ComponentType, schema *Schema[S], field func(*C) *[]S) Child[C] {
	return Child[C]{
		Type: typ,
		bind: func(c *C, b Block, cfg *ParseConfiguration) error {
			v, err := schema.assemble(b, cfg)
			if err != nil {
				return err
			}
			p := field(c)
			*p = append(*p, v)
			return nil
		},
	}
}

// Schema describes how to build a component of type C from a block.  Fields
// are consumed in order; whatever is left over lands in the extension buckets
// returned by Extensions.  Check, when set, runs on the finished component
// and can reject combinations the fields alone cannot express.
type Schema[C any] struct {
	Type       ComponentType
	New        func() C
	Fields     []Field[C]
	Children   []Child[C]
	Extensions func(*C) *Extensions
	Check      func(*C) error
}

// Extensions holds what a schema did not declare.  Property names starting
// with "X-" go to XProps, any other unknown name to IANAProps; every
// occurrence is kept.  Unknown nested blocks are kept in Components.
type Extensions struct {
	XProps     map[string][]ContentLine
	IANAProps  map[string][]ContentLine
	Components []Block
}

// Extended returns e; it is promoted to every component embedding
// Extensions.
func (e *Extensions) Extended() *Extensions {
	return e
}

// XProp returns the first value of an X- property, or "".
func (e *Extensions) XProp(name string) string {
	if ls := e.XProps[name]; len(ls) > 0 {
		return ls[0].Value
	}
	return ""
}

// PropertyBag groups the content lines of one component block by name, in
// the order they were seen.
type PropertyBag map[string][]ContentLine

func NewPropertyBag(lines ...ContentLine) PropertyBag {
	bag := PropertyBag{}
	for _, l := range lines {
		bag.Add(l)
	}
	return bag
}

func (bag PropertyBag) Add(cl ContentLine) {
	bag[cl.Name] = append(bag[cl.Name], cl)
}

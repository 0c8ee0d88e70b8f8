package ics

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Property names a content line as defined in RFC 5545 section 3.7 and 3.8.
type Property string

const (
	PropertyCalscale        Property = "CALSCALE"
	PropertyMethod          Property = "METHOD"
	PropertyProductId       Property = "PRODID"
	PropertyVersion         Property = "VERSION"
	PropertyAttach          Property = "ATTACH"
	PropertyCategories      Property = "CATEGORIES"
	PropertyClass           Property = "CLASS"
	PropertyComment         Property = "COMMENT"
	PropertyDescription     Property = "DESCRIPTION"
	PropertyGeo             Property = "GEO"
	PropertyLocation        Property = "LOCATION"
	PropertyPercentComplete Property = "PERCENT-COMPLETE"
	PropertyPriority        Property = "PRIORITY"
	PropertyResources       Property = "RESOURCES"
	PropertyStatus          Property = "STATUS"
	PropertySummary         Property = "SUMMARY"
	PropertyCompleted       Property = "COMPLETED"
	PropertyDtend           Property = "DTEND"
	PropertyDue             Property = "DUE"
	PropertyDtstart         Property = "DTSTART"
	PropertyDuration        Property = "DURATION"
	PropertyFreebusy        Property = "FREEBUSY"
	PropertyTransp          Property = "TRANSP"
	PropertyTzid            Property = "TZID"
	PropertyTzname          Property = "TZNAME"
	PropertyTzoffsetfrom    Property = "TZOFFSETFROM"
	PropertyTzoffsetto      Property = "TZOFFSETTO"
	PropertyTzurl           Property = "TZURL"
	PropertyAttendee        Property = "ATTENDEE"
	PropertyContact         Property = "CONTACT"
	PropertyOrganizer       Property = "ORGANIZER"
	PropertyRecurrenceId    Property = "RECURRENCE-ID"
	PropertyRelatedTo       Property = "RELATED-TO"
	PropertyUrl             Property = "URL"
	PropertyUid             Property = "UID"
	PropertyExdate          Property = "EXDATE"
	PropertyRdate           Property = "RDATE"
	PropertyRrule           Property = "RRULE"
	PropertyAction          Property = "ACTION"
	PropertyRepeat          Property = "REPEAT"
	PropertyTrigger         Property = "TRIGGER"
	PropertyCreated         Property = "CREATED"
	PropertyDtstamp         Property = "DTSTAMP"
	PropertyLastModified    Property = "LAST-MODIFIED"
	PropertySequence        Property = "SEQUENCE"
	PropertyRequestStatus   Property = "REQUEST-STATUS"
)

// Parameter names a property parameter (RFC 5545 section 3.2).
type Parameter string

const (
	// ParameterAltrep references an alternate text representation (section 3.2.1).
	ParameterAltrep Parameter = "ALTREP"
	// ParameterCn provides a common name (section 3.2.2).
	ParameterCn Parameter = "CN"
	// ParameterEncoding defines inline attachment encoding (section 3.2.7).
	ParameterEncoding Parameter = "ENCODING"
	// ParameterFmttype is the content type for an attachment (section 3.2.8).
	ParameterFmttype Parameter = "FMTTYPE"
	// ParameterFbtype specifies free/busy time type (section 3.2.9).
	ParameterFbtype Parameter = "FBTYPE"
	// ParameterLanguage indicates the language for text values (section 3.2.10).
	ParameterLanguage Parameter = "LANGUAGE"
	// ParameterParticipationStatus holds participation status (section 3.2.12).
	ParameterParticipationStatus Parameter = "PARTSTAT"
	// ParameterRange is used with RECURRENCE-ID (section 3.2.13).
	ParameterRange Parameter = "RANGE"
	// ParameterRelated says whether a TRIGGER is relative to start or end (section 3.2.14).
	ParameterRelated Parameter = "RELATED"
	// ParameterRole indicates participant role (section 3.2.16).
	ParameterRole Parameter = "ROLE"
	// ParameterTzid references a time zone identifier (section 3.2.19).
	ParameterTzid Parameter = "TZID"
	// ParameterValue sets the value data type of the property (section 3.2.20).
	ParameterValue Parameter = "VALUE"
)

// Param is one parameter of a content line with all of its values.
type Param struct {
	Name   string
	Values []string
}

// Params keeps parameters in the order they appeared on the line.
type Params []Param

// Get returns every value of the named parameter.  Matching is case-insensitive.
func (ps Params) Get(p Parameter) []string {
	for _, param := range ps {
		if strings.EqualFold(param.Name, string(p)) {
			return param.Values
		}
	}
	return nil
}

// First returns the first value of the named parameter or "".
func (ps Params) First(p Parameter) string {
	if vs := ps.Get(p); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func (ps Params) Has(p Parameter) bool {
	return ps.Get(p) != nil
}

func (ps *Params) add(name, value string) {
	for i := range *ps {
		if (*ps)[i].Name == name {
			(*ps)[i].Values = append((*ps)[i].Values, value)
			return
		}
	}
	*ps = append(*ps, Param{Name: name, Values: []string{value}})
}

// ContentLine is a parsed NAME;PARAMS:VALUE record.  Name is upper case,
// parameter values are already unquoted and unescaped, and Value is left
// exactly as it appeared so the value parser can apply its own escaping rules.
type ContentLine struct {
	Name   string
	Params Params
	Value  string
}

var propertyNameReg *regexp.Regexp

func init() {
	var err error
	propertyNameReg, err = regexp.Compile("^[A-Za-z0-9-]+")
	if err != nil {
		log.Panicf("Failed to build regex: %v", err)
	}
}

// ParseContentLine parses one logical line.  The first ':' that is neither
// escaped nor inside a quoted parameter value starts the value.
func ParseContentLine(line LogicalLine) (ContentLine, error) {
	s := string(line)
	tokenPos := propertyNameReg.FindStringIndex(s)
	if tokenPos == nil {
		return ContentLine{}, fmt.Errorf("%w: missing property name in %q", ErrMalformedContentLine, s)
	}
	cl := ContentLine{Name: strings.ToUpper(s[:tokenPos[1]])}
	p := tokenPos[1]
	for {
		if p >= len(s) {
			return ContentLine{}, fmt.Errorf("%w: property %s has no value", ErrMalformedContentLine, cl.Name)
		}
		switch s[p] {
		case ':':
			cl.Value = s[p+1:]
			return cl, nil
		case ';':
			np, err := parseParam(&cl, s, p+1)
			if err != nil {
				return ContentLine{}, fmt.Errorf("%w: property %s: %v", ErrMalformedContentLine, cl.Name, err)
			}
			p = np
		default:
			return ContentLine{}, fmt.Errorf("%w: unexpected %q after property %s", ErrMalformedContentLine, s[p], cl.Name)
		}
	}
}

func parseParam(cl *ContentLine, s string, p int) (int, error) {
	tokenPos := propertyNameReg.FindStringIndex(s[p:])
	if tokenPos == nil {
		return p, errors.New("missing parameter name")
	}
	k := strings.ToUpper(s[p : p+tokenPos[1]])
	p += tokenPos[1]
	if p >= len(s) || s[p] != '=' {
		return p, fmt.Errorf("missing property value for %s", k)
	}
	p++
	for {
		v, np, err := parseParamValue(s, p)
		if err != nil {
			return p, fmt.Errorf("parameter %s: %w", k, err)
		}
		cl.Params.add(k, v)
		p = np
		if p < len(s) && s[p] == ',' {
			p++
			continue
		}
		return p, nil
	}
}

/*
parseParamValue reads one parameter value starting at p and returns the
decoded value and the position of the delimiter that ended it.

	quoted-string = DQUOTE *QSAFE-CHAR DQUOTE
	QSAFE-CHAR    = WSP / %x21 / %x23-7E / NON-US-ASCII
	SAFE-CHAR     = WSP / %x21 / %x23-2B / %x2D-39 / %x3C-7E / NON-US-ASCII
	CONTROL       = %x00-08 / %x0A-1F / %x7F
*/
func parseParamValue(s string, p int) (string, int, error) {
	if p < len(s) && s[p] == '"' {
		for q := p + 1; q < len(s); q++ {
			switch c := s[q]; {
			case c == '\\' && q+1 < len(s):
				q++
			case c == '"':
				np := q + 1
				if np >= len(s) || !strings.ContainsRune(",;:", rune(s[np])) {
					return "", p, errors.New("unexpected character after quoted value")
				}
				return paramUnescaper.Replace(s[p+1 : q]), np, nil
			case isControl(c):
				return "", p, fmt.Errorf("unexpected char ascii:%d in property param value", c)
			}
		}
		return "", p, errors.New("unterminated quoted value")
	}
	start := p
	for ; p < len(s); p++ {
		switch c := s[p]; {
		case c == ',' || c == ';' || c == ':':
			return paramUnescaper.Replace(s[start:p]), p, nil
		case c == '"':
			return "", p, errors.New("unexpected double quote in property param value")
		case c == '\\' && p+1 < len(s):
			p++
		case isControl(c):
			return "", p, fmt.Errorf("unexpected char ascii:%d in property param value", c)
		}
	}
	return "", p, errors.New("missing ':' before value")
}

func isControl(c byte) bool {
	return (c < 0x20 && c != '\t') || c == 0x7f
}

// paramUnescaper decodes backslash escapes and the RFC 6868 caret encoding.
var paramUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\;`, `;`,
	`\,`, `,`,
	`\:`, `:`,
	`\"`, `"`,
	`\n`, "\n",
	`\N`, "\n",
	`^^`, `^`,
	`^n`, "\n",
	`^N`, "\n",
	`^'`, `"`,
)

package ics

import (
	"fmt"
	"time"
)

// VTimezone is a time zone definition (RFC 5545 section 3.6.5).  Its
// STANDARD and DAYLIGHT sub-components are assembled separately and kept in
// document order.
type VTimezone struct {
	TzId         string
	LastModified *time.Time
	TzUrl        *string
	Standard     []TimezoneRule
	Daylight     []TimezoneRule
	Extensions
}

func (VTimezone) ComponentType() ComponentType {
	return ComponentVTimezone
}

// TimezoneRule is one STANDARD or DAYLIGHT observance.  DtStart is a local
// time in the zone being defined, so it is parsed as floating.
type TimezoneRule struct {
	Kind       ComponentType
	DtStart    time.Time
	OffsetTo   UTCOffset
	OffsetFrom UTCOffset
	RRule      *Recur
	Comments   []Text
	RDates     []RDate
	TzNames    []Text
	Extensions
}

func (r TimezoneRule) ComponentType() ComponentType {
	return r.Kind
}

// Location returns a fixed zone at the rule's TZOFFSETTO, named by its first
// TZNAME when there is one.
func (r TimezoneRule) Location() *time.Location {
	name := ""
	if len(r.TzNames) > 0 {
		name = r.TzNames[0].Value
	}
	return r.OffsetTo.Location(name)
}

func timezoneRuleSchema(kind ComponentType) Schema[TimezoneRule] {
	return Schema[TimezoneRule]{
		Type: kind,
		New:  func() TimezoneRule { return TimezoneRule{Kind: kind} },
		Fields: []Field[TimezoneRule]{
			Required(PropertyDtstart, dateTimeValue, func(r *TimezoneRule) *time.Time { return &r.DtStart }),
			Required(PropertyTzoffsetto, utcOffsetValue, func(r *TimezoneRule) *UTCOffset { return &r.OffsetTo }),
			Required(PropertyTzoffsetfrom, utcOffsetValue, func(r *TimezoneRule) *UTCOffset { return &r.OffsetFrom }),
			Optional(PropertyRrule, recurValue, func(r *TimezoneRule) **Recur { return &r.RRule }),
			Repeated(PropertyComment, textValue, func(r *TimezoneRule) *[]Text { return &r.Comments }),
			RepeatedFlat(PropertyRdate, rdateValue, func(r *TimezoneRule) *[]RDate { return &r.RDates }),
			Repeated(PropertyTzname, textValue, func(r *TimezoneRule) *[]Text { return &r.TzNames }),
		},
		Extensions: (*TimezoneRule).Extended,
	}
}

var (
	standardSchema = timezoneRuleSchema(ComponentStandard)
	daylightSchema = timezoneRuleSchema(ComponentDaylight)
)

var vtimezoneSchema = Schema[VTimezone]{
	Type: ComponentVTimezone,
	Fields: []Field[VTimezone]{
		Required(PropertyTzid, rawValue, func(tz *VTimezone) *string { return &tz.TzId }),
		Optional(PropertyLastModified, dateTimeValue, func(tz *VTimezone) **time.Time { return &tz.LastModified }),
		Optional(PropertyTzurl, rawValue, func(tz *VTimezone) **string { return &tz.TzUrl }),
	},
	Children: []Child[VTimezone]{
		Nested(ComponentStandard, &standardSchema, func(tz *VTimezone) *[]TimezoneRule { return &tz.Standard }),
		Nested(ComponentDaylight, &daylightSchema, func(tz *VTimezone) *[]TimezoneRule { return &tz.Daylight }),
	},
	Extensions: (*VTimezone).Extended,
	Check: func(tz *VTimezone) error {
		if len(tz.Standard)+len(tz.Daylight) == 0 {
			return fmt.Errorf("%w: %s needs at least one %s or %s", ErrMalformedComponent, tz.TzId, ComponentStandard, ComponentDaylight)
		}
		return nil
	},
}

// ParseVTimezone parses text holding a single BEGIN:VTIMEZONE ... END:VTIMEZONE block.
func ParseVTimezone(text string, ops ...any) (VTimezone, error) {
	return vtimezoneSchema.Parse(text, ops...)
}

// VTimezoneFromBag assembles the top level properties of a time zone.  A bag
// carries no sub-components, so Standard and Daylight stay empty and the
// check that asks for one of them is skipped.
func VTimezoneFromBag(bag PropertyBag, ops ...any) (VTimezone, error) {
	s := vtimezoneSchema
	s.Check = nil
	return s.AssembleBag(bag, ops...)
}

// TimezoneRuleFromBag assembles a STANDARD or DAYLIGHT observance.
func TimezoneRuleFromBag(kind ComponentType, bag PropertyBag, ops ...any) (TimezoneRule, error) {
	switch kind {
	case ComponentStandard:
		return standardSchema.AssembleBag(bag, ops...)
	case ComponentDaylight:
		return daylightSchema.AssembleBag(bag, ops...)
	}
	return TimezoneRule{}, fmt.Errorf("%w: %s", ErrUnsupportedComponentType, kind)
}

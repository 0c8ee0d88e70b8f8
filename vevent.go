package ics

import (
	"fmt"
	"math"
	"time"
)

// VEvent is an event component (RFC 5545 section 3.6.1).  Optional
// properties are nil when absent.
type VEvent struct {
	DtStamp       time.Time
	Uid           string
	DtStart       *time.Time
	DtEnd         *time.Time
	Duration      *Duration
	Class         *Classification
	Created       *time.Time
	Description   *Text
	Geo           *Geo
	LastModified  *time.Time
	Location      *Text
	Organizer     *CalAddress
	Priority      *int
	Sequence      *int
	Status        *ObjectStatus
	Summary       *Text
	Transparency  *TimeTransparency
	Url           *string
	RecurrenceId  *time.Time
	RRule         *Recur
	Attachments   []Attachment
	Attendees     []CalAddress
	Categories    []string
	Comments      []Text
	Contacts      []Text
	ExDates       []time.Time
	RequestStatus []RequestStatus
	RelatedTo     []string
	Resources     []string
	RDates        []RDate
	Alarms        []VAlarm
	Extensions
}

func (VEvent) ComponentType() ComponentType {
	return ComponentVEvent
}

// End returns DTEND, or DTSTART plus DURATION when the event gives a
// duration instead.  ok is false when neither can be worked out.
func (e VEvent) End() (end time.Time, ok bool) {
	switch {
	case e.DtEnd != nil:
		return *e.DtEnd, true
	case e.DtStart != nil && e.Duration != nil:
		return e.DtStart.Add(e.Duration.Std()), true
	}
	return time.Time{}, false
}

var veventSchema = Schema[VEvent]{
	Type: ComponentVEvent,
	Fields: []Field[VEvent]{
		Required(PropertyDtstamp, dateTimeValue, func(e *VEvent) *time.Time { return &e.DtStamp }),
		Required(PropertyUid, stringValue, func(e *VEvent) *string { return &e.Uid }),
		Optional(PropertyDtstart, dateTimeValue, func(e *VEvent) **time.Time { return &e.DtStart }),
		Optional(PropertyDtend, dateTimeValue, func(e *VEvent) **time.Time { return &e.DtEnd }),
		Optional(PropertyDuration, durationValue, func(e *VEvent) **Duration { return &e.Duration }),
		Optional(PropertyClass, enumValue(ParseClassification), func(e *VEvent) **Classification { return &e.Class }),
		Optional(PropertyCreated, dateTimeValue, func(e *VEvent) **time.Time { return &e.Created }),
		Optional(PropertyDescription, textValue, func(e *VEvent) **Text { return &e.Description }),
		Optional(PropertyGeo, geoValue, func(e *VEvent) **Geo { return &e.Geo }),
		Optional(PropertyLastModified, dateTimeValue, func(e *VEvent) **time.Time { return &e.LastModified }),
		Optional(PropertyLocation, textValue, func(e *VEvent) **Text { return &e.Location }),
		Optional(PropertyOrganizer, calAddressValue, func(e *VEvent) **CalAddress { return &e.Organizer }),
		Optional(PropertyPriority, integerValue(0, 9), func(e *VEvent) **int { return &e.Priority }),
		Optional(PropertySequence, integerValue(0, math.MaxInt32), func(e *VEvent) **int { return &e.Sequence }),
		Optional(PropertyStatus, enumValue(ParseObjectStatus), func(e *VEvent) **ObjectStatus { return &e.Status }),
		Optional(PropertySummary, textValue, func(e *VEvent) **Text { return &e.Summary }),
		Optional(PropertyTransp, enumValue(ParseTimeTransparency), func(e *VEvent) **TimeTransparency { return &e.Transparency }),
		Optional(PropertyUrl, rawValue, func(e *VEvent) **string { return &e.Url }),
		Optional(PropertyRecurrenceId, dateTimeValue, func(e *VEvent) **time.Time { return &e.RecurrenceId }),
		Optional(PropertyRrule, recurValue, func(e *VEvent) **Recur { return &e.RRule }),
		Repeated(PropertyAttach, attachmentValue, func(e *VEvent) *[]Attachment { return &e.Attachments }),
		Repeated(PropertyAttendee, calAddressValue, func(e *VEvent) *[]CalAddress { return &e.Attendees }),
		RepeatedFlat(PropertyCategories, textListValue, func(e *VEvent) *[]string { return &e.Categories }),
		Repeated(PropertyComment, textValue, func(e *VEvent) *[]Text { return &e.Comments }),
		Repeated(PropertyContact, textValue, func(e *VEvent) *[]Text { return &e.Contacts }),
		RepeatedFlat(PropertyExdate, dateTimeListValue, func(e *VEvent) *[]time.Time { return &e.ExDates }),
		Repeated(PropertyRequestStatus, requestStatusValue, func(e *VEvent) *[]RequestStatus { return &e.RequestStatus }),
		Repeated(PropertyRelatedTo, stringValue, func(e *VEvent) *[]string { return &e.RelatedTo }),
		RepeatedFlat(PropertyResources, textListValue, func(e *VEvent) *[]string { return &e.Resources }),
		RepeatedFlat(PropertyRdate, rdateValue, func(e *VEvent) *[]RDate { return &e.RDates }),
	},
	Children: []Child[VEvent]{
		Nested(ComponentVAlarm, &valarmSchema, func(e *VEvent) *[]VAlarm { return &e.Alarms }),
	},
	Extensions: (*VEvent).Extended,
	Check: func(e *VEvent) error {
		if e.DtEnd != nil && e.Duration != nil {
			return fmt.Errorf("%w: %s and %s", ErrExclusiveProperties, PropertyDtend, PropertyDuration)
		}
		return nil
	},
}

// ParseVEvent parses text holding a single BEGIN:VEVENT ... END:VEVENT block.
func ParseVEvent(text string, ops ...any) (VEvent, error) {
	return veventSchema.Parse(text, ops...)
}

// VEventFromBag assembles an event from already grouped content lines.
func VEventFromBag(bag PropertyBag, ops ...any) (VEvent, error) {
	return veventSchema.AssembleBag(bag, ops...)
}

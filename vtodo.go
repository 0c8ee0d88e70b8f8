package ics

import (
	"fmt"
	"math"
	"time"
)

// VTodo is a to-do component (RFC 5545 section 3.6.2).
type VTodo struct {
	DtStamp         time.Time
	Uid             string
	Class           *Classification
	Completed       *time.Time
	Created         *time.Time
	Description     *Text
	DtStart         *time.Time
	Geo             *Geo
	LastModified    *time.Time
	Location        *Text
	Organizer       *CalAddress
	PercentComplete *int
	Priority        *int
	RecurrenceId    *time.Time
	Sequence        *int
	Status          *ObjectStatus
	Summary         *Text
	Url             *string
	RRule           *Recur
	Due             *time.Time
	Duration        *Duration
	Attachments     []Attachment
	Attendees       []CalAddress
	Categories      []string
	Comments        []Text
	Contacts        []Text
	ExDates         []time.Time
	RequestStatus   []RequestStatus
	RelatedTo       []string
	Resources       []string
	RDates          []RDate
	Alarms          []VAlarm
	Extensions
}

func (VTodo) ComponentType() ComponentType {
	return ComponentVTodo
}

// DueAt returns DUE, or DTSTART plus DURATION.
func (t VTodo) DueAt() (due time.Time, ok bool) {
	switch {
	case t.Due != nil:
		return *t.Due, true
	case t.DtStart != nil && t.Duration != nil:
		return t.DtStart.Add(t.Duration.Std()), true
	}
	return time.Time{}, false
}

var vtodoSchema = Schema[VTodo]{
	Type: ComponentVTodo,
	Fields: []Field[VTodo]{
		Required(PropertyDtstamp, dateTimeValue, func(t *VTodo) *time.Time { return &t.DtStamp }),
		Required(PropertyUid, stringValue, func(t *VTodo) *string { return &t.Uid }),
		Optional(PropertyClass, enumValue(ParseClassification), func(t *VTodo) **Classification { return &t.Class }),
		Optional(PropertyCompleted, dateTimeValue, func(t *VTodo) **time.Time { return &t.Completed }),
		Optional(PropertyCreated, dateTimeValue, func(t *VTodo) **time.Time { return &t.Created }),
		Optional(PropertyDescription, textValue, func(t *VTodo) **Text { return &t.Description }),
		Optional(PropertyDtstart, dateTimeValue, func(t *VTodo) **time.Time { return &t.DtStart }),
		Optional(PropertyGeo, geoValue, func(t *VTodo) **Geo { return &t.Geo }),
		Optional(PropertyLastModified, dateTimeValue, func(t *VTodo) **time.Time { return &t.LastModified }),
		Optional(PropertyLocation, textValue, func(t *VTodo) **Text { return &t.Location }),
		Optional(PropertyOrganizer, calAddressValue, func(t *VTodo) **CalAddress { return &t.Organizer }),
		Optional(PropertyPercentComplete, integerValue(0, 100), func(t *VTodo) **int { return &t.PercentComplete }),
		Optional(PropertyPriority, integerValue(0, 9), func(t *VTodo) **int { return &t.Priority }),
		Optional(PropertyRecurrenceId, dateTimeValue, func(t *VTodo) **time.Time { return &t.RecurrenceId }),
		Optional(PropertySequence, integerValue(0, math.MaxInt32), func(t *VTodo) **int { return &t.Sequence }),
		Optional(PropertyStatus, enumValue(ParseObjectStatus), func(t *VTodo) **ObjectStatus { return &t.Status }),
		Optional(PropertySummary, textValue, func(t *VTodo) **Text { return &t.Summary }),
		Optional(PropertyUrl, rawValue, func(t *VTodo) **string { return &t.Url }),
		Optional(PropertyRrule, recurValue, func(t *VTodo) **Recur { return &t.RRule }),
		Optional(PropertyDue, dateTimeValue, func(t *VTodo) **time.Time { return &t.Due }),
		Optional(PropertyDuration, durationValue, func(t *VTodo) **Duration { return &t.Duration }),
		Repeated(PropertyAttach, attachmentValue, func(t *VTodo) *[]Attachment { return &t.Attachments }),
		Repeated(PropertyAttendee, calAddressValue, func(t *VTodo) *[]CalAddress { return &t.Attendees }),
		RepeatedFlat(PropertyCategories, textListValue, func(t *VTodo) *[]string { return &t.Categories }),
		Repeated(PropertyComment, textValue, func(t *VTodo) *[]Text { return &t.Comments }),
		Repeated(PropertyContact, textValue, func(t *VTodo) *[]Text { return &t.Contacts }),
		RepeatedFlat(PropertyExdate, dateTimeListValue, func(t *VTodo) *[]time.Time { return &t.ExDates }),
		Repeated(PropertyRequestStatus, requestStatusValue, func(t *VTodo) *[]RequestStatus { return &t.RequestStatus }),
		Repeated(PropertyRelatedTo, stringValue, func(t *VTodo) *[]string { return &t.RelatedTo }),
		RepeatedFlat(PropertyResources, textListValue, func(t *VTodo) *[]string { return &t.Resources }),
		RepeatedFlat(PropertyRdate, rdateValue, func(t *VTodo) *[]RDate { return &t.RDates }),
	},
	Children: []Child[VTodo]{
		Nested(ComponentVAlarm, &valarmSchema, func(t *VTodo) *[]VAlarm { return &t.Alarms }),
	},
	Extensions: (*VTodo).Extended,
	Check: func(t *VTodo) error {
		if t.Due != nil && t.Duration != nil {
			return fmt.Errorf("%w: %s and %s", ErrExclusiveProperties, PropertyDue, PropertyDuration)
		}
		// RFC 5545 section 3.6.2: DURATION requires DTSTART.
		if t.Duration != nil && t.DtStart == nil {
			return &PropertyError{Component: ComponentVTodo, Property: string(PropertyDtstart), Err: ErrMissingField}
		}
		return nil
	},
}

// ParseVTodo parses text holding a single BEGIN:VTODO ... END:VTODO block.
func ParseVTodo(text string, ops ...any) (VTodo, error) {
	return vtodoSchema.Parse(text, ops...)
}

// VTodoFromBag assembles a to-do from already grouped content lines.
func VTodoFromBag(bag PropertyBag, ops ...any) (VTodo, error) {
	return vtodoSchema.AssembleBag(bag, ops...)
}

package ics

import (
	"math"
)

// VAlarm is an alarm nested in a VEVENT or VTODO (RFC 5545 section 3.6.6).
type VAlarm struct {
	Action      Action
	Trigger     Trigger
	Duration    *Duration
	Repeat      *int
	Description *Text
	Summary     *Text
	Attachments []Attachment
	Attendees   []CalAddress
	Extensions
}

func (VAlarm) ComponentType() ComponentType {
	return ComponentVAlarm
}

var valarmSchema = Schema[VAlarm]{
	Type: ComponentVAlarm,
	Fields: []Field[VAlarm]{
		Required(PropertyAction, enumValue(ParseAction), func(a *VAlarm) *Action { return &a.Action }),
		Required(PropertyTrigger, triggerValue, func(a *VAlarm) *Trigger { return &a.Trigger }),
		Optional(PropertyDuration, durationValue, func(a *VAlarm) **Duration { return &a.Duration }),
		Optional(PropertyRepeat, integerValue(0, math.MaxInt32), func(a *VAlarm) **int { return &a.Repeat }),
		Optional(PropertyDescription, textValue, func(a *VAlarm) **Text { return &a.Description }),
		Optional(PropertySummary, textValue, func(a *VAlarm) **Text { return &a.Summary }),
		Repeated(PropertyAttach, attachmentValue, func(a *VAlarm) *[]Attachment { return &a.Attachments }),
		Repeated(PropertyAttendee, calAddressValue, func(a *VAlarm) *[]CalAddress { return &a.Attendees }),
	},
	Extensions: (*VAlarm).Extended,
	Check:      checkAlarm,
}

// checkAlarm enforces RFC 5545 section 3.6.6.  DURATION and REPEAT come as a
// pair; the action decides which descriptive properties must be present.
func checkAlarm(a *VAlarm) error {
	missing := func(p Property) error {
		return &PropertyError{Component: ComponentVAlarm, Property: string(p), Err: ErrMissingField}
	}
	switch {
	case a.Duration != nil && a.Repeat == nil:
		return missing(PropertyRepeat)
	case a.Repeat != nil && a.Duration == nil:
		return missing(PropertyDuration)
	}
	switch a.Action {
	case ActionDisplay:
		if a.Description == nil {
			return missing(PropertyDescription)
		}
	case ActionEmail:
		switch {
		case a.Description == nil:
			return missing(PropertyDescription)
		case a.Summary == nil:
			return missing(PropertySummary)
		case len(a.Attendees) == 0:
			return missing(PropertyAttendee)
		}
	}
	return nil
}

// ParseVAlarm parses text holding a single BEGIN:VALARM ... END:VALARM block.
func ParseVAlarm(text string, ops ...any) (VAlarm, error) {
	return valarmSchema.Parse(text, ops...)
}

func VAlarmFromBag(bag PropertyBag, ops ...any) (VAlarm, error) {
	return valarmSchema.AssembleBag(bag, ops...)
}

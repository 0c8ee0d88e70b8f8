package ics

import (
	"fmt"
)

// ComponentType enumerates the component names defined in RFC 5545 section 3.6.
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
	// ComponentVTodo represents a VTODO component.
	ComponentVTodo ComponentType = "VTODO"
	// ComponentVJournal represents a VJOURNAL component.
	ComponentVJournal ComponentType = "VJOURNAL"
	// ComponentVFreeBusy represents a VFREEBUSY component.
	ComponentVFreeBusy ComponentType = "VFREEBUSY"
	// ComponentVTimezone represents a VTIMEZONE component.
	ComponentVTimezone ComponentType = "VTIMEZONE"
	// ComponentVAlarm represents a VALARM subcomponent.
	ComponentVAlarm ComponentType = "VALARM"
	// ComponentStandard represents a STANDARD timezone subcomponent.
	ComponentStandard ComponentType = "STANDARD"
	// ComponentDaylight represents a DAYLIGHT timezone subcomponent.
	ComponentDaylight ComponentType = "DAYLIGHT"
)

// Component is implemented by every assembled component.
type Component interface {
	ComponentType() ComponentType
	Extended() *Extensions
}

// ParseComponent assembles a block with the schema registered for its type.
// The result is a pointer such as *VEvent or *TimezoneRule.
func ParseComponent(b Block, ops ...any) (Component, error) {
	cfg, err := parseParseOps(ops)
	if err != nil {
		return nil, err
	}
	switch b.Type {
	case ComponentVCalendar:
		return assemblePtr(&calendarSchema, b, cfg)
	case ComponentVEvent:
		return assemblePtr(&veventSchema, b, cfg)
	case ComponentVTodo:
		return assemblePtr(&vtodoSchema, b, cfg)
	case ComponentVJournal:
		return assemblePtr(&vjournalSchema, b, cfg)
	case ComponentVFreeBusy:
		return assemblePtr(&vfreebusySchema, b, cfg)
	case ComponentVTimezone:
		return assemblePtr(&vtimezoneSchema, b, cfg)
	case ComponentVAlarm:
		return assemblePtr(&valarmSchema, b, cfg)
	case ComponentStandard:
		return assemblePtr(&standardSchema, b, cfg)
	case ComponentDaylight:
		return assemblePtr(&daylightSchema, b, cfg)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedComponentType, b.Type)
}

func assemblePtr[C any, PC interface {
	*C
	Component
}](s *Schema[C], b Block, cfg *ParseConfiguration) (Component, error) {
	c, err := s.assemble(b, cfg)
	if err != nil {
		return nil, err
	}
	return PC(&c), nil
}

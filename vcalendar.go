package ics

// Calendar represents a VCALENDAR object.  RFC 5545 section 3.6 says:
// "A 'VCALENDAR' object MUST include the 'PRODID' and 'VERSION' properties".
// Components are grouped by kind in document order.  Blocks with no schema,
// such as VAVAILABILITY, are kept untouched in Extensions.Components.
type Calendar struct {
	ProdId    string
	Version   string
	CalScale  *string
	Method    *string
	Events    []VEvent
	Todos     []VTodo
	Journals  []VJournal
	FreeBusy  []VFreeBusy
	Timezones []VTimezone
	Extensions
}

func (Calendar) ComponentType() ComponentType {
	return ComponentVCalendar
}

// Name returns the X-WR-CALNAME extension many publishers set.
func (cal *Calendar) Name() string {
	return cal.XProp("X-WR-CALNAME")
}

// Timezone returns the VTIMEZONE with the given TZID, or nil.
func (cal *Calendar) Timezone(tzid string) *VTimezone {
	for i := range cal.Timezones {
		if cal.Timezones[i].TzId == tzid {
			return &cal.Timezones[i]
		}
	}
	return nil
}

var calendarSchema = Schema[Calendar]{
	Type: ComponentVCalendar,
	Fields: []Field[Calendar]{
		Required(PropertyProductId, rawValue, func(c *Calendar) *string { return &c.ProdId }),
		Required(PropertyVersion, rawValue, func(c *Calendar) *string { return &c.Version }),
		Optional(PropertyCalscale, rawValue, func(c *Calendar) **string { return &c.CalScale }),
		Optional(PropertyMethod, rawValue, func(c *Calendar) **string { return &c.Method }),
	},
	Children: []Child[Calendar]{
		Nested(ComponentVEvent, &veventSchema, func(c *Calendar) *[]VEvent { return &c.Events }),
		Nested(ComponentVTodo, &vtodoSchema, func(c *Calendar) *[]VTodo { return &c.Todos }),
		Nested(ComponentVJournal, &vjournalSchema, func(c *Calendar) *[]VJournal { return &c.Journals }),
		Nested(ComponentVFreeBusy, &vfreebusySchema, func(c *Calendar) *[]VFreeBusy { return &c.FreeBusy }),
		Nested(ComponentVTimezone, &vtimezoneSchema, func(c *Calendar) *[]VTimezone { return &c.Timezones }),
	},
	Extensions: (*Calendar).Extended,
}

// CalendarFromBag assembles the calendar level properties only.
func CalendarFromBag(bag PropertyBag, ops ...any) (Calendar, error) {
	return calendarSchema.AssembleBag(bag, ops...)
}

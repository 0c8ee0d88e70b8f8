package ics

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func utc(y int, m time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

func TestParseVEvent(t *testing.T) {
	got, err := ParseVEvent(`BEGIN:VEVENT
UID:19970901T130000Z-123401@example.com
DTSTAMP:19970901T130000Z
DTSTART:19970903T163000Z
DTEND:19970903T190000Z
SUMMARY:Annual Employee Review
CLASS:PRIVATE
CATEGORIES:BUSINESS,HUMAN RESOURCES
PRIORITY:1
SEQUENCE:2
GEO:37.386013;-122.082932
URL:http://example.com/review
ORGANIZER;CN=Jane:mailto:jane@example.com
RESOURCES:EASEL,PROJECTOR
STATUS:TENTATIVE
RELATED-TO:parent@example.com
END:VEVENT
`, WithLocation{time.UTC})
	require.NoError(t, err)
	want := VEvent{
		Uid:        "19970901T130000Z-123401@example.com",
		DtStamp:    utc(1997, 9, 1, 13, 0, 0),
		DtStart:    ptr(utc(1997, 9, 3, 16, 30, 0)),
		DtEnd:      ptr(utc(1997, 9, 3, 19, 0, 0)),
		Summary:    &Text{Value: "Annual Employee Review"},
		Class:      ptr(ClassificationPrivate),
		Categories: []string{"BUSINESS", "HUMAN RESOURCES"},
		Priority:   ptr(1),
		Sequence:   ptr(2),
		Geo:        &Geo{Latitude: 37.386013, Longitude: -122.082932},
		Url:        ptr("http://example.com/review"),
		Organizer:  &CalAddress{Address: "mailto:jane@example.com", Params: Params{{Name: "CN", Values: []string{"Jane"}}}},
		Resources:  []string{"EASEL", "PROJECTOR"},
		Status:     ptr(ObjectStatusTentative),
		RelatedTo:  []string{"parent@example.com"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseVEvent mismatch (-want +got):\n%s", diff)
	}
	end, ok := got.End()
	assert.True(t, ok)
	assert.Equal(t, utc(1997, 9, 3, 19, 0, 0), end)
	assert.Equal(t, ComponentVEvent, got.ComponentType())
}

func TestVEventEndFromDuration(t *testing.T) {
	e, err := ParseVEvent("BEGIN:VEVENT\nUID:1\nDTSTAMP:20240101T000000Z\nDTSTART:20240101T100000Z\nDURATION:PT1H30M\nEND:VEVENT\n", WithLocation{time.UTC})
	require.NoError(t, err)
	end, ok := e.End()
	require.True(t, ok)
	assert.Equal(t, utc(2024, 1, 1, 11, 30, 0), end)

	_, ok = VEvent{}.End()
	assert.False(t, ok)
}

func TestVEventExclusiveEnd(t *testing.T) {
	_, err := ParseVEvent("BEGIN:VEVENT\nUID:1\nDTSTAMP:20240101T000000Z\nDTSTART:20240101T100000Z\nDTEND:20240101T110000Z\nDURATION:PT1H\nEND:VEVENT\n")
	assert.ErrorIs(t, err, ErrExclusiveProperties)
	assert.ErrorContains(t, err, "VEVENT: ")
}

func TestVEventWithAlarms(t *testing.T) {
	e, err := ParseVEvent(`BEGIN:VEVENT
UID:1
DTSTAMP:20240101T000000Z
BEGIN:VALARM
ACTION:AUDIO
TRIGGER;VALUE=DATE-TIME:19970317T133000Z
REPEAT:4
DURATION:PT15M
ATTACH;FMTTYPE=audio/basic:ftp://example.com/pub/sounds/bell-01.aud
END:VALARM
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER;RELATED=END:-PT5M
DESCRIPTION:Almost over
END:VALARM
END:VEVENT
`, WithLocation{time.UTC})
	require.NoError(t, err)
	require.Len(t, e.Alarms, 2)
	assert.Equal(t, AbsoluteTrigger{Time: utc(1997, 3, 17, 13, 30, 0)}, e.Alarms[0].Trigger)
	assert.Equal(t, 4, *e.Alarms[0].Repeat)
	assert.Equal(t, "audio/basic", e.Alarms[0].Attachments[0].Params.First(ParameterFmttype))
	assert.Equal(t, RelativeTrigger{Duration: Duration{Negative: true, Minutes: 5}, Related: TriggerRelatedEnd}, e.Alarms[1].Trigger)
	assert.Equal(t, "Almost over", e.Alarms[1].Description.Value)
}

func TestVAlarmChecks(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		missing string
	}{
		{"duration without repeat", "ACTION:AUDIO\nTRIGGER:-PT5M\nDURATION:PT5M\n", "REPEAT"},
		{"repeat without duration", "ACTION:AUDIO\nTRIGGER:-PT5M\nREPEAT:2\n", "DURATION"},
		{"display needs description", "ACTION:DISPLAY\nTRIGGER:-PT5M\n", "DESCRIPTION"},
		{"email needs description", "ACTION:EMAIL\nTRIGGER:-PT5M\nSUMMARY:s\nATTENDEE:mailto:a@example.com\n", "DESCRIPTION"},
		{"email needs summary", "ACTION:EMAIL\nTRIGGER:-PT5M\nDESCRIPTION:d\nATTENDEE:mailto:a@example.com\n", "SUMMARY"},
		{"email needs attendee", "ACTION:EMAIL\nTRIGGER:-PT5M\nDESCRIPTION:d\nSUMMARY:s\n", "ATTENDEE"},
		{"action is required", "TRIGGER:-PT5M\n", "ACTION"},
		{"trigger is required", "ACTION:AUDIO\n", "TRIGGER"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ParseVAlarm("BEGIN:VALARM\n" + tc.body + "END:VALARM\n")
			assert.ErrorIs(t, err, ErrMissingField)
			var pe *PropertyError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.missing, pe.Property)
			assert.Equal(t, ComponentVAlarm, pe.Component)
			assert.Equal(t, Action(""), a.Action)
		})
	}

	a, err := ParseVAlarm("BEGIN:VALARM\nACTION:EMAIL\nTRIGGER:-P1D\nDESCRIPTION:d\nSUMMARY:s\nATTENDEE:mailto:a@example.com\nEND:VALARM\n")
	require.NoError(t, err)
	assert.Equal(t, ActionEmail, a.Action)

	_, err = ParseVAlarm("BEGIN:VALARM\nACTION:BEEP\nTRIGGER:-PT5M\nEND:VALARM\n")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestParseVTodo(t *testing.T) {
	todo, err := ParseVTodo(`BEGIN:VTODO
UID:20070313T123432Z-456553@example.com
DTSTAMP:20070313T123432Z
DUE;VALUE=DATE:20070501
SUMMARY:Submit Quebec Income Tax Return for 2006
CLASS:CONFIDENTIAL
CATEGORIES:FAMILY,FINANCE
STATUS:NEEDS-ACTION
PERCENT-COMPLETE:40
COMPLETED:20070407T133000Z
END:VTODO
`, WithLocation{time.UTC})
	require.NoError(t, err)
	assert.Equal(t, utc(2007, 5, 1, 0, 0, 0), *todo.Due)
	assert.Equal(t, 40, *todo.PercentComplete)
	assert.Equal(t, ObjectStatusNeedsAction, *todo.Status)
	assert.Equal(t, []string{"FAMILY", "FINANCE"}, todo.Categories)
	due, ok := todo.DueAt()
	assert.True(t, ok)
	assert.Equal(t, utc(2007, 5, 1, 0, 0, 0), due)
}

func TestVTodoChecks(t *testing.T) {
	_, err := ParseVTodo("BEGIN:VTODO\nUID:1\nDTSTAMP:20240101T000000Z\nDTSTART:20240101T000000Z\nDUE:20240102T000000Z\nDURATION:P1D\nEND:VTODO\n")
	assert.ErrorIs(t, err, ErrExclusiveProperties)

	_, err = ParseVTodo("BEGIN:VTODO\nUID:1\nDTSTAMP:20240101T000000Z\nDURATION:P1D\nEND:VTODO\n")
	assert.ErrorIs(t, err, ErrMissingField)
	var pe *PropertyError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "DTSTART", pe.Property)

	_, err = ParseVTodo("BEGIN:VTODO\nUID:1\nDTSTAMP:20240101T000000Z\nPERCENT-COMPLETE:101\nEND:VTODO\n")
	assert.ErrorIs(t, err, ErrInvalidValue)

	todo, err := ParseVTodo("BEGIN:VTODO\nUID:1\nDTSTAMP:20240101T000000Z\nDTSTART:20240101T000000Z\nDURATION:P1D\nEND:VTODO\n", WithLocation{time.UTC})
	require.NoError(t, err)
	due, ok := todo.DueAt()
	assert.True(t, ok)
	assert.Equal(t, utc(2024, 1, 2, 0, 0, 0), due)
}

func TestParseVJournal(t *testing.T) {
	j, err := ParseVJournal(`BEGIN:VJOURNAL
UID:19970901T130000Z-123405@example.com
DTSTAMP:19970901T130000Z
DTSTART;VALUE=DATE:19970317
SUMMARY:Staff meeting minutes
DESCRIPTION:1. Staff meeting: Participants include Joe\,
  Lisa\, and Bob.
DESCRIPTION:2. Telephone Conference
END:VJOURNAL
`, WithLocation{time.UTC})
	require.NoError(t, err)
	require.Len(t, j.Descriptions, 2)
	assert.Equal(t, "1. Staff meeting: Participants include Joe, Lisa, and Bob.", j.Descriptions[0].Value)
	assert.Equal(t, "Staff meeting minutes", j.Summary.Value)
	assert.Equal(t, utc(1997, 3, 17, 0, 0, 0), *j.DtStart)
}

func TestParseVFreeBusy(t *testing.T) {
	fb, err := ParseVFreeBusy(`BEGIN:VFREEBUSY
UID:19970901T115957Z-76A912@example.com
DTSTAMP:19970901T120000Z
ORGANIZER:mailto:jsmith@example.com
DTSTART:19980313T141711Z
DTEND:19980410T141711Z
FREEBUSY:19980314T233000Z/19980315T003000Z
FREEBUSY;FBTYPE=FREE:19980316T153000Z/19980316T163000Z,19980318T030000Z/19980318T040000Z
FREEBUSY;FBTYPE=BUSY-TENTATIVE:19980319T120000Z/PT1H
END:VFREEBUSY
`, WithLocation{time.UTC})
	require.NoError(t, err)
	require.Len(t, fb.FreeBusy, 4)
	busy := fb.Busy()
	require.Len(t, busy, 2)
	assert.Equal(t, FreeBusyTimeTypeBusy, busy[0].Type)
	assert.Equal(t, FreeBusyTimeTypeBusyTentative, busy[1].Type)
	assert.Equal(t, utc(1998, 3, 19, 13, 0, 0), busy[1].Period.PeriodEnd())
	assert.Equal(t, "jsmith@example.com", fb.Organizer.Email())
}

const copenhagenTimezone = `BEGIN:VTIMEZONE
TZID:Custom/Copenhagen
TZURL:http://tz.example.com/Copenhagen
BEGIN:STANDARD
DTSTART:19701025T030000
TZOFFSETFROM:+0200
TZOFFSETTO:+0100
TZNAME:CET
RRULE:FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU
END:STANDARD
BEGIN:DAYLIGHT
DTSTART:19700329T020000
TZOFFSETFROM:+0100
TZOFFSETTO:+0200
TZNAME:CEST
RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU
END:DAYLIGHT
END:VTIMEZONE
`

func TestParseVTimezone(t *testing.T) {
	tz, err := ParseVTimezone(copenhagenTimezone, WithLocation{time.UTC})
	require.NoError(t, err)
	assert.Equal(t, "Custom/Copenhagen", tz.TzId)
	assert.Equal(t, "http://tz.example.com/Copenhagen", *tz.TzUrl)
	require.Len(t, tz.Standard, 1)
	require.Len(t, tz.Daylight, 1)

	std := tz.Standard[0]
	assert.Equal(t, ComponentStandard, std.Kind)
	assert.Equal(t, ComponentStandard, std.ComponentType())
	assert.Equal(t, UTCOffset(3600), std.OffsetTo)
	assert.Equal(t, UTCOffset(7200), std.OffsetFrom)
	assert.Equal(t, time.Date(1970, 10, 25, 3, 0, 0, 0, time.UTC), std.DtStart)
	name, off := time.Date(2024, 1, 1, 0, 0, 0, 0, std.Location()).Zone()
	assert.Equal(t, "CET", name)
	assert.Equal(t, 3600, off)

	dl := tz.Daylight[0]
	assert.Equal(t, ComponentDaylight, dl.ComponentType())
	require.NotNil(t, dl.RRule)
	assert.Equal(t, []WeekdayNum{{Weekday: Sunday, Ordinal: -1}}, dl.RRule.ByDay)
}

func TestVTimezoneNeedsObservance(t *testing.T) {
	_, err := ParseVTimezone("BEGIN:VTIMEZONE\nTZID:Nowhere\nEND:VTIMEZONE\n")
	assert.ErrorIs(t, err, ErrMalformedComponent)

	tz, err := VTimezoneFromBag(NewPropertyBag(ContentLine{Name: "TZID", Value: "Nowhere"}))
	require.NoError(t, err)
	assert.Equal(t, "Nowhere", tz.TzId)
}

func TestTimezoneRuleFromBag(t *testing.T) {
	bag := NewPropertyBag(mustLines(t,
		"DTSTART:19700329T020000",
		"TZOFFSETFROM:+0100",
		"TZOFFSETTO:+0200",
	)...)
	r, err := TimezoneRuleFromBag(ComponentDaylight, bag, WithLocation{time.UTC})
	require.NoError(t, err)
	assert.Equal(t, ComponentDaylight, r.Kind)
	assert.Equal(t, UTCOffset(7200), r.OffsetTo)

	_, err = TimezoneRuleFromBag(ComponentVEvent, bag)
	assert.ErrorIs(t, err, ErrUnsupportedComponentType)

	_, err = TimezoneRuleFromBag(ComponentStandard, NewPropertyBag(mustLines(t, "DTSTART:19700329T020000")...))
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestFromBagConstructors(t *testing.T) {
	base := mustLines(t, "UID:1", "DTSTAMP:20240101T000000Z")

	todo, err := VTodoFromBag(NewPropertyBag(base...))
	require.NoError(t, err)
	assert.Equal(t, "1", todo.Uid)

	j, err := VJournalFromBag(NewPropertyBag(base...))
	require.NoError(t, err)
	assert.Equal(t, "1", j.Uid)

	fb, err := VFreeBusyFromBag(NewPropertyBag(base...))
	require.NoError(t, err)
	assert.Equal(t, "1", fb.Uid)

	a, err := VAlarmFromBag(NewPropertyBag(mustLines(t, "ACTION:AUDIO", "TRIGGER:PT0S")...))
	require.NoError(t, err)
	assert.Equal(t, ActionAudio, a.Action)

	cal, err := CalendarFromBag(NewPropertyBag(mustLines(t, "VERSION:2.0", "PRODID:-//x//y//EN", "X-WR-CALNAME:Home")...))
	require.NoError(t, err)
	assert.Equal(t, "Home", cal.Name())
}

func TestParseComponent(t *testing.T) {
	testCases := []struct {
		text string
		want ComponentType
	}{
		{"BEGIN:VEVENT\nUID:1\nDTSTAMP:20240101T000000Z\nEND:VEVENT\n", ComponentVEvent},
		{"BEGIN:VTODO\nUID:1\nDTSTAMP:20240101T000000Z\nEND:VTODO\n", ComponentVTodo},
		{"BEGIN:VJOURNAL\nUID:1\nDTSTAMP:20240101T000000Z\nEND:VJOURNAL\n", ComponentVJournal},
		{"BEGIN:VFREEBUSY\nUID:1\nDTSTAMP:20240101T000000Z\nEND:VFREEBUSY\n", ComponentVFreeBusy},
		{copenhagenTimezone, ComponentVTimezone},
		{"BEGIN:VALARM\nACTION:AUDIO\nTRIGGER:PT0S\nEND:VALARM\n", ComponentVAlarm},
		{"BEGIN:STANDARD\nDTSTART:19701025T030000\nTZOFFSETFROM:+0200\nTZOFFSETTO:+0100\nEND:STANDARD\n", ComponentStandard},
		{"BEGIN:DAYLIGHT\nDTSTART:19700329T020000\nTZOFFSETFROM:+0100\nTZOFFSETTO:+0200\nEND:DAYLIGHT\n", ComponentDaylight},
		{"BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:x\nEND:VCALENDAR\n", ComponentVCalendar},
	}
	for _, tc := range testCases {
		t.Run(string(tc.want), func(t *testing.T) {
			b, err := ParseBlock(tc.text)
			require.NoError(t, err)
			c, err := ParseComponent(b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.ComponentType())
			assert.NotNil(t, c.Extended())
		})
	}

	b, err := ParseBlock("BEGIN:VEVENT\nUID:1\nDTSTAMP:20240101T000000Z\nX-A:1\nEND:VEVENT\n")
	require.NoError(t, err)
	c, err := ParseComponent(b)
	require.NoError(t, err)
	e, ok := c.(*VEvent)
	require.True(t, ok)
	assert.Equal(t, "1", e.Uid)
	assert.Equal(t, "1", c.Extended().XProp("X-A"))

	_, err = ParseComponent(Block{Type: "VAVAILABILITY"})
	assert.ErrorIs(t, err, ErrUnsupportedComponentType)

	_, err = ParseComponent(Block{Type: ComponentVEvent})
	assert.ErrorIs(t, err, ErrMissingField)
}

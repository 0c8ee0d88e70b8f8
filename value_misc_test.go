package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeo(t *testing.T) {
	testCases := []struct {
		input string
		want  Geo
	}{
		{"37.386013;-122.082932", Geo{Latitude: 37.386013, Longitude: -122.082932}},
		{"-33.8688,151.2093", Geo{Latitude: -33.8688, Longitude: 151.2093}},
		{"0;0", Geo{}},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseGeo(tc.input)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Latitude, got.Latitude, 1e-9)
			assert.InDelta(t, tc.want.Longitude, got.Longitude, 1e-9)
		})
	}
	for _, s := range []string{"", "37.1", "north;south", "1;2;3", "91;0", "0;181"} {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ParseGeo(s)
			assert.ErrorIs(t, err, ErrInvalidGeo)
		})
	}
}

func TestParseRequestStatus(t *testing.T) {
	got, err := ParseRequestStatus(`3.1;Invalid property value;DTSTART:96-Apr-01`)
	require.NoError(t, err)
	assert.Equal(t, RequestStatus{Code: "3.1", Description: "Invalid property value", Data: "DTSTART:96-Apr-01"}, got)

	got, err = ParseRequestStatus(`2.8; Success\, repeating event ignored. Scheduled as a single event.;RRULE:FREQ=WEEKLY\;INTERVAL=2`)
	require.NoError(t, err)
	assert.Equal(t, "2.8", got.Code)
	assert.Equal(t, " Success, repeating event ignored. Scheduled as a single event.", got.Description)
	assert.Equal(t, "RRULE:FREQ=WEEKLY;INTERVAL=2", got.Data)

	for _, s := range []string{"2.0", "x.0;Success", "2;Success"} {
		_, err := ParseRequestStatus(s)
		assert.ErrorIs(t, err, ErrInvalidValue, s)
	}
}

func TestParseUTCOffset(t *testing.T) {
	testCases := []struct {
		input string
		want  UTCOffset
	}{
		{"+0100", 3600},
		{"-0500", -5 * 3600},
		{"+005328", 53*60 + 28},
		{"+0000", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseUTCOffset(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	for _, s := range []string{"-0000", "0100", "+1", "+2400", "+0160"} {
		_, err := ParseUTCOffset(s)
		assert.ErrorIs(t, err, ErrInvalidValue, s)
	}
	off, _ := ParseUTCOffset("-0430")
	assert.Equal(t, -(4*time.Hour + 30*time.Minute), off.Duration())
	_, secs := time.Date(2024, 1, 1, 0, 0, 0, 0, off.Location("X")).Zone()
	assert.Equal(t, -16200, secs)
}

func TestIntegerValue(t *testing.T) {
	parse := integerValue(0, 9)
	for input, want := range map[string]int{"0": 0, "9": 9, "+5": 5} {
		got, err := parse(ContentLine{Name: "PRIORITY", Value: input}, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, input := range []string{"10", "-1", "high", ""} {
		_, err := parse(ContentLine{Name: "PRIORITY", Value: input}, nil)
		assert.ErrorIs(t, err, ErrInvalidValue, input)
	}
}

func TestTriggerValue(t *testing.T) {
	cfg := &ParseConfiguration{Location: time.UTC}
	testCases := []struct {
		line string
		want Trigger
	}{
		{"TRIGGER:-PT15M", RelativeTrigger{Duration: Duration{Negative: true, Minutes: 15}, Related: TriggerRelatedStart}},
		{"TRIGGER;RELATED=END:PT5M", RelativeTrigger{Duration: Duration{Minutes: 5}, Related: TriggerRelatedEnd}},
		{"TRIGGER;VALUE=DATE-TIME:19980101T050000Z", AbsoluteTrigger{Time: time.Date(1998, 1, 1, 5, 0, 0, 0, time.UTC)}},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			cl, err := ParseContentLine(LogicalLine(tc.line))
			require.NoError(t, err)
			got, err := triggerValue(cl, cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, line := range []string{"TRIGGER:15M", "TRIGGER;RELATED=MIDDLE:PT5M", "TRIGGER;VALUE=DATE-TIME:-PT5M"} {
		cl, err := ParseContentLine(LogicalLine(line))
		require.NoError(t, err)
		_, err = triggerValue(cl, cfg)
		assert.Error(t, err, line)
	}

	got, err := ParseTrigger(ContentLine{Name: "TRIGGER", Value: "P1D"})
	require.NoError(t, err)
	assert.Equal(t, RelativeTrigger{Duration: Duration{Days: 1}, Related: TriggerRelatedStart}, got)
}

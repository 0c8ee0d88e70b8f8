package ics

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	icalTimestampFormatUtc   = "20060102T150405Z"
	icalTimestampFormatLocal = "20060102T150405"
	icalDateFormatLocal      = "20060102"
)

var dateTimeReg = regexp.MustCompile("^[0-9]{8}(T[0-9]{6}Z?)?$")

// ParseDateTime parses a DATE or DATE-TIME value (RFC 5545 sections 3.3.4 and
// 3.3.5).  A date is taken as midnight local time, a floating date-time as
// local time, and a date-time with a trailing Z as UTC converted to local time.
func ParseDateTime(s string) (time.Time, error) {
	return parseDateTimeIn(s, time.Local)
}

func parseDateTimeIn(s string, loc *time.Location) (time.Time, error) {
	if !dateTimeReg.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	v := s
	if len(v) == len(icalDateFormatLocal) {
		v += "T000000"
	}
	if strings.HasSuffix(v, "Z") {
		t, err := time.ParseInLocation(icalTimestampFormatUtc, v, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
		}
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation(icalTimestampFormatLocal, v, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// propertyLocation returns the zone a content line's time values belong to.
// A TZID naming a zone the Go time database does not know, such as a custom
// VTIMEZONE, falls back to the configured location.
func propertyLocation(cl ContentLine, cfg *ParseConfiguration) *time.Location {
	if tzid := cl.Params.First(ParameterTzid); tzid != "" {
		if loc, err := time.LoadLocation(strings.TrimPrefix(tzid, "/")); err == nil {
			return loc
		}
	}
	return cfg.Location
}

func dateTimeValue(cl ContentLine, cfg *ParseConfiguration) (time.Time, error) {
	return parseDateTimeIn(cl.Value, propertyLocation(cl, cfg))
}

// dateTimeListValue parses comma separated date-times such as EXDATE.
func dateTimeListValue(cl ContentLine, cfg *ParseConfiguration) ([]time.Time, error) {
	loc := propertyLocation(cl, cfg)
	var r []time.Time
	for _, v := range strings.Split(cl.Value, ",") {
		t, err := parseDateTimeIn(v, loc)
		if err != nil {
			return nil, err
		}
		r = append(r, t)
	}
	return r, nil
}

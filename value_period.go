package ics

import (
	"fmt"
	"strings"
	"time"
)

// Period is a PERIOD value (RFC 5545 section 3.3.9).  It is either a StartEnd
// or a StartDur, never both.
type Period interface {
	PeriodStart() time.Time
	PeriodEnd() time.Time
	isPeriod()
}

// StartEnd is a period with an explicit end.
type StartEnd struct {
	Start time.Time
	End   time.Time
}

// StartDur is a period given as a start and a duration.
type StartDur struct {
	Start    time.Time
	Duration Duration
}

func (p StartEnd) PeriodStart() time.Time { return p.Start }
func (p StartEnd) PeriodEnd() time.Time   { return p.End }
func (StartEnd) isPeriod()                {}

func (p StartDur) PeriodStart() time.Time { return p.Start }
func (p StartDur) PeriodEnd() time.Time   { return p.Start.Add(p.Duration.Std()) }
func (StartDur) isPeriod()                {}

// ParsePeriod parses "start/end" or "start/duration".  The second half is a
// duration when it begins with P, optionally preceded by a sign.
func ParsePeriod(s string) (Period, error) {
	return parsePeriodIn(s, time.Local)
}

func parsePeriodIn(s string, loc *time.Location) (Period, error) {
	start, rest, ok := strings.Cut(s, "/")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no '/'", ErrInvalidPeriod, s)
	}
	st, err := parseDateTimeIn(start, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPeriod, s, err)
	}
	if strings.HasPrefix(strings.TrimLeft(rest, "+-"), "P") {
		d, err := ParseDuration(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPeriod, s, err)
		}
		return StartDur{Start: st, Duration: d}, nil
	}
	end, err := parseDateTimeIn(rest, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPeriod, s, err)
	}
	return StartEnd{Start: st, End: end}, nil
}

func periodListValue(cl ContentLine, cfg *ParseConfiguration) ([]Period, error) {
	loc := propertyLocation(cl, cfg)
	var r []Period
	for _, v := range strings.Split(cl.Value, ",") {
		p, err := parsePeriodIn(v, loc)
		if err != nil {
			return nil, err
		}
		r = append(r, p)
	}
	return r, nil
}

// FreeBusyPeriod is one period of a FREEBUSY property with its FBTYPE.
type FreeBusyPeriod struct {
	Type FreeBusyTimeType
	Period
}

func freeBusyValue(cl ContentLine, cfg *ParseConfiguration) ([]FreeBusyPeriod, error) {
	fbType := FreeBusyTimeTypeBusy
	if v := cl.Params.First(ParameterFbtype); v != "" {
		var err error
		if fbType, err = ParseFreeBusyTimeType(v); err != nil {
			return nil, err
		}
	}
	periods, err := periodListValue(cl, cfg)
	if err != nil {
		return nil, err
	}
	r := make([]FreeBusyPeriod, 0, len(periods))
	for _, p := range periods {
		r = append(r, FreeBusyPeriod{Type: fbType, Period: p})
	}
	return r, nil
}

// RDate is one RDATE value: a date-time, or a period when the property has
// VALUE=PERIOD.
type RDate struct {
	Time   time.Time
	Period Period
}

func rdateValue(cl ContentLine, cfg *ParseConfiguration) ([]RDate, error) {
	loc := propertyLocation(cl, cfg)
	isPeriod := strings.EqualFold(cl.Params.First(ParameterValue), "PERIOD")
	var r []RDate
	for _, v := range strings.Split(cl.Value, ",") {
		if isPeriod || strings.Contains(v, "/") {
			p, err := parsePeriodIn(v, loc)
			if err != nil {
				return nil, err
			}
			r = append(r, RDate{Time: p.PeriodStart(), Period: p})
			continue
		}
		t, err := parseDateTimeIn(v, loc)
		if err != nil {
			return nil, err
		}
		r = append(r, RDate{Time: t})
	}
	return r, nil
}

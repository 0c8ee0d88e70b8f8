package ics

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleFreqs = map[Freq]rrule.Frequency{
	FreqYearly:   rrule.YEARLY,
	FreqMonthly:  rrule.MONTHLY,
	FreqWeekly:   rrule.WEEKLY,
	FreqDaily:    rrule.DAILY,
	FreqHourly:   rrule.HOURLY,
	FreqMinutely: rrule.MINUTELY,
	FreqSecondly: rrule.SECONDLY,
}

var rruleWeekdays = map[Weekday]rrule.Weekday{
	Monday:    rrule.MO,
	Tuesday:   rrule.TU,
	Wednesday: rrule.WE,
	Thursday:  rrule.TH,
	Friday:    rrule.FR,
	Saturday:  rrule.SA,
	Sunday:    rrule.SU,
}

// ROption converts the rule into options for github.com/teambition/rrule-go,
// anchored at dtstart.  This package does not expand rules itself; callers
// that need occurrences hand the options to rrule.NewRRule.
func (r Recur) ROption(dtstart time.Time) rrule.ROption {
	opt := rrule.ROption{
		Freq:       rruleFreqs[r.Freq],
		Dtstart:    dtstart,
		Interval:   r.Interval,
		Bysecond:   r.BySecond,
		Byminute:   r.ByMinute,
		Byhour:     r.ByHour,
		Bymonthday: r.ByMonthDay,
		Byyearday:  r.ByYearDay,
		Byweekno:   r.ByWeekNo,
		Bymonth:    r.ByMonth,
		Bysetpos:   r.BySetPos,
	}
	switch end := r.End.(type) {
	case RecurUntil:
		opt.Until = end.Time
	case RecurCount:
		opt.Count = end.Count
	}
	if r.WeekStart != "" {
		opt.Wkst = rruleWeekdays[r.WeekStart]
	}
	for _, d := range r.ByDay {
		wd := rruleWeekdays[d.Weekday]
		if d.Ordinal != 0 {
			wd = wd.Nth(d.Ordinal)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	return opt
}

// RRule builds an rrule-go rule from r.
func (r Recur) RRule(dtstart time.Time) (*rrule.RRule, error) {
	return rrule.NewRRule(r.ROption(dtstart))
}

// RecurrenceSet combines the event's RRULE, RDATE and EXDATE into an
// rrule-go set anchored at DTSTART.  RDATE periods contribute their start
// time.  It fails when the event has no DTSTART.
func (e VEvent) RecurrenceSet() (*rrule.Set, error) {
	if e.DtStart == nil {
		return nil, &PropertyError{Component: ComponentVEvent, Property: string(PropertyDtstart), Err: ErrMissingField}
	}
	set := &rrule.Set{}
	set.DTStart(*e.DtStart)
	if e.RRule != nil {
		r, err := e.RRule.RRule(*e.DtStart)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecur, err)
		}
		set.RRule(r)
	}
	for _, rd := range e.RDates {
		set.RDate(rd.Time)
	}
	for _, ex := range e.ExDates {
		set.ExDate(ex)
	}
	return set, nil
}

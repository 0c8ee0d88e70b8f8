package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WeekdayNum is one BYDAY element.  Ordinal is 0 when the rule means every
// such weekday, otherwise it is in -53..-1 or 1..53.
type WeekdayNum struct {
	Weekday Weekday
	Ordinal int
}

var weekdayNumReg = regexp.MustCompile(`^([+-]?[0-9]{1,2})?([A-Z]{2})$`)

// ParseWeekdayNum parses "[+|-][ordinal]WD", for example "MO", "+2TU" or "-1FR".
func ParseWeekdayNum(s string) (WeekdayNum, error) {
	m := weekdayNumReg.FindStringSubmatch(s)
	if m == nil {
		return WeekdayNum{}, fmt.Errorf("weekday %q is malformed", s)
	}
	wd, err := ParseWeekday(m[2])
	if err != nil {
		return WeekdayNum{}, err
	}
	r := WeekdayNum{Weekday: wd}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n == 0 || n < -53 || n > 53 {
			return WeekdayNum{}, fmt.Errorf("weekday ordinal %q is outside -53..53", m[1])
		}
		r.Ordinal = n
	}
	return r, nil
}

// RecurEnd bounds a recurrence: RecurUntil or RecurCount.  A nil RecurEnd
// repeats forever.
type RecurEnd interface {
	isRecurEnd()
}

type RecurUntil struct {
	Time time.Time
}

type RecurCount struct {
	Count int
}

func (RecurUntil) isRecurEnd() {}
func (RecurCount) isRecurEnd() {}

// Recur is a RECUR value (RFC 5545 section 3.3.10).  Interval is 0 and
// WeekStart is "" when the rule does not give them.
type Recur struct {
	Freq       Freq
	End        RecurEnd
	Interval   int
	BySecond   []int
	ByMinute   []int
	ByHour     []int
	ByDay      []WeekdayNum
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByMonth    []int
	BySetPos   []int
	WeekStart  Weekday
}

// Until returns the UNTIL bound if the rule has one.
func (r Recur) Until() (time.Time, bool) {
	u, ok := r.End.(RecurUntil)
	return u.Time, ok
}

// Count returns the COUNT bound if the rule has one.
func (r Recur) Count() (int, bool) {
	c, ok := r.End.(RecurCount)
	return c.Count, ok
}

// EffectiveInterval returns Interval, or 1 when it was not given.
func (r Recur) EffectiveInterval() int {
	if r.Interval == 0 {
		return 1
	}
	return r.Interval
}

// ParseRecur parses a recurrence rule such as "FREQ=WEEKLY;COUNT=4;BYDAY=MO,WE".
// Unknown rule parts are ignored.  ops accepts the same options as the
// component parsers; RecurEndConflict decides what UNTIL together with COUNT
// means.
func ParseRecur(s string, ops ...any) (Recur, error) {
	cfg, err := parseParseOps(ops)
	if err != nil {
		return Recur{}, err
	}
	return parseRecur(s, cfg)
}

func parseRecur(s string, cfg *ParseConfiguration) (Recur, error) {
	var r Recur
	var sawUntil, sawCount bool
	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return Recur{}, fmt.Errorf("%w: rule part %q has no '='", ErrInvalidRecur, part)
		}
		var err error
		switch k = strings.ToUpper(k); k {
		case "FREQ":
			r.Freq, err = ParseFreq(v)
		case "UNTIL":
			var t time.Time
			if t, err = parseDateTimeIn(v, cfg.Location); err == nil {
				sawUntil = true
				r.End = RecurUntil{Time: t}
			}
		case "COUNT":
			var n int
			if n, err = positiveInt(v); err == nil {
				sawCount = true
				r.End = RecurCount{Count: n}
			}
		case "INTERVAL":
			r.Interval, err = positiveInt(v)
		case "BYSECOND":
			r.BySecond, err = intList(v, 0, 60, false)
		case "BYMINUTE":
			r.ByMinute, err = intList(v, 0, 59, false)
		case "BYHOUR":
			r.ByHour, err = intList(v, 0, 23, false)
		case "BYDAY":
			r.ByDay, err = weekdayNumList(v)
		case "BYMONTHDAY":
			r.ByMonthDay, err = intList(v, 1, 31, true)
		case "BYYEARDAY":
			r.ByYearDay, err = intList(v, 1, 366, true)
		case "BYWEEKNO":
			r.ByWeekNo, err = intList(v, 1, 53, true)
		case "BYMONTH":
			r.ByMonth, err = intList(v, 1, 12, false)
		case "BYSETPOS":
			r.BySetPos, err = intList(v, 1, 366, true)
		case "WKST":
			r.WeekStart, err = ParseWeekday(v)
		}
		if err != nil {
			return Recur{}, fmt.Errorf("%w: %s: %w", ErrInvalidRecur, k, err)
		}
	}
	if r.Freq == "" {
		return Recur{}, fmt.Errorf("%w: %w: FREQ is required", ErrInvalidRecur, ErrInvalidFreq)
	}
	if sawUntil && sawCount && cfg.RecurEndConflict == RecurEndConflictReject {
		return Recur{}, fmt.Errorf("%w: UNTIL and COUNT must not both be set", ErrInvalidRecur)
	}
	return r, nil
}

func positiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a positive integer", v)
	}
	return n, nil
}

// intList parses a comma separated list of integers in lo..hi.  When signed
// is set the negated range -hi..-lo is accepted as well.
func intList(v string, lo, hi int, signed bool) ([]int, error) {
	var r []int
	for _, s := range strings.Split(v, ",") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		inRange := n >= lo && n <= hi
		if signed && n < 0 {
			inRange = -n >= lo && -n <= hi
		}
		if !inRange {
			return nil, fmt.Errorf("%d is out of range", n)
		}
		r = append(r, n)
	}
	return r, nil
}

func weekdayNumList(v string) ([]WeekdayNum, error) {
	var r []WeekdayNum
	for _, s := range strings.Split(v, ",") {
		wd, err := ParseWeekdayNum(s)
		if err != nil {
			return nil, err
		}
		r = append(r, wd)
	}
	return r, nil
}

func recurValue(cl ContentLine, cfg *ParseConfiguration) (Recur, error) {
	return parseRecur(cl.Value, cfg)
}

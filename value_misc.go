package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Geo is a GEO value (RFC 5545 section 3.8.1.6).
type Geo struct {
	Latitude  float64
	Longitude float64
}

// ParseGeo parses "lat;lon".  A comma is accepted as the separator too.
func ParseGeo(s string) (Geo, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		parts = strings.Split(s, ",")
	}
	if len(parts) != 2 {
		return Geo{}, fmt.Errorf("%w: %q", ErrInvalidGeo, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Geo{}, fmt.Errorf("%w: %q: %v", ErrInvalidGeo, s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Geo{}, fmt.Errorf("%w: %q: %v", ErrInvalidGeo, s, err)
	}
	if !(lat >= -90 && lat <= 90) || !(lon >= -180 && lon <= 180) {
		return Geo{}, fmt.Errorf("%w: %q out of range", ErrInvalidGeo, s)
	}
	return Geo{Latitude: lat, Longitude: lon}, nil
}

func geoValue(cl ContentLine, _ *ParseConfiguration) (Geo, error) {
	return ParseGeo(cl.Value)
}

// RequestStatus is a REQUEST-STATUS value (RFC 5545 section 3.8.8.3).
type RequestStatus struct {
	Code        string
	Description string
	Data        string
}

var statusCodeReg = regexp.MustCompile(`^[0-9](\.[0-9]+){1,2}$`)

// ParseRequestStatus parses "code;description[;data]".
func ParseRequestStatus(s string) (RequestStatus, error) {
	parts := splitUnescaped(s, ';')
	if len(parts) < 2 {
		return RequestStatus{}, fmt.Errorf("%w: request status %q needs a code and a description", ErrInvalidValue, s)
	}
	if !statusCodeReg.MatchString(parts[0]) {
		return RequestStatus{}, fmt.Errorf("%w: request status code %q", ErrInvalidValue, parts[0])
	}
	rs := RequestStatus{
		Code:        parts[0],
		Description: FromText(parts[1]),
	}
	if len(parts) > 2 {
		rs.Data = FromText(strings.Join(parts[2:], ";"))
	}
	return rs, nil
}

func requestStatusValue(cl ContentLine, _ *ParseConfiguration) (RequestStatus, error) {
	return ParseRequestStatus(cl.Value)
}

// UTCOffset is a UTC-OFFSET value in seconds east of UTC.
type UTCOffset int

var utcOffsetReg = regexp.MustCompile(`^([+-])([0-9]{2})([0-9]{2})([0-9]{2})?$`)

// ParseUTCOffset parses "(+|-)HHMM[SS]" (RFC 5545 section 3.3.14).  "-0000"
// is not allowed.
func ParseUTCOffset(s string) (UTCOffset, error) {
	m := utcOffsetReg.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: utc offset %q", ErrInvalidValue, s)
	}
	h, _ := strconv.Atoi(m[2])
	mi, _ := strconv.Atoi(m[3])
	sec := 0
	if m[4] != "" {
		sec, _ = strconv.Atoi(m[4])
	}
	if h > 23 || mi > 59 || sec > 59 {
		return 0, fmt.Errorf("%w: utc offset %q out of range", ErrInvalidValue, s)
	}
	n := h*3600 + mi*60 + sec
	if m[1] == "-" {
		if n == 0 {
			return 0, fmt.Errorf("%w: utc offset %q must not be negative zero", ErrInvalidValue, s)
		}
		n = -n
	}
	return UTCOffset(n), nil
}

func (o UTCOffset) Duration() time.Duration {
	return time.Duration(o) * time.Second
}

// Location returns a fixed zone with this offset.
func (o UTCOffset) Location(name string) *time.Location {
	return time.FixedZone(name, int(o))
}

func utcOffsetValue(cl ContentLine, _ *ParseConfiguration) (UTCOffset, error) {
	return ParseUTCOffset(cl.Value)
}

// ParseInteger parses an INTEGER value (RFC 5545 section 3.3.8).
func ParseInteger(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrInvalidValue, s)
	}
	return n, nil
}

// integerValue returns a parser accepting integers in [lo, hi].
func integerValue(lo, hi int) ValueParser[int] {
	return func(cl ContentLine, _ *ParseConfiguration) (int, error) {
		n, err := ParseInteger(cl.Value)
		if err != nil {
			return 0, err
		}
		if n < lo || n > hi {
			return 0, fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidValue, n, lo, hi)
		}
		return n, nil
	}
}

// Trigger is a VALARM TRIGGER: a RelativeTrigger or an AbsoluteTrigger.
type Trigger interface {
	isTrigger()
}

// RelativeTrigger fires a duration before or after the start or end of the
// enclosing component.
type RelativeTrigger struct {
	Duration Duration
	Related  TriggerRelation
}

// AbsoluteTrigger fires at a fixed time.
type AbsoluteTrigger struct {
	Time time.Time
}

func (RelativeTrigger) isTrigger() {}
func (AbsoluteTrigger) isTrigger() {}

// ParseTrigger parses a TRIGGER content line.  The value is a duration
// relative to the RELATED edge, or a date-time when VALUE=DATE-TIME.
func ParseTrigger(cl ContentLine, ops ...any) (Trigger, error) {
	cfg, err := parseParseOps(ops)
	if err != nil {
		return nil, err
	}
	return triggerValue(cl, cfg)
}

func triggerValue(cl ContentLine, cfg *ParseConfiguration) (Trigger, error) {
	if strings.EqualFold(cl.Params.First(ParameterValue), "DATE-TIME") {
		t, err := dateTimeValue(cl, cfg)
		if err != nil {
			return nil, err
		}
		return AbsoluteTrigger{Time: t}, nil
	}
	d, err := ParseDuration(cl.Value)
	if err != nil {
		return nil, err
	}
	rel := TriggerRelatedStart
	if v := cl.Params.First(ParameterRelated); v != "" {
		if rel, err = triggerRelations.parse(v); err != nil {
			return nil, err
		}
	}
	return RelativeTrigger{Duration: d, Related: rel}, nil
}

// splitUnescaped splits s on sep where sep is not preceded by a backslash.
// The parts are returned still escaped.
func splitUnescaped(s string, sep byte) []string {
	var r []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			r = append(r, s[start:i])
			start = i + 1
		}
	}
	return append(r, s[start:])
}

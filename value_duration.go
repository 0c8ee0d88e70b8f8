package ics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration is a DURATION value (RFC 5545 section 3.3.6) kept in the units it
// was written in.  Negative applies to the whole span.
type Duration struct {
	Negative bool
	Weeks    int
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
}

var durationReg = regexp.MustCompile(`^([+-])?P(?:([0-9]+)W)?(?:([0-9]+)D)?(?:T(?:([0-9]+)H)?(?:([0-9]+)M)?(?:([0-9]+)S)?)?$`)

// ParseDuration parses "[+|-]P[nW][nD][T[nH][nM][nS]]".  At least one
// component is required and a "T" must be followed by a time component.
func ParseDuration(s string) (Duration, error) {
	m := durationReg.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	hasTime := m[4] != "" || m[5] != "" || m[6] != ""
	if strings.Contains(s, "T") && !hasTime {
		return Duration{}, fmt.Errorf("%w: %q has no time component after T", ErrInvalidDuration, s)
	}
	if !hasTime && m[2] == "" && m[3] == "" {
		return Duration{}, fmt.Errorf("%w: %q has no components", ErrInvalidDuration, s)
	}
	d := Duration{Negative: m[1] == "-"}
	var total int64
	for i, f := range []*int{&d.Weeks, &d.Days, &d.Hours, &d.Minutes, &d.Seconds} {
		if m[i+2] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+2], 10, 64)
		if err != nil || n > maxDurationSeconds/durationUnits[i] {
			return Duration{}, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
		}
		total += n * durationUnits[i]
		if total > maxDurationSeconds {
			return Duration{}, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
		}
		*f = int(n)
	}
	return d, nil
}

// maxDurationSeconds is the longest span a time.Duration can hold.
const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

// seconds per W, D, H, M and S
var durationUnits = [...]int64{7 * 86400, 86400, 3600, 60, 1}

// TotalSeconds returns the signed length of the span in seconds.
func (d Duration) TotalSeconds() int64 {
	n := int64(d.Weeks)*7*86400 +
		int64(d.Days)*86400 +
		int64(d.Hours)*3600 +
		int64(d.Minutes)*60 +
		int64(d.Seconds)
	if d.Negative {
		return -n
	}
	return n
}

// Std converts the span to a time.Duration.  Days are taken as 24 hours.
func (d Duration) Std() time.Duration {
	return time.Duration(d.TotalSeconds()) * time.Second
}

func (d Duration) String() string {
	b := &strings.Builder{}
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	if d.Weeks > 0 {
		fmt.Fprintf(b, "%dW", d.Weeks)
	}
	if d.Days > 0 {
		fmt.Fprintf(b, "%dD", d.Days)
	}
	if d.Hours > 0 || d.Minutes > 0 || d.Seconds > 0 {
		b.WriteByte('T')
		if d.Hours > 0 {
			fmt.Fprintf(b, "%dH", d.Hours)
		}
		if d.Minutes > 0 {
			fmt.Fprintf(b, "%dM", d.Minutes)
		}
		if d.Seconds > 0 {
			fmt.Fprintf(b, "%dS", d.Seconds)
		}
	}
	if b.Len() <= 2 && d.Weeks == 0 && d.Days == 0 {
		b.WriteString("T0S")
	}
	return b.String()
}

func durationValue(cl ContentLine, _ *ParseConfiguration) (Duration, error) {
	return ParseDuration(cl.Value)
}

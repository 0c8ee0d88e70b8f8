package ics

import (
	"fmt"
	"reflect"
	"time"
)

// DuplicateMode decides what happens when a property that may occur at most
// once is repeated inside one component.
type DuplicateMode int

const (
	// DuplicateModeFailStrict rejects the component with ErrDuplicateProperty.
	DuplicateModeFailStrict DuplicateMode = iota
	// DuplicateModeKeepFirst keeps the first occurrence.
	DuplicateModeKeepFirst
	// DuplicateModeKeepLast keeps the last occurrence.
	DuplicateModeKeepLast
)

// RecurEndConflict decides how a RRULE carrying both UNTIL and COUNT is
// treated.  RFC 5545 section 3.3.10 says they MUST NOT occur together.
type RecurEndConflict int

const (
	// RecurEndConflictReject fails with ErrInvalidRecur.
	RecurEndConflictReject RecurEndConflict = iota
	// RecurEndConflictLastWins keeps whichever of UNTIL and COUNT came last.
	RecurEndConflictLastWins
)

// WithLocation sets the zone that floating and date-only values are placed in
// and that UTC values are converted to.
type WithLocation struct {
	*time.Location
}

// ParseConfiguration controls how values and components are parsed.
type ParseConfiguration struct {
	Location         *time.Location
	Duplicates       DuplicateMode
	RecurEndConflict RecurEndConflict
}

// parseParseOps interprets the optional arguments given to the parse
// functions.  It accepts WithLocation, DuplicateMode, RecurEndConflict or a
// *ParseConfiguration, applied in order.  Unsupported types return an error.
func parseParseOps(ops []any) (*ParseConfiguration, error) {
	parseConfig := defaultParseOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLocation:
			if op.Location != nil {
				parseConfig.Location = op.Location
			}
		case DuplicateMode:
			parseConfig.Duplicates = op
		case RecurEndConflict:
			parseConfig.RecurEndConflict = op
		case *ParseConfiguration:
			if op == nil {
				continue
			}
			*parseConfig = *op
			if parseConfig.Location == nil {
				parseConfig.Location = time.Local
			}
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("unknown op %d of type %s", opi, reflect.TypeOf(op))
		}
	}
	return parseConfig, nil
}

func defaultParseOptions() *ParseConfiguration {
	return &ParseConfiguration{
		Location:         time.Local,
		Duplicates:       DuplicateModeFailStrict,
		RecurEndConflict: RecurEndConflictReject,
	}
}

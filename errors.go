package ics

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedContentLine is returned when a logical line does not match
	// NAME *(";" PARAM) ":" VALUE.
	ErrMalformedContentLine = errors.New("malformed content line")
	// ErrMissingField is returned when a required property is absent.
	ErrMissingField = errors.New("missing required property")
	// ErrDuplicateProperty is returned when a property that may occur at most
	// once occurs more than once and DuplicateModeFailStrict is in effect.
	ErrDuplicateProperty = errors.New("duplicate property")
	// ErrExclusiveProperties is returned when two mutually exclusive
	// properties are both present, for example DTEND and DURATION.
	ErrExclusiveProperties = errors.New("mutually exclusive properties")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidPeriod       = errors.New("invalid period")
	ErrInvalidGeo          = errors.New("invalid geo")
	ErrInvalidFreq         = errors.New("invalid frequency")
	ErrInvalidRecur        = errors.New("invalid recurrence rule")
	ErrInvalidEnum         = errors.New("invalid enumeration value")
	// ErrInvalidValue covers the remaining value grammars: integers, UTC
	// offsets, request status codes and triggers.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnsupportedComponentType is returned when a block tag has no schema.
	ErrUnsupportedComponentType = errors.New("unsupported component type")
	// ErrMalformedComponent is returned for BEGIN/END structure problems.
	ErrMalformedComponent = errors.New("malformed component")
)

// PropertyError identifies the property and raw value that failed to parse.
type PropertyError struct {
	Component ComponentType
	Property  string
	Value     string
	Err       error
}

func (e *PropertyError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s property %s %q: %v", e.Component, e.Property, e.Value, e.Err)
	}
	return fmt.Sprintf("property %s %q: %v", e.Property, e.Value, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// EnumError is returned when a token is not part of a closed vocabulary.
// Kind names the vocabulary, for example "status" or "frequency".
type EnumError struct {
	Kind  string
	Token string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s %q is not recognised", e.Kind, e.Token)
}

// Is makes every EnumError match ErrInvalidEnum.
func (e *EnumError) Is(target error) bool {
	return target == ErrInvalidEnum
}

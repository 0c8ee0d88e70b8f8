package ics

import (
	"fmt"
	"time"
)

// enumTable is the single list of accepted tokens for one enumeration.
type enumTable[T ~string] struct {
	kind   string
	values []T
}

func (t enumTable[T]) parse(s string) (T, error) {
	for _, v := range t.values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &EnumError{Kind: t.kind, Token: s}
}

type ObjectStatus string

// ObjectStatus enumerates allowed STATUS property values for calendar objects
// (RFC 5545 section 3.8.1.11).
const (
	// ObjectStatusTentative indicates the object is tentative.
	ObjectStatusTentative ObjectStatus = "TENTATIVE"
	// ObjectStatusConfirmed indicates the object is confirmed.
	ObjectStatusConfirmed ObjectStatus = "CONFIRMED"
	// ObjectStatusCancelled indicates the object is cancelled.
	ObjectStatusCancelled ObjectStatus = "CANCELLED"
	// ObjectStatusNeedsAction indicates further action is required.
	ObjectStatusNeedsAction ObjectStatus = "NEEDS-ACTION"
	// ObjectStatusCompleted indicates completion.
	ObjectStatusCompleted ObjectStatus = "COMPLETED"
	// ObjectStatusInProcess indicates processing is ongoing.
	ObjectStatusInProcess ObjectStatus = "IN-PROCESS"
	// ObjectStatusDraft indicates a draft state.
	ObjectStatusDraft ObjectStatus = "DRAFT"
	// ObjectStatusFinal indicates a final state.
	ObjectStatusFinal ObjectStatus = "FINAL"
)

var objectStatuses = enumTable[ObjectStatus]{"status", []ObjectStatus{
	ObjectStatusTentative, ObjectStatusConfirmed, ObjectStatusCancelled, ObjectStatusNeedsAction,
	ObjectStatusCompleted, ObjectStatusInProcess, ObjectStatusDraft, ObjectStatusFinal,
}}

func ParseObjectStatus(s string) (ObjectStatus, error) { return objectStatuses.parse(s) }

type Classification string

// Classification enumerates CLASS property values (RFC 5545 section 3.8.1.3).
const (
	ClassificationPublic       Classification = "PUBLIC"
	ClassificationPrivate      Classification = "PRIVATE"
	ClassificationConfidential Classification = "CONFIDENTIAL"
)

var classifications = enumTable[Classification]{"class", []Classification{
	ClassificationPublic, ClassificationPrivate, ClassificationConfidential,
}}

func ParseClassification(s string) (Classification, error) { return classifications.parse(s) }

type TimeTransparency string

// TimeTransparency enumerates TRANSP property values (RFC 5545 section 3.8.2.7).
const (
	TransparencyOpaque      TimeTransparency = "OPAQUE"
	TransparencyTransparent TimeTransparency = "TRANSPARENT"
)

var transparencies = enumTable[TimeTransparency]{"time transparency", []TimeTransparency{
	TransparencyOpaque, TransparencyTransparent,
}}

func ParseTimeTransparency(s string) (TimeTransparency, error) { return transparencies.parse(s) }

type Action string

// Action enumerates VALARM ACTION property values (RFC 5545 section 3.8.6.1).
const (
	ActionAudio   Action = "AUDIO"
	ActionDisplay Action = "DISPLAY"
	ActionEmail   Action = "EMAIL"
	// ActionProcedure comes from RFC 2445 and is still seen in older files.
	ActionProcedure Action = "PROCEDURE"
)

var actions = enumTable[Action]{"action", []Action{
	ActionAudio, ActionDisplay, ActionEmail, ActionProcedure,
}}

func ParseAction(s string) (Action, error) { return actions.parse(s) }

type FreeBusyTimeType string

// FreeBusyTimeType enumerates the FBTYPE parameter values used with FREEBUSY
// properties (RFC 5545 section 3.2.9).
const (
	FreeBusyTimeTypeFree            FreeBusyTimeType = "FREE"
	FreeBusyTimeTypeBusy            FreeBusyTimeType = "BUSY"
	FreeBusyTimeTypeBusyUnavailable FreeBusyTimeType = "BUSY-UNAVAILABLE"
	FreeBusyTimeTypeBusyTentative   FreeBusyTimeType = "BUSY-TENTATIVE"
)

var freeBusyTimeTypes = enumTable[FreeBusyTimeType]{"free/busy type", []FreeBusyTimeType{
	FreeBusyTimeTypeFree, FreeBusyTimeTypeBusy, FreeBusyTimeTypeBusyUnavailable, FreeBusyTimeTypeBusyTentative,
}}

func ParseFreeBusyTimeType(s string) (FreeBusyTimeType, error) { return freeBusyTimeTypes.parse(s) }

type TriggerRelation string

// TriggerRelation enumerates the RELATED parameter values (RFC 5545 section 3.2.14).
const (
	TriggerRelatedStart TriggerRelation = "START"
	TriggerRelatedEnd   TriggerRelation = "END"
)

var triggerRelations = enumTable[TriggerRelation]{"trigger relation", []TriggerRelation{
	TriggerRelatedStart, TriggerRelatedEnd,
}}

type Freq string

// Freq enumerates the FREQ rule part of a recurrence rule.
const (
	FreqSecondly Freq = "SECONDLY"
	FreqMinutely Freq = "MINUTELY"
	FreqHourly   Freq = "HOURLY"
	FreqDaily    Freq = "DAILY"
	FreqWeekly   Freq = "WEEKLY"
	FreqMonthly  Freq = "MONTHLY"
	FreqYearly   Freq = "YEARLY"
)

var freqs = enumTable[Freq]{"frequency", []Freq{
	FreqSecondly, FreqMinutely, FreqHourly, FreqDaily, FreqWeekly, FreqMonthly, FreqYearly,
}}

// ParseFreq matches s exactly against the seven frequencies.  The error
// matches both ErrInvalidFreq and ErrInvalidEnum.
func ParseFreq(s string) (Freq, error) {
	f, err := freqs.parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFreq, err)
	}
	return f, nil
}

type Weekday string

const (
	Sunday    Weekday = "SU"
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
)

var weekdays = enumTable[Weekday]{"weekday", []Weekday{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}}

func ParseWeekday(s string) (Weekday, error) { return weekdays.parse(s) }

// Time returns the matching time.Weekday.
func (w Weekday) Time() time.Weekday {
	for i, v := range weekdays.values {
		if v == w {
			return time.Weekday(i)
		}
	}
	return time.Sunday
}

func enumValue[T ~string](parse func(string) (T, error)) ValueParser[T] {
	return func(cl ContentLine, _ *ParseConfiguration) (T, error) {
		return parse(cl.Value)
	}
}

package ics

import (
	"math"
	"time"
)

// VJournal is a journal entry (RFC 5545 section 3.6.3).  Unlike the other
// components DESCRIPTION may repeat.
type VJournal struct {
	DtStamp       time.Time
	Uid           string
	Class         *Classification
	Created       *time.Time
	DtStart       *time.Time
	LastModified  *time.Time
	Organizer     *CalAddress
	RecurrenceId  *time.Time
	Sequence      *int
	Status        *ObjectStatus
	Summary       *Text
	Url           *string
	RRule         *Recur
	Attachments   []Attachment
	Attendees     []CalAddress
	Categories    []string
	Comments      []Text
	Contacts      []Text
	Descriptions  []Text
	ExDates       []time.Time
	RelatedTo     []string
	RDates        []RDate
	RequestStatus []RequestStatus
	Extensions
}

func (VJournal) ComponentType() ComponentType {
	return ComponentVJournal
}

var vjournalSchema = Schema[VJournal]{
	Type: ComponentVJournal,
	Fields: []Field[VJournal]{
		Required(PropertyDtstamp, dateTimeValue, func(j *VJournal) *time.Time { return &j.DtStamp }),
		Required(PropertyUid, stringValue, func(j *VJournal) *string { return &j.Uid }),
		Optional(PropertyClass, enumValue(ParseClassification), func(j *VJournal) **Classification { return &j.Class }),
		Optional(PropertyCreated, dateTimeValue, func(j *VJournal) **time.Time { return &j.Created }),
		Optional(PropertyDtstart, dateTimeValue, func(j *VJournal) **time.Time { return &j.DtStart }),
		Optional(PropertyLastModified, dateTimeValue, func(j *VJournal) **time.Time { return &j.LastModified }),
		Optional(PropertyOrganizer, calAddressValue, func(j *VJournal) **CalAddress { return &j.Organizer }),
		Optional(PropertyRecurrenceId, dateTimeValue, func(j *VJournal) **time.Time { return &j.RecurrenceId }),
		Optional(PropertySequence, integerValue(0, math.MaxInt32), func(j *VJournal) **int { return &j.Sequence }),
		Optional(PropertyStatus, enumValue(ParseObjectStatus), func(j *VJournal) **ObjectStatus { return &j.Status }),
		Optional(PropertySummary, textValue, func(j *VJournal) **Text { return &j.Summary }),
		Optional(PropertyUrl, rawValue, func(j *VJournal) **string { return &j.Url }),
		Optional(PropertyRrule, recurValue, func(j *VJournal) **Recur { return &j.RRule }),
		Repeated(PropertyAttach, attachmentValue, func(j *VJournal) *[]Attachment { return &j.Attachments }),
		Repeated(PropertyAttendee, calAddressValue, func(j *VJournal) *[]CalAddress { return &j.Attendees }),
		RepeatedFlat(PropertyCategories, textListValue, func(j *VJournal) *[]string { return &j.Categories }),
		Repeated(PropertyComment, textValue, func(j *VJournal) *[]Text { return &j.Comments }),
		Repeated(PropertyContact, textValue, func(j *VJournal) *[]Text { return &j.Contacts }),
		Repeated(PropertyDescription, textValue, func(j *VJournal) *[]Text { return &j.Descriptions }),
		RepeatedFlat(PropertyExdate, dateTimeListValue, func(j *VJournal) *[]time.Time { return &j.ExDates }),
		Repeated(PropertyRelatedTo, stringValue, func(j *VJournal) *[]string { return &j.RelatedTo }),
		RepeatedFlat(PropertyRdate, rdateValue, func(j *VJournal) *[]RDate { return &j.RDates }),
		Repeated(PropertyRequestStatus, requestStatusValue, func(j *VJournal) *[]RequestStatus { return &j.RequestStatus }),
	},
	Extensions: (*VJournal).Extended,
}

// ParseVJournal parses text holding a single BEGIN:VJOURNAL ... END:VJOURNAL block.
func ParseVJournal(text string, ops ...any) (VJournal, error) {
	return vjournalSchema.Parse(text, ops...)
}

func VJournalFromBag(bag PropertyBag, ops ...any) (VJournal, error) {
	return vjournalSchema.AssembleBag(bag, ops...)
}

package ics

import (
	"time"
)

// VFreeBusy is a free/busy request, reply or published block (RFC 5545
// section 3.6.4).
type VFreeBusy struct {
	DtStamp       time.Time
	Uid           string
	Contact       *Text
	DtStart       *time.Time
	DtEnd         *time.Time
	Organizer     *CalAddress
	Url           *string
	Attendees     []CalAddress
	Comments      []Text
	FreeBusy      []FreeBusyPeriod
	RequestStatus []RequestStatus
	Extensions
}

func (VFreeBusy) ComponentType() ComponentType {
	return ComponentVFreeBusy
}

// Busy returns the FREEBUSY periods whose type is not FREE.
func (fb VFreeBusy) Busy() []FreeBusyPeriod {
	var r []FreeBusyPeriod
	for _, p := range fb.FreeBusy {
		if p.Type != FreeBusyTimeTypeFree {
			r = append(r, p)
		}
	}
	return r
}

var vfreebusySchema = Schema[VFreeBusy]{
	Type: ComponentVFreeBusy,
	Fields: []Field[VFreeBusy]{
		Required(PropertyDtstamp, dateTimeValue, func(fb *VFreeBusy) *time.Time { return &fb.DtStamp }),
		Required(PropertyUid, stringValue, func(fb *VFreeBusy) *string { return &fb.Uid }),
		Optional(PropertyContact, textValue, func(fb *VFreeBusy) **Text { return &fb.Contact }),
		Optional(PropertyDtstart, dateTimeValue, func(fb *VFreeBusy) **time.Time { return &fb.DtStart }),
		Optional(PropertyDtend, dateTimeValue, func(fb *VFreeBusy) **time.Time { return &fb.DtEnd }),
		Optional(PropertyOrganizer, calAddressValue, func(fb *VFreeBusy) **CalAddress { return &fb.Organizer }),
		Optional(PropertyUrl, rawValue, func(fb *VFreeBusy) **string { return &fb.Url }),
		Repeated(PropertyAttendee, calAddressValue, func(fb *VFreeBusy) *[]CalAddress { return &fb.Attendees }),
		Repeated(PropertyComment, textValue, func(fb *VFreeBusy) *[]Text { return &fb.Comments }),
		RepeatedFlat(PropertyFreebusy, freeBusyValue, func(fb *VFreeBusy) *[]FreeBusyPeriod { return &fb.FreeBusy }),
		Repeated(PropertyRequestStatus, requestStatusValue, func(fb *VFreeBusy) *[]RequestStatus { return &fb.RequestStatus }),
	},
	Extensions: (*VFreeBusy).Extended,
}

// ParseVFreeBusy parses text holding a single BEGIN:VFREEBUSY ... END:VFREEBUSY block.
func ParseVFreeBusy(text string, ops ...any) (VFreeBusy, error) {
	return vfreebusySchema.Parse(text, ops...)
}

func VFreeBusyFromBag(bag PropertyBag, ops ...any) (VFreeBusy, error) {
	return vfreebusySchema.AssembleBag(bag, ops...)
}

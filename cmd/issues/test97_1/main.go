// Issue 97: a DESCRIPTION carrying an ALTREP data URI must keep the quoted
// parameter intact after parsing.
package main

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	ics "github.com/arran4/golang-ical-typed"
)

const calendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Mozilla.org/NONSGML Mozilla Calendar V1.1//EN
BEGIN:VTIMEZONE
TZID:Europe/Berlin
X-TZINFO:Europe/Berlin[2024a]
BEGIN:STANDARD
TZOFFSETFROM:+005328
TZOFFSETTO:+0100
TZNAME:Europe/Berlin(STD)
DTSTART:18930401T000000
RDATE:18930401T000000
END:STANDARD
END:VTIMEZONE
BEGIN:VEVENT
CREATED:20240929T120640Z
LAST-MODIFIED:20240929T120731Z
DTSTAMP:20240929T120731Z
UID:d23cef0d-9e58-43c4-9391-5ad8483ca346
SUMMARY:Test Event
DTSTART;TZID=Europe/Berlin:20240929T144500
DTEND;TZID=Europe/Berlin:20240929T154500
TRANSP:OPAQUE
LOCATION:Github
DESCRIPTION;ALTREP="data:text/html,I%20want%20a%20custom%20linkout%20for%20
 Thunderbird.%3Cbr%3EThis%20is%20the%20Github%20%3Ca%20href%3D%22https%3A%2F
 %2Fgithub.com%2Farran4%2Fgolang-ical%2Fissues%2F97%22%3EIssue%3C%2Fa%3E.":I
  want a custom linkout for Thunderbird.\nThis is the Github Issue.
END:VEVENT
END:VCALENDAR
`

func main() {
	cal, err := ics.ParseCalendar(strings.NewReader(calendar))
	if err != nil {
		log.Fatal(err)
	}
	d := cal.Events[0].Description
	altrep, err := url.Parse(d.Params.First(ics.ParameterAltrep))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("description: %q\n", d.Value)
	fmt.Printf("altrep scheme %s, opaque %s\n", altrep.Scheme, altrep.Opaque)
	fmt.Printf("timezone extension: %s\n", cal.Timezones[0].XProp("X-TZINFO"))
}

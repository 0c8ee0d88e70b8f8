package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical-typed"
)

type calendarDump struct {
	Name      string              `yaml:"name,omitempty"`
	ProdId    string              `yaml:"prodid"`
	Version   string              `yaml:"version"`
	Method    string              `yaml:"method,omitempty"`
	Timezones []string            `yaml:"timezones,omitempty"`
	Events    []eventDump         `yaml:"events,omitempty"`
	Todos     []todoDump          `yaml:"todos,omitempty"`
	Journals  []journalDump       `yaml:"journals,omitempty"`
	XProps    map[string][]string `yaml:"x_props,omitempty"`
	Unknown   []string            `yaml:"unknown_components,omitempty"`
}

type eventDump struct {
	Uid         string   `yaml:"uid"`
	Summary     string   `yaml:"summary,omitempty"`
	Start       string   `yaml:"start,omitempty"`
	End         string   `yaml:"end,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	Categories  []string `yaml:"categories,omitempty"`
	Attendees   []string `yaml:"attendees,omitempty"`
	Repeats     string   `yaml:"repeats,omitempty"`
	Occurrences []string `yaml:"occurrences,omitempty"`
	Alarms      int      `yaml:"alarms,omitempty"`
}

type todoDump struct {
	Uid     string `yaml:"uid"`
	Summary string `yaml:"summary,omitempty"`
	Due     string `yaml:"due,omitempty"`
	Status  string `yaml:"status,omitempty"`
	Percent int    `yaml:"percent,omitempty"`
}

type journalDump struct {
	Uid     string `yaml:"uid"`
	Summary string `yaml:"summary,omitempty"`
	Entries int    `yaml:"entries,omitempty"`
}

// parseLenient assembles every top level component on its own and drops the
// ones that fail instead of failing the whole calendar.
func parseLenient(r io.Reader, ops []any) (*ics.Calendar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b, err := ics.ParseBlock(string(data))
	if err != nil {
		return nil, err
	}
	kept := b.Children[:0]
	for _, child := range b.Children {
		if _, err := ics.ParseComponent(child, ops...); err != nil {
			if !errors.Is(err, ics.ErrUnsupportedComponentType) {
				log.Printf("skipping %s: %v", child.Type, err)
				continue
			}
		}
		kept = append(kept, child)
	}
	b.Children = kept
	c, err := ics.ParseComponent(b, ops...)
	if err != nil {
		return nil, err
	}
	cal, ok := c.(*ics.Calendar)
	if !ok {
		return nil, fmt.Errorf("expected a VCALENDAR, got %s", b.Type)
	}
	return cal, nil
}

func buildDump(cal *ics.Calendar, cfg *DumpConfig) calendarDump {
	d := calendarDump{
		Name:    cal.Name(),
		ProdId:  cal.ProdId,
		Version: cal.Version,
	}
	if cal.Method != nil {
		d.Method = *cal.Method
	}
	for _, tz := range cal.Timezones {
		d.Timezones = append(d.Timezones, tz.TzId)
	}
	for _, e := range cal.Events {
		d.Events = append(d.Events, dumpEvent(e, cfg.Expand))
	}
	for _, t := range cal.Todos {
		td := todoDump{Uid: t.Uid, Summary: text(t.Summary)}
		if due, ok := t.DueAt(); ok {
			td.Due = due.Format(time.RFC3339)
		}
		if t.Status != nil {
			td.Status = string(*t.Status)
		}
		if t.PercentComplete != nil {
			td.Percent = *t.PercentComplete
		}
		d.Todos = append(d.Todos, td)
	}
	for _, j := range cal.Journals {
		d.Journals = append(d.Journals, journalDump{Uid: j.Uid, Summary: text(j.Summary), Entries: len(j.Descriptions)})
	}
	for name, lines := range cal.XProps {
		if d.XProps == nil {
			d.XProps = map[string][]string{}
		}
		for _, l := range lines {
			d.XProps[name] = append(d.XProps[name], l.Value)
		}
	}
	for _, b := range cal.Components {
		d.Unknown = append(d.Unknown, string(b.Type))
	}
	return d
}

func dumpEvent(e ics.VEvent, expand int) eventDump {
	ed := eventDump{
		Uid:        e.Uid,
		Summary:    text(e.Summary),
		Location:   text(e.Location),
		Categories: e.Categories,
		Alarms:     len(e.Alarms),
	}
	if e.DtStart != nil {
		ed.Start = e.DtStart.Format(time.RFC3339)
	}
	if end, ok := e.End(); ok {
		ed.End = end.Format(time.RFC3339)
	}
	if e.Status != nil {
		ed.Status = string(*e.Status)
	}
	for _, a := range e.Attendees {
		ed.Attendees = append(ed.Attendees, a.Email())
	}
	sort.Strings(ed.Attendees)
	if e.RRule != nil {
		ed.Repeats = describeRecur(*e.RRule)
	}
	if expand > 0 && (e.RRule != nil || len(e.RDates) > 0) {
		set, err := e.RecurrenceSet()
		if err != nil {
			log.Printf("expanding %s: %v", e.Uid, err)
			return ed
		}
		next := set.Iterator()
		for i := 0; i < expand; i++ {
			t, ok := next()
			if !ok {
				break
			}
			ed.Occurrences = append(ed.Occurrences, t.Format(time.RFC3339))
		}
	}
	return ed
}

func describeRecur(r ics.Recur) string {
	s := fmt.Sprintf("%s every %d", r.Freq, r.EffectiveInterval())
	if n, ok := r.Count(); ok {
		s += fmt.Sprintf(", %d times", n)
	}
	if u, ok := r.Until(); ok {
		s += ", until " + u.Format(time.RFC3339)
	}
	return s
}

func text(t *ics.Text) string {
	if t == nil {
		return ""
	}
	return t.Value
}

// Package events answers questions about scheduled events: which bucket an
// event belongs to, what is due on a day, what is overdue. Every function is
// pure and recomputed on demand.
package events

import (
	"tableflip.dev/dayplan/pkg/routine"
)

// Categorized splits events by how much of their schedule is known.
type Categorized struct {
	// Dated have both a date and a time, earliest date first.
	Dated []routine.ScheduledEvent `json:"datedEvents"`
	// TimeTBD have a date but no time, earliest date first.
	TimeTBD []routine.ScheduledEvent `json:"timeTBDEvents"`
	// DateTBD have a time but no date, by title.
	DateTBD []routine.ScheduledEvent `json:"dateTBDEvents"`
	// CompletelyTBD have neither, by title.
	CompletelyTBD []routine.ScheduledEvent `json:"completelyTBDEvents"`
	// TBD is every event without a date, by title. It overlaps DateTBD and
	// CompletelyTBD.
	TBD []routine.ScheduledEvent `json:"tbdEvents"`
}

// Categorize buckets events. Each event lands in exactly one of Dated,
// TimeTBD, DateTBD and CompletelyTBD.
func Categorize(events []routine.ScheduledEvent) Categorized {
	c := Categorized{
		Dated:         []routine.ScheduledEvent{},
		TimeTBD:       []routine.ScheduledEvent{},
		DateTBD:       []routine.ScheduledEvent{},
		CompletelyTBD: []routine.ScheduledEvent{},
		TBD:           []routine.ScheduledEvent{},
	}
	for _, e := range events {
		switch e.When().(type) {
		case routine.Concrete:
			c.Dated = append(c.Dated, e)
		case routine.TimeTBD:
			c.TimeTBD = append(c.TimeTBD, e)
		case routine.DateTBD:
			c.DateTBD = append(c.DateTBD, e)
			c.TBD = append(c.TBD, e)
		default:
			c.CompletelyTBD = append(c.CompletelyTBD, e)
			c.TBD = append(c.TBD, e)
		}
	}
	SortByDate(c.Dated)
	SortByDate(c.TimeTBD)
	SortByTitle(c.DateTBD)
	SortByTitle(c.CompletelyTBD)
	SortByTitle(c.TBD)
	return c
}

// ForDate returns the events dated exactly target, in input order. Undated
// events never match a date, so excludeTBD only matters for callers that want
// to be explicit about it.
func ForDate(events []routine.ScheduledEvent, target string, excludeTBD bool) []routine.ScheduledEvent {
	out := []routine.ScheduledEvent{}
	for _, e := range events {
		if excludeTBD && e.IsDateTBD() {
			continue
		}
		if e.Date() == target {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming returns dated events on or after today, earliest first.
func Upcoming(events []routine.ScheduledEvent, today string) []routine.ScheduledEvent {
	out := []routine.ScheduledEvent{}
	for _, e := range events {
		if e.IsDateTBD() {
			continue
		}
		if e.Date() >= today {
			out = append(out, e)
		}
	}
	SortByDate(out)
	return out
}

// IsToday reports whether the event is dated today.
func IsToday(e routine.ScheduledEvent, today string) bool {
	return !e.IsDateTBD() && e.Date() == today
}

// IsOverdue reports whether the event has a date strictly before today.
func IsOverdue(e routine.ScheduledEvent, today string) bool {
	return !e.IsDateTBD() && e.Date() < today
}

// Counts summarizes a set of events relative to today.
type Counts struct {
	Total         int `json:"total"`
	Dated         int `json:"dated"`
	TBD           int `json:"tbd"`
	TimeTBD       int `json:"timeTBD"`
	DateTBD       int `json:"dateTBD"`
	CompletelyTBD int `json:"completelyTBD"`
	Today         int `json:"today"`
	Upcoming      int `json:"upcoming"`
	Overdue       int `json:"overdue"`
}

// Count computes Counts. Upcoming excludes today; Overdue only considers
// events with both a date and a time.
func Count(events []routine.ScheduledEvent, today string) Counts {
	c := Categorize(events)
	counts := Counts{
		Total:         len(events),
		Dated:         len(c.Dated),
		TBD:           len(c.TBD),
		TimeTBD:       len(c.TimeTBD),
		DateTBD:       len(c.DateTBD),
		CompletelyTBD: len(c.CompletelyTBD),
		Today:         len(ForDate(events, today, true)),
	}
	for _, e := range Upcoming(events, today) {
		if e.Date() != today {
			counts.Upcoming++
		}
	}
	for _, e := range c.Dated {
		if IsOverdue(e, today) {
			counts.Overdue++
		}
	}
	return counts
}

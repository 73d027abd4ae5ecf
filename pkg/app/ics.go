package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

const (
	icsDateLayout     = "20060102"
	icsDateTimeLayout = "20060102T150405"
	// eventLength is how long a timed event is assumed to last.
	eventLength = time.Hour
)

// ExportICS renders every dated event as an iCalendar feed. Events without a
// time become all-day events; undated events are left out.
func (s *Service) ExportICS() string {
	return BuildCalendarICS(s.events.All(), s.clock.Now())
}

// BuildCalendarICS renders events as a VCALENDAR document.
func BuildCalendarICS(evs []routine.ScheduledEvent, now time.Time) string {
	dated := append([]routine.ScheduledEvent(nil), evs...)
	events.SortByDate(dated)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//dayplan//Scheduled Events//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	stamp := now.UTC().Format("20060102T150405Z")
	for _, e := range dated {
		if e.IsDateTBD() {
			continue
		}
		day, err := timeutil.ParseDateKey(e.Date())
		if err != nil {
			continue
		}
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+escapeICSText(fmt.Sprintf("event-%s@dayplan", e.ID)),
			"DTSTAMP:"+stamp,
			"SUMMARY:"+escapeICSText(e.Title),
		)
		if e.IsTimeTBD() {
			lines = append(lines,
				"DTSTART;VALUE=DATE:"+day.Format(icsDateLayout),
				"DTEND;VALUE=DATE:"+day.AddDate(0, 0, 1).Format(icsDateLayout),
			)
		} else {
			m := timeutil.ConvertTimeToMinutes(e.Time())
			start := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, time.Local)
			lines = append(lines,
				"DTSTART:"+start.Format(icsDateTimeLayout),
				"DTEND:"+start.Add(eventLength).Format(icsDateTimeLayout),
			)
		}
		lines = append(lines, "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}

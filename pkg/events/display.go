package events

import (
	"fmt"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// DateText is the display date, "TBD Date" when undetermined.
func DateText(e routine.ScheduledEvent) string {
	if e.IsDateTBD() {
		return "TBD Date"
	}
	return timeutil.FormatShortDate(e.Date())
}

// TimeText is the display time, "TBD Time" when undetermined.
func TimeText(e routine.ScheduledEvent) string {
	if e.IsTimeTBD() {
		return "TBD Time"
	}
	return e.Time()
}

// DisplayText describes when the event happens in one line.
func DisplayText(e routine.ScheduledEvent) string {
	switch s := e.When().(type) {
	case routine.Concrete:
		return fmt.Sprintf("%s at %s", timeutil.FormatShortDate(s.Date), s.Time)
	case routine.TimeTBD:
		return fmt.Sprintf("%s - Time TBD", timeutil.FormatShortDate(s.Date))
	case routine.DateTBD:
		return fmt.Sprintf("%s - Date TBD", s.Time)
	default:
		return "Completely TBD"
	}
}

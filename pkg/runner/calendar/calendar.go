// Package calendar provides the runner that prints month grids of events.
package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Calendar prints Months month grids starting at the month of On, then the
// dated events that fall inside them.
type Calendar struct {
	Service *app.Service
	// On is a date key; blank means today.
	On     string
	Months int
	ShowID bool
	Output printers.Format
}

// Month is the structured form of one printed month.
type Month struct {
	Month  string                   `json:"month"`
	Events []routine.ScheduledEvent `json:"events"`
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	today := n.Service.Today()
	on := n.On
	if on == "" {
		on = today
	}
	start, err := timeutil.ParseDateKey(on)
	if err != nil {
		return err
	}
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local)
	count := n.Months
	if count < 1 {
		count = 1
	}

	months := make([]Month, 0, count)
	then := start
	for i := 0; i < count; i++ {
		prefix := then.Format("2006-01")
		m := Month{Month: prefix, Events: []routine.ScheduledEvent{}}
		for _, e := range n.Service.Events() {
			if !e.IsDateTBD() && strings.HasPrefix(e.Date(), prefix+"-") {
				m.Events = append(m.Events, e)
			}
		}
		events.SortByDate(m.Events)
		months = append(months, m)
		then = printers.NextMonth(then)
	}

	return printers.Print(color.Output, n.Output, months, func() {
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		then := start
		for _, m := range months {
			pp.Month(then, today, m.Events...)
			then = printers.NextMonth(then)
		}
		var dated []routine.ScheduledEvent
		for _, m := range months {
			dated = append(dated, m.Events...)
		}
		if len(dated) > 0 {
			pp.Title("Scheduled")
			pp.Events(today, dated...)
		}
	})
}

// Package events provides the runner that lists scheduled events.
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	evs "tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// GroupBy selects how listed events are arranged.
type GroupBy string

const (
	GroupByDate     GroupBy = "date"
	GroupByCategory GroupBy = "category"
	// GroupByCreated lists events newest first, ungrouped.
	GroupByCreated GroupBy = "created"
)

// List prints scheduled events.
type List struct {
	Service *app.Service
	ShowID  bool
	Output  printers.Format

	// Window limits dated events to the next Window (e.g. "2w", "10d");
	// blank lists every event.
	Window string
	// Search keeps events whose title or time contains it.
	Search string
	// TBD keeps only events missing a date or time.
	TBD     bool
	GroupBy GroupBy
	// Counts prints event statistics instead of the events.
	Counts bool
}

// Listing is the structured form of a List result.
type Listing struct {
	Today  string                   `json:"today"`
	Window string                   `json:"window,omitempty"`
	Events []routine.ScheduledEvent `json:"events"`
	Groups []evs.Group              `json:"groups,omitempty"`
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	today := n.Service.Today()
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Counts {
		c := n.Service.EventCounts()
		return printers.Print(color.Output, n.Output, c, func() {
			pp.Counts(c)
		})
	}

	all := n.Service.Events()
	filter := evs.Filter{Search: n.Search}
	label := ""
	if n.Window != "" {
		days, l, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		w := evs.Window(today, days)
		filter.FromDate, filter.ToDate, label = w.FromDate, w.ToDate, l
	}
	if n.TBD {
		all = evs.Categorize(all).TBD
	}
	list := filter.Apply(all)

	out := Listing{Today: today, Window: label, Events: list}
	switch n.GroupBy {
	case "", GroupByDate:
		out.Groups = evs.GroupByDate(list)
		return printers.Print(color.Output, n.Output, out, func() {
			if label != "" {
				_, _ = color.New(color.Faint).Fprintf(color.Output, "Events in the next %s\n\n", label)
			}
			pp.Groups(today, out.Groups)
		})
	case GroupByCategory:
		c := evs.Categorize(list)
		return printers.Print(color.Output, n.Output, c, func() {
			pp.Categorized(today, c)
		})
	case GroupByCreated:
		evs.SortByCreationOrder(list)
		out.Events = list
		return printers.Print(color.Output, n.Output, out, func() {
			pp.Events(today, list...)
		})
	default:
		return fmt.Errorf("unknown grouping %q, expected date, category or created", n.GroupBy)
	}
}

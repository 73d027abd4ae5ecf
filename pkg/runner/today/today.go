// Package today provides the runner for the day at a glance.
package today

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Today prints today's tasks by part of the day with a progress header.
type Today struct {
	Service *app.Service
	ShowID  bool
	Output  printers.Format
	// Period keeps only that part of the day's tasks; blank shows them all.
	Period string
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get today, no service")
	}
	r := n.Service.Report()
	if n.Period != "" {
		p, err := timeutil.ParsePeriod(n.Period)
		if err != nil {
			return err
		}
		r.Sections = onlyPeriod(r.Sections, p)
	}
	return printers.Print(color.Output, n.Output, r, func() {
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		pp.Day(n.Service.Now(), r)
	})
}

func onlyPeriod(sections []app.ReportSection, p timeutil.Period) []app.ReportSection {
	for _, s := range sections {
		if s.Period == p {
			return []app.ReportSection{s}
		}
	}
	return nil
}

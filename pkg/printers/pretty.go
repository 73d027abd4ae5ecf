package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1717171717171  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by a faint "- n noun(s)".
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	default:
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	} else {
		_, _ = y.Fprint(pp.out(), " ")
	}
}

// Day prints the day at a glance: a header, tasks by part of the day and the
// events that fall on today.
func (pp *PrettyPrint) Day(now time.Time, r app.ReportResult) {
	h := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = h.Fprintln(pp.out(), timeutil.FormatLongDate(now))
	_, _ = f.Fprintf(pp.out(), "%s  ·  %d of %d done", timeutil.FormatWallClock(now), r.Completed, r.Total)
	if r.Preset != "" {
		_, _ = f.Fprintf(pp.out(), "  ·  %s", r.Preset)
	}
	if r.Unsaved {
		_, _ = color.New(color.FgYellow).Fprint(pp.out(), "  ·  unsaved changes")
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")

	if len(r.Sections) == 0 {
		pp.Title("Tasks")
		pp.none()
	}
	for _, s := range r.Sections {
		pp.TitleWithCount(fmt.Sprintf("%s %s", glyph.PeriodSymbol(s.Period), s.Name), len(s.Tasks), "task")
		pp.Tasks(s.Tasks...)
	}

	if len(r.Events) > 0 {
		pp.TitleWithCount("Scheduled today", len(r.Events), "event")
		pp.Events(r.Date, r.Events...)
	}
	if r.Counts.TBD > 0 {
		_, _ = f.Fprintf(pp.out(), "%d event(s) still to be scheduled\n\n", r.Counts.TBD)
	}
}

// Tasks prints one line per task.
func (pp *PrettyPrint) Tasks(tasks ...routine.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	clock := color.New(color.FgCyan)

	for _, task := range tasks {
		pp.id(task.ID)
		_, _ = t.Fprintf(pp.out(), "%s %s ", glyph.TaskSymbol(task.Completed, task.IsScheduledEvent), glyph.IconOr(task.Icon, glyph.DefaultTaskIcon))
		if task.Completed {
			_, _ = done.Fprint(pp.out(), task.Title)
		} else {
			_, _ = t.Fprint(pp.out(), task.Title)
		}
		if task.Time != "" {
			_, _ = clock.Fprintf(pp.out(), "  %s", task.Time)
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Events prints one line per event. today marks overdue events.
func (pp *PrettyPrint) Events(today string, evs ...routine.ScheduledEvent) {
	if len(evs) == 0 {
		pp.none()
		return
	}

	t := color.New()
	when := color.New(color.FgCyan)
	tbd := color.New(color.FgMagenta, color.Italic)
	late := color.New(color.FgRed, color.Bold)

	for _, e := range evs {
		pp.id(e.ID)
		symbol := glyph.Event
		if e.IsDateTBD() || e.IsTimeTBD() {
			symbol = glyph.TBD
		}
		_, _ = t.Fprintf(pp.out(), "%s %s %s  ", symbol, glyph.IconOr(e.Icon, glyph.DefaultEventIcon), e.Title)
		if _, ok := e.When().(routine.Concrete); ok {
			_, _ = when.Fprint(pp.out(), events.DisplayText(e))
		} else {
			_, _ = tbd.Fprint(pp.out(), events.DisplayText(e))
		}
		if events.IsOverdue(e, today) {
			_, _ = late.Fprintf(pp.out(), " %s", glyph.Overdue)
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Groups prints events grouped by date.
func (pp *PrettyPrint) Groups(today string, groups []events.Group) {
	if len(groups) == 0 {
		pp.Title("Events")
		pp.none()
		return
	}
	for _, g := range groups {
		title := "To be scheduled"
		if g.Key != events.TBDGroup {
			title = timeutil.FormatShortDate(g.Key)
			if g.Key == today {
				title += " (today)"
			}
		}
		pp.TitleWithCount(title, len(g.Events), "event")
		pp.Events(today, g.Events...)
	}
}

// Categorized prints the four event categories, skipping empty ones.
func (pp *PrettyPrint) Categorized(today string, c events.Categorized) {
	sections := []struct {
		title string
		evs   []routine.ScheduledEvent
	}{
		{"Scheduled", c.Dated},
		{"Time TBD", c.TimeTBD},
		{"Date TBD", c.DateTBD},
		{"Completely TBD", c.CompletelyTBD},
	}
	printed := false
	for _, s := range sections {
		if len(s.evs) == 0 {
			continue
		}
		printed = true
		pp.TitleWithCount(s.title, len(s.evs), "event")
		pp.Events(today, s.evs...)
	}
	if !printed {
		pp.Title("Events")
		pp.none()
	}
}

// Counts prints event statistics as a table.
func (pp *PrettyPrint) Counts(c events.Counts) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Events"), bold.Sprint("Count"))
	tbl.AddRow("total", c.Total)
	tbl.AddRow("scheduled", c.Dated)
	tbl.AddRow("today", c.Today)
	tbl.AddRow("upcoming", c.Upcoming)
	tbl.AddRow("overdue", c.Overdue)
	tbl.AddRow("time tbd", c.TimeTBD)
	tbl.AddRow("date tbd", c.DateTBD)
	tbl.AddRow("completely tbd", c.CompletelyTBD)
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Presets prints the presets as a table, marking the active one.
func (pp *PrettyPrint) Presets(active string, presets ...routine.Preset) {
	if len(presets) == 0 {
		pp.Title("Presets")
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Tasks"))
	for _, p := range presets {
		mark := ""
		if p.ID == active {
			mark = "*"
		}
		tbl.AddRow(mark, p.ID, p.Name, len(p.Tasks))
	}
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Backups prints the backup ledger, newest last.
func (pp *PrettyPrint) Backups(backups ...routine.Backup) {
	if len(backups) == 0 {
		pp.Title("Backups")
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Taken"), bold.Sprint("Tasks"), bold.Sprint("Events"), bold.Sprint("Presets"))
	for _, b := range backups {
		taken := time.UnixMilli(b.Timestamp).Local().Format("Jan 2 3:04:05 PM")
		tbl.AddRow(b.ID, taken, len(b.State.Tasks), len(b.State.ScheduledEvents), len(b.State.Presets))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid. Days with dated events are bold and today is
// underlined.
func (pp *PrettyPrint) Month(then time.Time, today string, evs ...routine.ScheduledEvent) {
	count := make([]int, DaysIn(then))
	for _, e := range evs {
		if e.IsDateTBD() {
			continue
		}
		t, err := timeutil.ParseDateKey(e.Date())
		if err != nil || t.Year() != then.Year() || t.Month() != then.Month() {
			continue
		}
		count[t.Day()-1]++
	}
	pp.MonthCount(then, today, count)
}

// MonthCount prints a month grid from per-day counts.
func (pp *PrettyPrint) MonthCount(then time.Time, today string, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	now := color.New(color.Underline)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		key := timeutil.DateKey(time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.Local))
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if key == today {
			_, _ = now.Fprint(pp.out(), printer.Sprintf("%2d", i+1))
			_, _ = fmt.Fprint(pp.out(), " ")
		} else {
			_, _ = printer.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

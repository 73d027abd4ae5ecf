package events

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// SortByDate orders events by date, earliest first, with undated events last.
func SortByDate(events []routine.ScheduledEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Date(), events[j].Date()
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
}

// SortByTitle orders events alphabetically using English collation, so case
// and accents sort the way people expect.
func SortByTitle(events []routine.ScheduledEvent) {
	c := collate.New(language.English)
	sort.SliceStable(events, func(i, j int) bool {
		return c.CompareString(events[i].Title, events[j].Title) < 0
	})
}

// SortByTime orders events by time of day. Events without a time sort first.
func SortByTime(events []routine.ScheduledEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return minutes(events[i]) < minutes(events[j])
	})
}

// SortByCreationOrder puts the newest events first, treating ids as creation
// timestamps. Non-numeric ids count as zero.
func SortByCreationOrder(events []routine.ScheduledEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return numericID(events[i].ID) > numericID(events[j].ID)
	})
}

func minutes(e routine.ScheduledEvent) int {
	if e.IsTimeTBD() {
		return -1
	}
	return timeutil.ConvertTimeToMinutes(e.Time())
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

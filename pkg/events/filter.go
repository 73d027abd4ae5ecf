package events

import (
	"sort"
	"strings"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// TBDGroup is the GroupByDate key for undated events.
const TBDGroup = "tbd"

// Filter narrows a list of events. Zero fields are ignored.
type Filter struct {
	// FromDate keeps dated events on or after this date key.
	FromDate string
	// ToDate keeps dated events on or before this date key.
	ToDate string
	// Search keeps events whose title or time contains it, ignoring case.
	Search string
}

// Apply returns the events matching f in input order. A date bound drops
// undated events.
func (f Filter) Apply(events []routine.ScheduledEvent) []routine.ScheduledEvent {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []routine.ScheduledEvent{}
	for _, e := range events {
		if f.FromDate != "" && (e.IsDateTBD() || e.Date() < f.FromDate) {
			continue
		}
		if f.ToDate != "" && (e.IsDateTBD() || e.Date() > f.ToDate) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Time()), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Window returns a filter covering days days starting today.
func Window(today string, days int) Filter {
	return Filter{FromDate: today, ToDate: timeutil.AddDays(today, days-1)}
}

// Group is a set of events sharing a date key.
type Group struct {
	Key    string                   `json:"key"`
	Events []routine.ScheduledEvent `json:"events"`
}

// GroupByDate groups events by date key, with undated events under TBDGroup.
// Groups are ordered by date with TBDGroup last, and events within a group
// are ordered by time.
func GroupByDate(events []routine.ScheduledEvent) []Group {
	byKey := map[string][]routine.ScheduledEvent{}
	var keys []string
	for _, e := range events {
		key := e.Date()
		if key == "" {
			key = TBDGroup
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], e)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == TBDGroup || keys[j] == TBDGroup {
			return keys[j] == TBDGroup && keys[i] != TBDGroup
		}
		return keys[i] < keys[j]
	})
	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		evs := byKey[k]
		SortByTime(evs)
		groups = append(groups, Group{Key: k, Events: evs})
	}
	return groups
}

package events

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/dayplan/pkg/routine"
)

const today = "2024-06-01"

func ev(id, title, date, clock string) routine.ScheduledEvent {
	return routine.ScheduledEvent{ID: id, Title: title, Icon: "📅", Schedule: routine.NewSchedule(date, clock)}
}

func idsOf(events []routine.ScheduledEvent) []string {
	out := []string{}
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func fixture() []routine.ScheduledEvent {
	return []routine.ScheduledEvent{
		ev("1", "Dentist", today, "9:00 AM"),
		ev("2", "zoo trip", "", ""),
		ev("3", "Haircut", "2024-06-03", ""),
		ev("4", "Call mom", "", "6:00 PM"),
		ev("5", "Ánniversary", "2024-05-20", "7:00 PM"),
		ev("6", "apple picking", "", ""),
		ev("7", "Vet", "2024-06-02", "10:30 AM"),
	}
}

func TestCategorizeCoversEveryEventOnce(t *testing.T) {
	evs := fixture()
	c := Categorize(evs)

	seen := map[string]int{}
	for _, bucket := range [][]routine.ScheduledEvent{c.Dated, c.TimeTBD, c.DateTBD, c.CompletelyTBD} {
		for _, e := range bucket {
			seen[e.ID]++
		}
	}
	require.Len(t, seen, len(evs))
	for id, n := range seen {
		require.Equalf(t, 1, n, "event %s in %d buckets", id, n)
	}
}

func TestCategorizeOrdering(t *testing.T) {
	c := Categorize(fixture())
	require.Equal(t, []string{"5", "1", "7"}, idsOf(c.Dated))
	require.Equal(t, []string{"3"}, idsOf(c.TimeTBD))
	require.Equal(t, []string{"4"}, idsOf(c.DateTBD))
	require.Equal(t, []string{"6", "2"}, idsOf(c.CompletelyTBD))
	require.Equal(t, []string{"6", "4", "2"}, idsOf(c.TBD))
}

func TestCategorizeEmpty(t *testing.T) {
	c := Categorize(nil)
	require.NotNil(t, c.Dated)
	require.Empty(t, c.TBD)
}

func TestSortByTitleCollation(t *testing.T) {
	evs := []routine.ScheduledEvent{ev("1", "banana", "", ""), ev("2", "Apple", "", ""), ev("3", "Ápricot", "", "")}
	SortByTitle(evs)
	require.Equal(t, []string{"2", "3", "1"}, idsOf(evs))
}

func TestForDate(t *testing.T) {
	evs := fixture()
	require.Equal(t, []string{"1"}, idsOf(ForDate(evs, today, true)))
	require.Equal(t, []string{"3"}, idsOf(ForDate(evs, "2024-06-03", true)))
	require.Empty(t, ForDate(evs, "2030-01-01", false))
}

func TestUpcomingAndOverdue(t *testing.T) {
	evs := fixture()
	require.Equal(t, []string{"1", "7", "3"}, idsOf(Upcoming(evs, today)))
	require.True(t, IsOverdue(evs[4], today))
	require.False(t, IsOverdue(evs[0], today))
	require.False(t, IsOverdue(evs[1], today))
	require.True(t, IsToday(evs[0], today))
	require.False(t, IsToday(evs[1], today))
}

func TestCount(t *testing.T) {
	require.Equal(t, Counts{
		Total:         7,
		Dated:         3,
		TBD:           3,
		TimeTBD:       1,
		DateTBD:       1,
		CompletelyTBD: 2,
		Today:         1,
		Upcoming:      2,
		Overdue:       1,
	}, Count(fixture(), today))
}

func TestFilter(t *testing.T) {
	evs := fixture()
	require.Equal(t, []string{"1", "3", "7"}, idsOf(Filter{FromDate: today}.Apply(evs)))
	require.Equal(t, []string{"1", "5"}, idsOf(Filter{ToDate: today}.Apply(evs)))
	require.Equal(t, []string{"4"}, idsOf(Filter{Search: "6:00"}.Apply(evs)))
	require.Equal(t, []string{"1"}, idsOf(Filter{Search: "DENT"}.Apply(evs)))
	require.Equal(t, []string{"1", "7"}, idsOf(Window(today, 2).Apply(evs)))
	require.Len(t, Filter{}.Apply(evs), len(evs))
}

func TestGroupByDate(t *testing.T) {
	evs := append(fixture(), ev("8", "Lunch", today, "12:00 PM"), ev("9", "Gym", today, "6:00 AM"))
	groups := GroupByDate(evs)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	require.Equal(t, []string{"2024-05-20", today, "2024-06-02", "2024-06-03", TBDGroup}, keys)
	require.Equal(t, []string{"9", "1", "8"}, idsOf(groups[1].Events))
	require.Equal(t, []string{"2", "6", "4"}, idsOf(groups[4].Events))
}

func TestSortByCreationOrder(t *testing.T) {
	evs := []routine.ScheduledEvent{ev("1717200000000", "a", "", ""), ev("abc", "b", "", ""), ev("1717300000000", "c", "", "")}
	SortByCreationOrder(evs)
	require.Equal(t, []string{"1717300000000", "1717200000000", "abc"}, idsOf(evs))
}

func TestDisplayText(t *testing.T) {
	require.Equal(t, "Sat, Jun 1, 2024 at 9:00 AM", DisplayText(ev("1", "x", today, "9:00 AM")))
	require.Equal(t, "Sat, Jun 1, 2024 - Time TBD", DisplayText(ev("1", "x", today, "")))
	require.Equal(t, "9:00 AM - Date TBD", DisplayText(ev("1", "x", "", "9:00 AM")))
	require.Equal(t, "Completely TBD", DisplayText(ev("1", "x", "", "")))
	require.Equal(t, "TBD Time", TimeText(ev("1", "x", today, "")))
	require.Equal(t, "TBD Date", DateText(ev("1", "x", "", "")))
}

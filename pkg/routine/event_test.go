package routine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	tests := map[string]struct {
		date, clock string
		want        Schedule
	}{
		"concrete":  {date: "2024-06-01", clock: "9:00 AM", want: Concrete{Date: "2024-06-01", Time: "9:00 AM"}},
		"time tbd":  {date: "2024-06-01", want: TimeTBD{Date: "2024-06-01"}},
		"date tbd":  {clock: "9:00 AM", want: DateTBD{Time: "9:00 AM"}},
		"fully tbd": {want: FullyTBD{}},
		"blank":     {date: "  ", clock: " ", want: FullyTBD{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, NewSchedule(tc.date, tc.clock))
		})
	}
}

func TestEventRecordMigrateUndated(t *testing.T) {
	var rec EventRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"X","icon":"📅","time":"9:00 AM"}`), &rec))
	require.True(t, rec.Legacy())

	m := rec.Migrate()
	require.NotNil(t, m.IsTBD)
	require.NotNil(t, m.IsTimeTBD)
	require.True(t, *m.IsTBD)
	require.False(t, *m.IsTimeTBD)
	require.Equal(t, "9:00 AM", *m.Time)
	require.Nil(t, m.Date)

	ev := m.Event()
	require.Equal(t, DateTBD{Time: "9:00 AM"}, ev.Schedule)
}

func TestEventRecordKeepsExistingFlags(t *testing.T) {
	var ev ScheduledEvent
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","title":"Y","icon":"📅","time":"9:00 AM","date":"2024-06-01","isTBD":false,"isTimeTBD":true}`), &ev))
	require.Equal(t, TimeTBD{Date: "2024-06-01"}, ev.Schedule)
}

func TestEventRecordDatedLegacy(t *testing.T) {
	var ev ScheduledEvent
	require.NoError(t, json.Unmarshal([]byte(`{"id":"3","title":"Z","icon":"📅","time":"1:00 PM","date":"2024-06-02"}`), &ev))
	require.Equal(t, Concrete{Date: "2024-06-02", Time: "1:00 PM"}, ev.Schedule)
}

func TestEventRecordKnownButEmpty(t *testing.T) {
	var ev ScheduledEvent
	require.NoError(t, json.Unmarshal([]byte(`{"id":"4","title":"W","icon":"📅","date":"2024-06-02","isTBD":false,"isTimeTBD":false}`), &ev))
	require.Equal(t, TimeTBD{Date: "2024-06-02"}, ev.Schedule)
	require.True(t, ev.IsTimeTBD())
	require.False(t, ev.IsDateTBD())
}

func TestScheduledEventWireShape(t *testing.T) {
	ev := ScheduledEvent{ID: "5", Title: "Dentist", Icon: "🦷", Schedule: DateTBD{Time: "9:00 AM"}}
	b, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Equal(t, true, raw["isTBD"])
	require.Equal(t, false, raw["isTimeTBD"])
	require.Equal(t, "9:00 AM", raw["time"])
	_, hasDate := raw["date"]
	require.False(t, hasDate)
}

func TestAsTask(t *testing.T) {
	ev := ScheduledEvent{ID: "5", Title: "Dentist", Icon: "🦷", Schedule: Concrete{Date: "2024-06-01", Time: "9:00 AM"}}
	require.Equal(t, Task{
		ID:               "event-5",
		Title:            "Dentist",
		Icon:             "🦷",
		Time:             "9:00 AM",
		IsScheduledEvent: true,
	}, ev.AsTask())

	ev.Schedule = TimeTBD{Date: "2024-06-01"}
	require.Equal(t, "", ev.AsTask().Time)
}

func TestNilScheduleIsFullyTBD(t *testing.T) {
	ev := ScheduledEvent{ID: "6"}
	require.True(t, ev.IsDateTBD())
	require.True(t, ev.IsTimeTBD())
	require.Equal(t, FullyTBD{}, ev.When())
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

const today = "2024-06-01"

func morning() time.Time {
	return time.Date(2024, time.June, 1, 8, 0, 0, 0, time.Local)
}

func open(t *testing.T, p store.Persistence, clock timeutil.Clock, opts ...func(*Options)) *Service {
	t.Helper()
	o := Options{Clock: clock}
	for _, fn := range opts {
		fn(&o)
	}
	s, err := Open(context.Background(), p, o)
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, p store.Persistence, key string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, p.Set(key, b))
}

func seedRaw(t *testing.T, p store.Persistence, key, raw string) {
	t.Helper()
	require.NoError(t, p.Set(key, []byte(raw)))
}

func taskIDs(tasks []routine.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func eventIDs(evs []routine.ScheduledEvent) []string {
	out := []string{}
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func persistedEvents(t *testing.T, p store.Persistence) []routine.ScheduledEvent {
	t.Helper()
	raw, err := p.Get(KeyEvents)
	require.NoError(t, err)
	evs, _, err := MigrateEvents(raw)
	require.NoError(t, err)
	return evs
}

func TestOpenRequiresPersistence(t *testing.T) {
	_, err := Open(context.Background(), nil, Options{})
	require.ErrorIs(t, err, ErrNoPersistence)
}

func TestOpenFreshInstall(t *testing.T) {
	p := store.NewMemory()
	s := open(t, p, timeutil.NewFakeClock(morning()))

	require.Len(t, s.Tasks(), 16)
	require.Equal(t, routine.DefaultPresetID, s.CurrentPresetID())
	require.Len(t, s.Presets(), 1)
	require.Equal(t, today, s.LastResetDate())
	require.False(t, s.Unsaved())

	for _, key := range []string{KeyTasks, KeyEvents, KeyLastReset} {
		_, err := p.Get(key)
		require.NoErrorf(t, err, "key %s not written by the first reset", key)
	}
}

func TestOpenMigratesLegacyEvents(t *testing.T) {
	p := store.NewMemory()
	seedRaw(t, p, KeyEvents, `[{"id":"1","title":"X","icon":"📅","time":"9:00 AM"}]`)
	seedRaw(t, p, KeyLastReset, `"`+today+`"`)

	s := open(t, p, timeutil.NewFakeClock(morning()))
	ev, err := s.Event("1")
	require.NoError(t, err)
	require.Equal(t, routine.DateTBD{Time: "9:00 AM"}, ev.Schedule)
	require.True(t, ev.IsDateTBD())
	require.False(t, ev.IsTimeTBD())
}

func TestOpenFallsBackOnCorruptValues(t *testing.T) {
	p := store.NewMemory()
	seedRaw(t, p, KeyTasks, `[{"id":"a","title":"A","icon":"x","time":"7:00 AM","completed":false}]`)
	seedRaw(t, p, KeyEvents, `not json`)
	seedRaw(t, p, KeyPresets, `{`)
	seedRaw(t, p, KeyLastReset, `"`+today+`"`)

	var logs bytes.Buffer
	s := open(t, p, timeutil.NewFakeClock(morning()), func(o *Options) {
		o.Logger = slog.New(slog.NewTextHandler(&logs, nil))
	})

	require.Empty(t, s.Events())
	require.Equal(t, []string{routine.DefaultPresetID}, presetIDs(s.Presets()))
	require.Equal(t, []string{"a"}, taskIDs(s.Tasks()))
	require.Contains(t, logs.String(), "discarding unreadable value")
	require.Contains(t, logs.String(), KeyEvents)
	require.Contains(t, logs.String(), KeyPresets)
}

func TestOpenAcceptsBareTextKeys(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyTasks, []routine.Task{{ID: "a", Title: "A", Time: "7:00 AM", Completed: true}})
	seed(t, p, KeyPresets, []routine.Preset{{ID: "work", Name: "Work"}, {ID: "default", Name: "Default"}})
	seedRaw(t, p, KeyCurrentPreset, `work`)
	seedRaw(t, p, KeyLastReset, today)

	s := open(t, p, timeutil.NewFakeClock(morning()))
	require.Equal(t, "work", s.CurrentPresetID())
	require.Equal(t, today, s.LastResetDate())

	// No reset happened, so yesterday's completion is still there.
	task, err := s.Task("a")
	require.NoError(t, err)
	require.True(t, task.Completed)
}

func TestOpenReturnsStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Open(context.Background(), failingStore{err: boom}, Options{Clock: timeutil.NewFakeClock(morning())})
	require.ErrorIs(t, err, boom)
}

func TestSaveAndDiscard(t *testing.T) {
	p := store.NewMemory()
	clock := timeutil.NewFakeClock(morning())
	s := open(t, p, clock)

	added, err := s.AddTask(TaskInput{Title: "Read", Time: "8pm"})
	require.NoError(t, err)
	require.True(t, s.Unsaved())

	s.Discard()
	require.False(t, s.Unsaved())
	_, err = s.Task(added.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	added, err = s.AddTask(TaskInput{Title: "Read", Time: "8pm"})
	require.NoError(t, err)
	require.Equal(t, "8:00 PM", added.Time)
	require.NoError(t, s.Save(context.Background()))
	require.False(t, s.Unsaved())

	again := open(t, p, clock)
	got, err := again.Task(added.ID)
	require.NoError(t, err)
	require.Equal(t, added, got)

	active, ok := again.ActivePreset()
	require.True(t, ok)
	require.Contains(t, taskIDs(active.Tasks), added.ID)
}

func TestReloadKeepsUnsavedEdits(t *testing.T) {
	p := store.NewMemory()
	clock := timeutil.NewFakeClock(morning())
	s := open(t, p, clock)
	other := open(t, p, clock)

	_, err := other.AddTask(TaskInput{Title: "From elsewhere", Time: "9:00 AM"})
	require.NoError(t, err)
	require.NoError(t, other.Save(context.Background()))

	reloaded, err := s.Reload(context.Background())
	require.NoError(t, err)
	require.True(t, reloaded)
	require.Len(t, s.Tasks(), 17)

	_, err = s.AddTask(TaskInput{Title: "Local", Time: "9:00 AM"})
	require.NoError(t, err)
	reloaded, err = s.Reload(context.Background())
	require.NoError(t, err)
	require.False(t, reloaded)
	require.Len(t, s.Tasks(), 18)
}

func TestTaskEdits(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))

	_, err := s.AddTask(TaskInput{Title: "  ", Time: "7:00 AM"})
	require.ErrorIs(t, err, ErrInvalid)
	_, err = s.AddTask(TaskInput{Title: "Nap", Time: "25:00"})
	require.ErrorIs(t, err, ErrInvalid)

	a, err := s.AddTask(TaskInput{Title: "Nap", Time: "2pm"})
	require.NoError(t, err)
	b, err := s.AddTask(TaskInput{Title: "Snack", Time: "3pm", Icon: "🍎"})
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, "📝", a.Icon)

	anytime, err := s.AddTask(TaskInput{Title: "Water plants"})
	require.NoError(t, err)
	require.Empty(t, anytime.Time)
	require.Equal(t, timeutil.Anytime, anytime.Period())

	title := "Long nap"
	done := true
	updated, err := s.UpdateTask(a.ID, TaskPatch{Title: &title, Completed: &done})
	require.NoError(t, err)
	require.Equal(t, "Long nap", updated.Title)
	require.True(t, updated.Completed)

	toggled, err := s.ToggleTask(a.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)

	_, err = s.ToggleTask("missing")
	require.ErrorIs(t, err, ErrTaskNotFound)

	require.NoError(t, s.DeleteTask(b.ID))
	require.ErrorIs(t, s.DeleteTask(b.ID), ErrTaskNotFound)
}

func TestMoveTasks(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyPresets, []routine.Preset{{ID: "default", Name: "D", Tasks: []routine.Task{
		{ID: "a", Time: "7:00 AM"}, {ID: "b", Time: "8:00 AM"}, {ID: "c", Time: "9:00 AM"},
	}}})
	s := open(t, p, timeutil.NewFakeClock(morning()))
	require.Equal(t, []string{"a", "b", "c"}, taskIDs(s.Tasks()))

	require.NoError(t, s.MoveTask(0, 2))
	require.Equal(t, []string{"b", "c", "a"}, taskIDs(s.Tasks()))

	require.NoError(t, s.MoveTaskUp("b"))
	require.Equal(t, []string{"b", "c", "a"}, taskIDs(s.Tasks()))

	require.NoError(t, s.MoveTaskDown("b"))
	require.Equal(t, []string{"c", "b", "a"}, taskIDs(s.Tasks()))

	require.ErrorIs(t, s.MoveTask(0, 3), routine.ErrIndexOutOfRange)
	require.ErrorIs(t, s.MoveTaskUp("zz"), ErrTaskNotFound)

	active, _ := s.ActivePreset()
	require.Equal(t, []string{"c", "b", "a"}, taskIDs(active.Tasks))
}

func TestResolveTask(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyPresets, []routine.Preset{{ID: "default", Name: "D", Tasks: []routine.Task{
		{ID: "x", Time: "7:00 AM"}, {ID: "1", Time: "8:00 AM"},
	}}})
	s := open(t, p, timeutil.NewFakeClock(morning()))

	got, err := s.ResolveTask("1")
	require.NoError(t, err)
	require.Equal(t, "1", got.ID, "ids win over positions")

	got, err = s.ResolveTask("2")
	require.NoError(t, err)
	require.Equal(t, "1", got.ID)

	_, err = s.ResolveTask("3")
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestEventEdits(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))

	_, err := s.AddEvent(EventInput{Title: "Trip", Date: "2024-13-01"})
	require.ErrorIs(t, err, ErrInvalid)

	e, err := s.AddEvent(EventInput{Title: "Call", Time: "7pm"})
	require.NoError(t, err)
	require.Equal(t, routine.DateTBD{Time: "7:00 PM"}, e.Schedule)
	require.Equal(t, "📅", e.Icon)

	date := "2024-06-10"
	e, err = s.UpdateEvent(e.ID, EventPatch{Date: &date})
	require.NoError(t, err)
	require.Equal(t, routine.Concrete{Date: date, Time: "7:00 PM"}, e.Schedule)

	none := ""
	e, err = s.UpdateEvent(e.ID, EventPatch{Time: &none})
	require.NoError(t, err)
	require.Equal(t, routine.TimeTBD{Date: date}, e.Schedule)

	require.Equal(t, 1, s.EventCounts().TimeTBD)
	require.Equal(t, []string{e.ID}, eventIDs(s.Upcoming()))

	require.NoError(t, s.DeleteEvent(e.ID))
	require.ErrorIs(t, s.DeleteEvent(e.ID), ErrEventNotFound)
}

func TestReport(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyPresets, []routine.Preset{{ID: "default", Name: "Weekday", Tasks: []routine.Task{
		{ID: "e", Time: "8:00 PM"}, {ID: "m2", Time: "9:00 AM"}, {ID: "m1", Time: "6:00 AM"},
		{ID: "a", Time: "1:00 PM"}, {ID: "any", Time: ""},
	}}})
	s := open(t, p, timeutil.NewFakeClock(morning()))
	_, err := s.ToggleTask("m1")
	require.NoError(t, err)

	r := s.Report()
	require.Equal(t, today, r.Date)
	require.Equal(t, "Weekday", r.Preset)
	require.Equal(t, 1, r.Completed)
	require.Equal(t, 5, r.Total)
	require.True(t, r.Unsaved)

	var names []string
	for _, sec := range r.Sections {
		names = append(names, sec.Name)
	}
	require.Equal(t, []string{"Morning", "Afternoon", "Evening", "Anytime"}, names)
	require.Equal(t, []string{"m2", "m1"}, taskIDs(r.Sections[0].Tasks))
	require.Equal(t, 1, r.Sections[0].Completed)
}

func TestReportKeepsListOrder(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyPresets, []routine.Preset{{ID: "default", Name: "Weekday", Tasks: []routine.Task{
		{ID: "a", Time: "6:00 AM"}, {ID: "b", Time: "7:00 AM"}, {ID: "c", Time: "8:00 AM"},
		{ID: "snack", Time: "9:00 PM"}, {ID: "feed", Time: "1:00 AM"},
	}}})
	s := open(t, p, timeutil.NewFakeClock(morning()))

	require.NoError(t, s.MoveTask(0, 2))
	require.Equal(t, []string{"b", "c", "a", "snack", "feed"}, taskIDs(s.Tasks()))

	r := s.Report()
	require.Equal(t, "Morning", r.Sections[0].Name)
	require.Equal(t, []string{"b", "c", "a"}, taskIDs(r.Sections[0].Tasks))
	require.Equal(t, "Evening", r.Sections[1].Name)
	require.Equal(t, []string{"snack", "feed"}, taskIDs(r.Sections[1].Tasks))
}

func presetIDs(ps []routine.Preset) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

type failingStore struct {
	store.Persistence
	err error
}

func (f failingStore) Get(string) ([]byte, error) { return nil, f.err }

func jsonUnmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }

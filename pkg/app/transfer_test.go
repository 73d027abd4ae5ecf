package app

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func TestExportImportRoundTrip(t *testing.T) {
	clock := timeutil.NewFakeClock(morning())
	src := open(t, dentistStore(t), clock)
	_, err := src.AddEvent(EventInput{Title: "Haircut", Date: "2024-06-20"})
	require.NoError(t, err)
	_, err = src.CreatePreset("Copy")
	require.NoError(t, err)
	_, err = src.ToggleTask("a")
	require.NoError(t, err)

	data, err := src.Export()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{\n  \"tasks\""), "export is pretty printed")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, clock.Now().UTC().Format("2006-01-02T15:04:05.000Z"), doc["exportDate"])

	dst := open(t, store.NewMemory(), clock)
	st, err := dst.Import(data)
	require.NoError(t, err)
	require.Equal(t, src.State(), st)
	require.Equal(t, src.State(), dst.State())
	require.True(t, dst.Unsaved())
	require.Len(t, dst.Backups(), 1)
}

func TestImportMalformedLeavesBufferAlone(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	before := s.State()

	for _, in := range []string{`{not json`, `null`, `[]`, `{"tasks":"oops"}`, `{"scheduledEvents":{}}`, `{"currentPresetId":7}`} {
		_, err := s.Import([]byte(in))
		require.ErrorIsf(t, err, ErrImport, "input %s", in)
	}
	require.Equal(t, before, s.State())
	require.Empty(t, s.Backups())
	require.False(t, s.Unsaved())
}

func TestImportDefaultsMissingFields(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	st, err := s.Import([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, routine.State{
		Tasks:           []routine.Task{},
		ScheduledEvents: []routine.ScheduledEvent{},
		Presets:         []routine.Preset{},
		CurrentPresetID: "default",
	}, st)
	require.Empty(t, s.Tasks())
	require.Equal(t, "default", s.CurrentPresetID())
}

func TestImportMigratesEvents(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	_, err := s.Import([]byte(`{"scheduledEvents":[
		{"id":"1","title":"X","icon":"📅","time":"9:00 AM"},
		{"id":"2","title":"Y","icon":"📅","date":"2024-07-04","time":"9:00 AM"}
	]}`))
	require.NoError(t, err)

	c := s.Categorized()
	require.Equal(t, []string{"2"}, eventIDs(c.Dated))
	require.Equal(t, []string{"1"}, eventIDs(c.DateTBD))
}

func TestExportICS(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	_, err := s.AddEvent(EventInput{Title: "Dentist, cleaning", Date: "2024-06-03", Time: "9:30 AM"})
	require.NoError(t, err)
	_, err = s.AddEvent(EventInput{Title: "Haircut", Date: "2024-06-04"})
	require.NoError(t, err)
	_, err = s.AddEvent(EventInput{Title: "Someday"})
	require.NoError(t, err)

	ics := s.ExportICS()
	require.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	require.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	require.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	require.Contains(t, ics, "SUMMARY:Dentist\\, cleaning\r\n")
	require.Contains(t, ics, "DTSTART:20240603T093000\r\n")
	require.Contains(t, ics, "DTEND:20240603T103000\r\n")
	require.Contains(t, ics, "DTSTART;VALUE=DATE:20240604\r\n")
	require.Contains(t, ics, "DTEND;VALUE=DATE:20240605\r\n")
	require.NotContains(t, ics, "Someday")
}

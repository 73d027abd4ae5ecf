package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func TestDeleteLastPresetIsRejected(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	require.Len(t, s.Presets(), 1)

	require.ErrorIs(t, s.DeletePreset(routine.DefaultPresetID), ErrLastPreset)
	require.Len(t, s.Presets(), 1)
	require.False(t, s.Unsaved())
}

func TestDeletePresetNotFound(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	require.ErrorIs(t, s.DeletePreset("nope"), ErrPresetNotFound)
}

func TestCreateApplyAndDeletePreset(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))

	_, err := s.ToggleTask("1")
	require.NoError(t, err)
	_, err = s.CreatePreset(" ")
	require.ErrorIs(t, err, ErrInvalid)

	weekend, err := s.CreatePreset("Weekend")
	require.NoError(t, err)
	require.Len(t, weekend.Tasks, 16)
	for _, task := range weekend.Tasks {
		require.False(t, task.Completed)
	}
	require.Equal(t, routine.DefaultPresetID, s.CurrentPresetID(), "creating does not activate")

	// Trim the weekend routine down to one task.
	_, err = s.ApplyPreset(weekend.ID)
	require.NoError(t, err)
	require.Equal(t, weekend.ID, s.CurrentPresetID())
	require.Len(t, s.Backups(), 1)
	for _, task := range s.Tasks()[1:] {
		require.NoError(t, s.DeleteTask(task.ID))
	}
	active, _ := s.ActivePreset()
	require.Len(t, active.Tasks, 1)

	renamed, err := s.RenamePreset(weekend.ID, "Lazy Sunday")
	require.NoError(t, err)
	require.Equal(t, "Lazy Sunday", renamed.Name)

	found, err := s.ResolvePreset("lazy sunday")
	require.NoError(t, err)
	require.Equal(t, weekend.ID, found.ID)

	// Deleting the active preset switches to the first remaining one and
	// applies it right away.
	require.NoError(t, s.DeletePreset(weekend.ID))
	require.Equal(t, routine.DefaultPresetID, s.CurrentPresetID())
	require.Len(t, s.Tasks(), 16)
	require.Len(t, s.Backups(), 2)
	require.True(t, s.Unsaved())
}

func TestDeleteInactivePresetKeepsTasks(t *testing.T) {
	s := open(t, store.NewMemory(), timeutil.NewFakeClock(morning()))
	extra, err := s.CreatePreset("Extra")
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask("16"))

	require.NoError(t, s.DeletePreset(extra.ID))
	require.Len(t, s.Tasks(), 15)
	require.Empty(t, s.Backups())
}

func TestSyncSkipsEventTasks(t *testing.T) {
	p := dentistStore(t)
	s := open(t, p, timeutil.NewFakeClock(morning()))
	require.Contains(t, taskIDs(s.Tasks()), "event-5")

	require.True(t, s.SyncActivePreset(s.Tasks()))
	active, _ := s.ActivePreset()
	require.Equal(t, []string{"a", "b"}, taskIDs(active.Tasks))
}

func TestSyncKeepsEventTasksWhenConfigured(t *testing.T) {
	p := dentistStore(t)
	s := open(t, p, timeutil.NewFakeClock(morning()), func(o *Options) { o.SyncEventTasks = true })

	require.True(t, s.SyncActivePreset(s.Tasks()))
	active, _ := s.ActivePreset()
	require.Equal(t, []string{"a", "b", "event-5"}, taskIDs(active.Tasks))
}

func TestSyncWithoutActivePreset(t *testing.T) {
	p := store.NewMemory()
	seed(t, p, KeyPresets, []routine.Preset{{ID: "work", Name: "Work"}})
	seed(t, p, KeyCurrentPreset, "gone")
	s := open(t, p, timeutil.NewFakeClock(morning()))

	require.False(t, s.SyncActivePreset(s.Tasks()))
	require.Len(t, s.Tasks(), 16, "missing preset falls back to the built-in routine")
}

func TestReadPresets(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	require.Equal(t, []string{routine.DefaultPresetID}, presetIDs(ReadPresets(ctx, p)))

	s := open(t, p, timeutil.NewFakeClock(morning()))
	_, err := s.CreatePreset("Weekend")
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))
	require.Len(t, ReadPresets(ctx, p), 2)

	seedRaw(t, p, KeyPresets, `{`)
	require.Equal(t, []string{routine.DefaultPresetID}, presetIDs(ReadPresets(ctx, p)))
}

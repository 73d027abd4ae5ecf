package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
)

// load reads every key into the buffer and the saved snapshot. Values that
// cannot be parsed fall back to defaults with a warning; only storage
// failures are returned.
func (s *Service) load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fresh := true
	for _, key := range []string{KeyTasks, KeyPresets, KeyCurrentPreset} {
		if _, err := s.Persistence.Get(key); err == nil {
			fresh = false
			break
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	st := routine.State{
		Tasks:           routine.ResetCompletion(DefaultTasks()),
		ScheduledEvents: []routine.ScheduledEvent{},
		Presets:         []routine.Preset{DefaultPreset()},
		CurrentPresetID: routine.DefaultPresetID,
	}

	if !fresh {
		if err := s.readJSON(KeyTasks, &st.Tasks, func() { st.Tasks = routine.ResetCompletion(DefaultTasks()) }); err != nil {
			return err
		}
		if err := s.readJSON(KeyPresets, &st.Presets, func() { st.Presets = []routine.Preset{DefaultPreset()} }); err != nil {
			return err
		}
		id, err := s.readText(KeyCurrentPreset)
		if err != nil {
			return err
		}
		if id != "" {
			st.CurrentPresetID = id
		}
	}

	events, err := s.loadEvents()
	if err != nil {
		return err
	}
	st.ScheduledEvents = events

	last, err := s.readText(KeyLastReset)
	if err != nil {
		return err
	}

	var backups []routine.Backup
	if err := s.readJSON(KeyBackups, &backups, func() { backups = nil }); err != nil {
		return err
	}

	if st.Tasks == nil {
		st.Tasks = []routine.Task{}
	}
	if st.Presets == nil {
		st.Presets = []routine.Preset{}
	}

	s.tasks = routine.NewTaskStore(st.Tasks)
	s.events = routine.NewEventStore(st.ScheduledEvents)
	s.presets = routine.NewPresetStore(st.Presets, st.CurrentPresetID)
	s.backups = backups
	s.trimBackups()
	s.lastResetDate = last
	s.saved = snapshot{state: s.State(), lastResetDate: last}
	s.unsaved = false
	return nil
}

// loadEvents reads scheduled events, filling in the TBD flags that older
// records lack.
func (s *Service) loadEvents() ([]routine.ScheduledEvent, error) {
	raw, err := s.Persistence.Get(KeyEvents)
	if errors.Is(err, store.ErrNotFound) {
		return []routine.ScheduledEvent{}, nil
	}
	if err != nil {
		return nil, err
	}
	events, migrated, err := MigrateEvents(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable value", "key", KeyEvents, "err", err)
		return []routine.ScheduledEvent{}, nil
	}
	if migrated > 0 {
		s.logger.Info("migrated scheduled events", "count", migrated)
	}
	return events, nil
}

// MigrateEvents decodes persisted or imported scheduled events. It returns
// how many records predated the TBD flags.
func MigrateEvents(raw []byte) ([]routine.ScheduledEvent, int, error) {
	var records []routine.EventRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, err
	}
	events := make([]routine.ScheduledEvent, 0, len(records))
	migrated := 0
	for _, r := range records {
		if r.Legacy() {
			migrated++
		}
		events = append(events, r.Migrate().Event())
	}
	return events, migrated, nil
}

// readJSON decodes key into v. A missing key leaves v untouched; a value that
// does not parse is logged and replaced by calling fallback.
func (s *Service) readJSON(key string, v any, fallback func()) error {
	raw, err := s.Persistence.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("discarding unreadable value", "key", key, "err", err)
		fallback()
	}
	return nil
}

// readText reads a string key. Values are normally JSON strings but bare text
// is accepted too.
func (s *Service) readText(key string) (string, error) {
	raw, err := s.Persistence.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	raw = bytes.TrimSpace(raw)
	var v string
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}
	return string(raw), nil
}

func (s *Service) put(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("app: encode %s: %w", key, err)
	}
	return s.Persistence.Set(key, b)
}

// ReadPresets reads the saved presets straight from persistence, without
// the daily reset Open runs. Unreadable values yield the default preset.
func ReadPresets(ctx context.Context, p store.Persistence) []routine.Preset {
	if ctx.Err() != nil {
		return nil
	}
	raw, err := p.Get(KeyPresets)
	if err != nil {
		return []routine.Preset{DefaultPreset()}
	}
	var presets []routine.Preset
	if err := json.Unmarshal(raw, &presets); err != nil || len(presets) == 0 {
		return []routine.Preset{DefaultPreset()}
	}
	return presets
}

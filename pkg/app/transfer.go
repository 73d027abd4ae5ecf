package app

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/dayplan/pkg/routine"
)

// isoMillis matches the ISO-8601 form browsers produce, e.g.
// 2024-06-01T09:30:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Export is the document written by Export and read by Import.
type Export struct {
	Tasks           []routine.Task           `json:"tasks"`
	ScheduledEvents []routine.ScheduledEvent `json:"scheduledEvents"`
	Presets         []routine.Preset         `json:"presets"`
	CurrentPresetID string                   `json:"currentPresetId"`
	ExportDate      string                   `json:"exportDate"`
}

// Export renders the buffer as pretty-printed JSON.
func (s *Service) Export() ([]byte, error) {
	st := s.State()
	doc := Export{
		Tasks:           st.Tasks,
		ScheduledEvents: st.ScheduledEvents,
		Presets:         st.Presets,
		CurrentPresetID: st.CurrentPresetID,
		ExportDate:      s.clock.Now().UTC().Format(isoMillis),
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("app: export: %w", err)
	}
	return b, nil
}

// Import replaces the buffer with an exported document, backing up the
// current state first. Missing fields default to empty lists and the
// "default" preset id; older event records are migrated and events dated
// today become tasks. On any error the buffer is left untouched.
func (s *Service) Import(data []byte) (routine.State, error) {
	st, err := ParseExport(data)
	if err != nil {
		return routine.State{}, err
	}
	s.CreateBackup()
	s.setState(st)
	if len(s.promoteDue()) > 0 {
		st = s.State()
	}
	s.touch()
	return st, nil
}

// ParseExport decodes an exported document into a state.
func ParseExport(data []byte) (routine.State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return routine.State{}, fmt.Errorf("%w: %v", ErrImport, err)
	}
	if doc == nil {
		return routine.State{}, fmt.Errorf("%w: document is not an object", ErrImport)
	}

	st := routine.State{
		Tasks:           []routine.Task{},
		ScheduledEvents: []routine.ScheduledEvent{},
		Presets:         []routine.Preset{},
		CurrentPresetID: routine.DefaultPresetID,
	}
	if raw, ok := present(doc, "tasks"); ok {
		if err := json.Unmarshal(raw, &st.Tasks); err != nil {
			return routine.State{}, fmt.Errorf("%w: tasks: %v", ErrImport, err)
		}
	}
	if raw, ok := present(doc, "scheduledEvents"); ok {
		evs, _, err := MigrateEvents(raw)
		if err != nil {
			return routine.State{}, fmt.Errorf("%w: scheduledEvents: %v", ErrImport, err)
		}
		st.ScheduledEvents = evs
	}
	if raw, ok := present(doc, "presets"); ok {
		if err := json.Unmarshal(raw, &st.Presets); err != nil {
			return routine.State{}, fmt.Errorf("%w: presets: %v", ErrImport, err)
		}
	}
	if raw, ok := present(doc, "currentPresetId"); ok {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return routine.State{}, fmt.Errorf("%w: currentPresetId: %v", ErrImport, err)
		}
		if id != "" {
			st.CurrentPresetID = id
		}
	}
	if st.Tasks == nil {
		st.Tasks = []routine.Task{}
	}
	if st.Presets == nil {
		st.Presets = []routine.Preset{}
	}
	return st, nil
}

// present returns the raw field unless it is absent or null.
func present(doc map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

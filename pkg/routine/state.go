package routine

// State is the complete routine state a backup captures.
type State struct {
	Tasks           []Task           `json:"tasks"`
	ScheduledEvents []ScheduledEvent `json:"scheduledEvents"`
	Presets         []Preset         `json:"presets"`
	CurrentPresetID string           `json:"currentPresetId"`
}

// Clone deep copies the state so later edits cannot leak into it.
func (s State) Clone() State {
	return State{
		Tasks:           CloneTasks(s.Tasks),
		ScheduledEvents: CloneEvents(s.ScheduledEvents),
		Presets:         ClonePresets(s.Presets),
		CurrentPresetID: s.CurrentPresetID,
	}
}

// ActivePreset returns the preset named by CurrentPresetID.
func (s State) ActivePreset() (Preset, bool) {
	for _, p := range s.Presets {
		if p.ID == s.CurrentPresetID {
			return p, true
		}
	}
	return Preset{}, false
}

// Backup is a timestamped snapshot of State.
type Backup struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	State     State  `json:"state"`
}

package routine

// DefaultPresetID is the id of the preset seeded on a fresh install.
const DefaultPresetID = "default"

// Preset is a named, reusable task template.
type Preset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Clone deep copies the preset.
func (p Preset) Clone() Preset {
	p.Tasks = CloneTasks(p.Tasks)
	return p
}

// ClonePresets deep copies a preset slice.
func ClonePresets(presets []Preset) []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.Clone()
	}
	return out
}

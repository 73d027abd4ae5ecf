package app

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/routine"
)

// Preset returns the preset with the given id.
func (s *Service) Preset(id string) (routine.Preset, error) {
	p, ok := s.presets.Get(id)
	if !ok {
		return routine.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}
	return p, nil
}

// template is the preset form of tasks: completion cleared and, unless
// configured otherwise, tasks that came from scheduled events left out.
func (s *Service) template(tasks []routine.Task) []routine.Task {
	out := make([]routine.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsScheduledEvent && !s.opts.SyncEventTasks {
			continue
		}
		t.Completed = false
		out = append(out, t)
	}
	return out
}

// SyncActivePreset makes the active preset's template match tasks. It is
// called after every task edit and on save. It reports false when no preset
// is active.
func (s *Service) SyncActivePreset(tasks []routine.Task) bool {
	return s.presets.Sync(s.template(tasks))
}

// CreatePreset saves today's tasks as a new preset. The new preset is not
// made active.
func (s *Service) CreatePreset(name string) (routine.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return routine.Preset{}, fmt.Errorf("%w: preset name required", ErrInvalid)
	}
	p := routine.Preset{
		ID:    s.newID(func(id string) bool { _, ok := s.presets.Get(id); return ok }),
		Name:  name,
		Tasks: s.template(s.tasks.All()),
	}
	s.presets.Add(p)
	s.touch()
	return p, nil
}

// RenamePreset changes a preset's name.
func (s *Service) RenamePreset(id, name string) (routine.Preset, error) {
	p, err := s.Preset(id)
	if err != nil {
		return routine.Preset{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return routine.Preset{}, fmt.Errorf("%w: preset name required", ErrInvalid)
	}
	p.Name = name
	s.presets.Update(p)
	s.touch()
	return p, nil
}

// ApplyPreset backs up the current state, replaces today's tasks with the
// preset's template and makes it active.
func (s *Service) ApplyPreset(id string) (routine.Preset, error) {
	p, err := s.Preset(id)
	if err != nil {
		return routine.Preset{}, err
	}
	s.CreateBackup()
	s.tasks.Replace(routine.ResetCompletion(p.Tasks))
	s.presets.SetActive(p.ID)
	s.touch()
	return p, nil
}

// DeletePreset removes a preset. The last preset cannot be deleted. When the
// active preset is deleted the first remaining one is applied right away,
// after a backup.
func (s *Service) DeletePreset(id string) error {
	if _, err := s.Preset(id); err != nil {
		return err
	}
	if s.presets.Len() <= 1 {
		return ErrLastPreset
	}
	if id != s.presets.ActiveID() {
		s.presets.Delete(id)
		s.touch()
		return nil
	}

	s.CreateBackup()
	s.presets.Delete(id)
	if next, ok := s.presets.Active(); ok {
		s.tasks.Replace(routine.ResetCompletion(next.Tasks))
	}
	s.touch()
	return nil
}

// ResolvePreset finds a preset by id or, failing that, by name ignoring case.
func (s *Service) ResolvePreset(ref string) (routine.Preset, error) {
	ref = strings.TrimSpace(ref)
	if p, ok := s.presets.Get(ref); ok {
		return p, nil
	}
	for _, p := range s.presets.All() {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return routine.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, ref)
}

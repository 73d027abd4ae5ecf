// Package mcp provides the Model Context Protocol server integration for
// dayplan.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// Service serializes access to the planner for concurrent tool calls. Every
// call starts from the persisted state and every successful mutation is
// saved before the call returns.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// NewService wraps an opened planner.
func NewService(a *app.Service) *Service {
	return &Service{app: a}
}

// Day is the today payload.
type Day struct {
	Date      string           `json:"date"`
	Now       string           `json:"now"`
	Report    app.ReportResult `json:"report"`
	Tasks     []routine.Task   `json:"tasks"`
	Preset    string           `json:"currentPresetId"`
	LastReset string           `json:"lastResetDate"`
}

// EventQuery narrows ListEvents.
type EventQuery struct {
	// Window such as "2w" or "10d"; blank keeps every event.
	Window string
	Search string
	TBD    bool
}

// read runs fn against freshly loaded state.
func (s *Service) read(ctx context.Context, fn func(*app.Service) (any, error)) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return fn(s.app)
}

// write runs fn against freshly loaded state and saves the result. A failed
// fn leaves nothing behind.
func (s *Service) write(ctx context.Context, fn func(*app.Service) (any, error)) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	v, err := fn(s.app)
	if err != nil {
		s.app.Discard()
		return nil, err
	}
	if err := s.app.Save(ctx); err != nil {
		s.app.Discard()
		return nil, err
	}
	return v, nil
}

func (s *Service) refresh(ctx context.Context) error {
	if s.app == nil {
		return errors.New("planner is not configured")
	}
	if s.app.Unsaved() {
		s.app.Discard()
	}
	_, err := s.app.Reload(ctx)
	return err
}

// CheckRollover runs the daily reset when the date has changed.
func (s *Service) CheckRollover(ctx context.Context) (*app.ResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return nil, errors.New("planner is not configured")
	}
	return s.app.CheckRollover(ctx)
}

// Today returns the day at a glance.
func (s *Service) Today(ctx context.Context) (Day, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		return Day{
			Date:      a.Today(),
			Now:       timeutil.FormatWallClock(a.Now()),
			Report:    a.Report(),
			Tasks:     a.Tasks(),
			Preset:    a.CurrentPresetID(),
			LastReset: a.LastResetDate(),
		}, nil
	})
	if err != nil {
		return Day{}, err
	}
	return v.(Day), nil
}

// AddTask appends a task to today's list.
func (s *Service) AddTask(ctx context.Context, in app.TaskInput) (routine.Task, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.AddTask(in)
	})
	return task(v, err)
}

// UpdateTask patches the task found by id or position.
func (s *Service) UpdateTask(ctx context.Context, ref string, patch app.TaskPatch) (routine.Task, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		t, err := a.ResolveTask(ref)
		if err != nil {
			return nil, err
		}
		return a.UpdateTask(t.ID, patch)
	})
	return task(v, err)
}

// ToggleTask flips the completion of the task found by id or position.
func (s *Service) ToggleTask(ctx context.Context, ref string) (routine.Task, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		t, err := a.ResolveTask(ref)
		if err != nil {
			return nil, err
		}
		return a.ToggleTask(t.ID)
	})
	return task(v, err)
}

// DeleteTask removes the task found by id or position.
func (s *Service) DeleteTask(ctx context.Context, ref string) (routine.Task, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		t, err := a.ResolveTask(ref)
		if err != nil {
			return nil, err
		}
		return t, a.DeleteTask(t.ID)
	})
	return task(v, err)
}

// MoveTask shifts a task one place up or down and returns the new order.
func (s *Service) MoveTask(ctx context.Context, ref, direction string) ([]routine.Task, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		t, err := a.ResolveTask(ref)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(direction) {
		case "up":
			err = a.MoveTaskUp(t.ID)
		case "down":
			err = a.MoveTaskDown(t.ID)
		default:
			err = fmt.Errorf("%w: direction must be up or down", app.ErrInvalid)
		}
		if err != nil {
			return nil, err
		}
		return a.Tasks(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]routine.Task), nil
}

// ListEvents returns scheduled events matching q, ordered by date.
func (s *Service) ListEvents(ctx context.Context, q EventQuery) ([]routine.ScheduledEvent, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		all := a.Events()
		if q.TBD {
			all = events.Categorize(all).TBD
		}
		f := events.Filter{Search: q.Search}
		if q.Window != "" {
			days, _, err := timeutil.ParseWindow(q.Window)
			if err != nil {
				return nil, err
			}
			w := events.Window(a.Today(), days)
			f.FromDate, f.ToDate = w.FromDate, w.ToDate
		}
		out := f.Apply(all)
		events.SortByDate(out)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]routine.ScheduledEvent), nil
}

// CategorizedEvents returns every event split by what is still undetermined.
func (s *Service) CategorizedEvents(ctx context.Context) (events.Categorized, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		return a.Categorized(), nil
	})
	if err != nil {
		return events.Categorized{}, err
	}
	return v.(events.Categorized), nil
}

// AddEvent schedules an event.
func (s *Service) AddEvent(ctx context.Context, in app.EventInput) (routine.ScheduledEvent, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.AddEvent(in)
	})
	return event(v, err)
}

// UpdateEvent patches an event.
func (s *Service) UpdateEvent(ctx context.Context, id string, patch app.EventPatch) (routine.ScheduledEvent, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.UpdateEvent(id, patch)
	})
	return event(v, err)
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, id string) (routine.ScheduledEvent, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		e, err := a.Event(id)
		if err != nil {
			return nil, err
		}
		return e, a.DeleteEvent(id)
	})
	return event(v, err)
}

// PresetList is the preset payload.
type PresetList struct {
	CurrentPresetID string           `json:"currentPresetId"`
	Presets         []routine.Preset `json:"presets"`
}

// Presets lists every preset.
func (s *Service) Presets(ctx context.Context) (PresetList, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		return presetList(a), nil
	})
	if err != nil {
		return PresetList{}, err
	}
	return v.(PresetList), nil
}

// CreatePreset saves today's tasks as a new preset.
func (s *Service) CreatePreset(ctx context.Context, name string) (routine.Preset, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.CreatePreset(name)
	})
	return preset(v, err)
}

// ApplyPreset makes the preset found by id or name active.
func (s *Service) ApplyPreset(ctx context.Context, ref string) (routine.Preset, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		p, err := a.ResolvePreset(ref)
		if err != nil {
			return nil, err
		}
		return a.ApplyPreset(p.ID)
	})
	return preset(v, err)
}

// RenamePreset renames the preset found by id or name.
func (s *Service) RenamePreset(ctx context.Context, ref, name string) (routine.Preset, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		p, err := a.ResolvePreset(ref)
		if err != nil {
			return nil, err
		}
		return a.RenamePreset(p.ID, name)
	})
	return preset(v, err)
}

// DeletePreset removes the preset found by id or name.
func (s *Service) DeletePreset(ctx context.Context, ref string) (PresetList, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		p, err := a.ResolvePreset(ref)
		if err != nil {
			return nil, err
		}
		if err := a.DeletePreset(p.ID); err != nil {
			return nil, err
		}
		return presetList(a), nil
	})
	if err != nil {
		return PresetList{}, err
	}
	return v.(PresetList), nil
}

// Backups lists the backup ledger.
func (s *Service) Backups(ctx context.Context) ([]routine.Backup, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		return a.Backups(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]routine.Backup), nil
}

// CreateBackup snapshots the current state.
func (s *Service) CreateBackup(ctx context.Context) (routine.Backup, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.CreateBackup(), nil
	})
	if err != nil {
		return routine.Backup{}, err
	}
	return v.(routine.Backup), nil
}

// RestoreBackup replaces the state with a backup's.
func (s *Service) RestoreBackup(ctx context.Context, id string) (routine.Backup, error) {
	v, err := s.write(ctx, func(a *app.Service) (any, error) {
		return a.RestoreBackup(id)
	})
	if err != nil {
		return routine.Backup{}, err
	}
	return v.(routine.Backup), nil
}

// Export returns the exported state document.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	v, err := s.read(ctx, func(a *app.Service) (any, error) {
		return a.Export()
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func presetList(a *app.Service) PresetList {
	return PresetList{CurrentPresetID: a.CurrentPresetID(), Presets: a.Presets()}
}

func task(v any, err error) (routine.Task, error) {
	if err != nil {
		return routine.Task{}, err
	}
	return v.(routine.Task), nil
}

func event(v any, err error) (routine.ScheduledEvent, error) {
	if err != nil {
		return routine.ScheduledEvent{}, err
	}
	return v.(routine.ScheduledEvent), nil
}

func preset(v any, err error) (routine.Preset, error) {
	if err != nil {
		return routine.Preset{}, err
	}
	return v.(routine.Preset), nil
}

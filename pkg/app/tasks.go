package app

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// TaskInput is what a user supplies to create a task.
type TaskInput struct {
	Title string
	Icon  string
	// Time accepts "7:00 AM", "7am" or "19:00".
	Time string
}

// TaskPatch changes the non-nil fields of a task.
type TaskPatch struct {
	Title     *string
	Icon      *string
	Time      *string
	Completed *bool
}

// Task returns the task with the given id.
func (s *Service) Task(id string) (routine.Task, error) {
	t, ok := s.tasks.Get(id)
	if !ok {
		return routine.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t, nil
}

// AddTask appends a task to today's list.
func (s *Service) AddTask(in TaskInput) (routine.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return routine.Task{}, fmt.Errorf("%w: task title required", ErrInvalid)
	}
	clock, err := taskClock(in.Time)
	if err != nil {
		return routine.Task{}, err
	}
	t := routine.Task{
		ID:    s.newID(func(id string) bool { _, ok := s.tasks.Get(id); return ok }),
		Title: title,
		Icon:  glyph.IconOr(strings.TrimSpace(in.Icon), glyph.DefaultTaskIcon),
		Time:  clock,
	}
	s.tasks.Add(t)
	s.touch()
	s.SyncActivePreset(s.tasks.All())
	return t, nil
}

// UpdateTask applies patch to the task with the given id.
func (s *Service) UpdateTask(id string, patch TaskPatch) (routine.Task, error) {
	t, err := s.Task(id)
	if err != nil {
		return routine.Task{}, err
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return routine.Task{}, fmt.Errorf("%w: task title required", ErrInvalid)
		}
		t.Title = title
	}
	if patch.Icon != nil {
		t.Icon = glyph.IconOr(strings.TrimSpace(*patch.Icon), glyph.DefaultTaskIcon)
	}
	if patch.Time != nil {
		clock, err := taskClock(*patch.Time)
		if err != nil {
			return routine.Task{}, err
		}
		t.Time = clock
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	s.tasks.Update(t)
	s.touch()
	s.SyncActivePreset(s.tasks.All())
	return t, nil
}

// DeleteTask removes a task from today's list.
func (s *Service) DeleteTask(id string) error {
	if !s.tasks.Delete(id) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	s.touch()
	s.SyncActivePreset(s.tasks.All())
	return nil
}

// MoveTask moves the task at index from to index to; the others keep their
// relative order.
func (s *Service) MoveTask(from, to int) error {
	if err := s.tasks.Move(from, to); err != nil {
		return err
	}
	if from != to {
		s.touch()
		s.SyncActivePreset(s.tasks.All())
	}
	return nil
}

// MoveTaskUp swaps a task with the one before it. The first task stays put.
func (s *Service) MoveTaskUp(id string) error {
	return s.shiftTask(id, -1)
}

// MoveTaskDown swaps a task with the one after it. The last task stays put.
func (s *Service) MoveTaskDown(id string) error {
	return s.shiftTask(id, 1)
}

func (s *Service) shiftTask(id string, delta int) error {
	i := s.tasks.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	to := i + delta
	if to < 0 || to >= s.tasks.Len() {
		return nil
	}
	return s.MoveTask(i, to)
}

// ToggleTask flips a task's completion. Completion is per day, so the preset
// is not synchronized.
func (s *Service) ToggleTask(id string) (routine.Task, error) {
	if _, ok := s.tasks.Toggle(id); !ok {
		return routine.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	s.touch()
	return s.Task(id)
}

// ResolveTask finds a task by id, or by 1-based position in the list when
// ref is a number that is not also an id.
func (s *Service) ResolveTask(ref string) (routine.Task, error) {
	ref = strings.TrimSpace(ref)
	if t, ok := s.tasks.Get(ref); ok {
		return t, nil
	}
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err == nil && fmt.Sprint(n) == ref {
		all := s.tasks.All()
		if n >= 1 && n <= len(all) {
			return all[n-1], nil
		}
	}
	return routine.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
}

// Progress reports how many of today's tasks are done.
func (s *Service) Progress() (done, total int) {
	all := s.tasks.All()
	return routine.CompletedCount(all), len(all)
}

// taskClock normalizes a task time. Blank means the task has no set time.
func taskClock(clock string) (string, error) {
	if strings.TrimSpace(clock) == "" {
		return "", nil
	}
	normal, err := timeutil.NormalizeClock(clock)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return normal, nil
}

package routine

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a reorder names a position outside the list.
var ErrIndexOutOfRange = errors.New("routine: index out of range")

// list is an ordered collection keyed by id. It is not safe for concurrent use.
type list[T any] struct {
	items []T
	id    func(T) string
}

func (l *list[T]) all() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *list[T]) index(id string) int {
	for i, it := range l.items {
		if l.id(it) == id {
			return i
		}
	}
	return -1
}

func (l *list[T]) get(id string) (T, bool) {
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

func (l *list[T]) add(it T) {
	l.items = append(l.items, it)
}

func (l *list[T]) update(it T) bool {
	i := l.index(l.id(it))
	if i < 0 {
		return false
	}
	l.items[i] = it
	return true
}

func (l *list[T]) remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// move removes the item at from and inserts it at to. Every other item keeps
// its relative order.
func (l *list[T]) move(from, to int) error {
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d with %d items", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	it := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]T{it}, l.items[to:]...)...)
	return nil
}

// TaskStore holds today's tasks in display order.
type TaskStore struct {
	l list[Task]
}

// NewTaskStore returns a store seeded with a copy of tasks.
func NewTaskStore(tasks []Task) *TaskStore {
	s := &TaskStore{l: list[Task]{id: func(t Task) string { return t.ID }}}
	s.Replace(tasks)
	return s
}

func (s *TaskStore) All() []Task { return s.l.all() }
func (s *TaskStore) Len() int { return len(s.l.items) }
func (s *TaskStore) Get(id string) (Task, bool) { return s.l.get(id) }
func (s *TaskStore) Index(id string) int { return s.l.index(id) }
func (s *TaskStore) Add(t Task) { s.l.add(t) }
func (s *TaskStore) Update(t Task) bool { return s.l.update(t) }
func (s *TaskStore) Delete(id string) bool { return s.l.remove(id) }
func (s *TaskStore) Move(from, to int) error { return s.l.move(from, to) }
func (s *TaskStore) Replace(tasks []Task) { s.l.items = CloneTasks(tasks) }

// Toggle flips the completion of the task and reports the new value.
func (s *TaskStore) Toggle(id string) (bool, bool) {
	i := s.l.index(id)
	if i < 0 {
		return false, false
	}
	s.l.items[i].Completed = !s.l.items[i].Completed
	return s.l.items[i].Completed, true
}

// EventStore holds scheduled events in creation order.
type EventStore struct {
	l list[ScheduledEvent]
}

// NewEventStore returns a store seeded with a copy of events.
func NewEventStore(events []ScheduledEvent) *EventStore {
	s := &EventStore{l: list[ScheduledEvent]{id: func(e ScheduledEvent) string { return e.ID }}}
	s.Replace(events)
	return s
}

func (s *EventStore) All() []ScheduledEvent { return s.l.all() }
func (s *EventStore) Len() int { return len(s.l.items) }
func (s *EventStore) Get(id string) (ScheduledEvent, bool) { return s.l.get(id) }
func (s *EventStore) Add(e ScheduledEvent) { s.l.add(e) }
func (s *EventStore) Update(e ScheduledEvent) bool { return s.l.update(e) }
func (s *EventStore) Delete(id string) bool { return s.l.remove(id) }
func (s *EventStore) Replace(events []ScheduledEvent) { s.l.items = CloneEvents(events) }

// RemoveWhere drops every event matching fn and returns the removed events in
// their original order.
func (s *EventStore) RemoveWhere(fn func(ScheduledEvent) bool) []ScheduledEvent {
	var removed []ScheduledEvent
	kept := s.l.items[:0]
	for _, e := range s.l.items {
		if fn(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	s.l.items = kept
	return removed
}

// PresetStore holds presets and tracks which one is active.
type PresetStore struct {
	l      list[Preset]
	active string
}

// NewPresetStore returns a store seeded with a copy of presets.
func NewPresetStore(presets []Preset, active string) *PresetStore {
	s := &PresetStore{l: list[Preset]{id: func(p Preset) string { return p.ID }}}
	s.Replace(presets, active)
	return s
}

func (s *PresetStore) All() []Preset { return ClonePresets(s.l.items) }
func (s *PresetStore) Len() int { return len(s.l.items) }
func (s *PresetStore) ActiveID() string { return s.active }

func (s *PresetStore) Get(id string) (Preset, bool) {
	p, ok := s.l.get(id)
	return p.Clone(), ok
}

// Active returns the active preset, if it still exists.
func (s *PresetStore) Active() (Preset, bool) {
	return s.Get(s.active)
}

func (s *PresetStore) Add(p Preset) { s.l.add(p.Clone()) }
func (s *PresetStore) Update(p Preset) bool { return s.l.update(p.Clone()) }

// SetActive marks id as the active preset without checking that it exists.
func (s *PresetStore) SetActive(id string) { s.active = id }

// Delete removes a preset. When the active preset is removed the first
// remaining preset becomes active, or none if the store is now empty.
func (s *PresetStore) Delete(id string) bool {
	if !s.l.remove(id) {
		return false
	}
	if id == s.active {
		s.active = ""
		if len(s.l.items) > 0 {
			s.active = s.l.items[0].ID
		}
	}
	return true
}

// Sync overwrites the active preset's tasks. It reports false when the active
// preset does not exist.
func (s *PresetStore) Sync(tasks []Task) bool {
	i := s.l.index(s.active)
	if i < 0 {
		return false
	}
	s.l.items[i].Tasks = CloneTasks(tasks)
	return true
}

func (s *PresetStore) Replace(presets []Preset, active string) {
	s.l.items = ClonePresets(presets)
	s.active = active
}

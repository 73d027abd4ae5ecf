package app

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// EventInput is what a user supplies to schedule an event. A blank Date or
// Time leaves that part to be determined.
type EventInput struct {
	Title string
	Icon  string
	Date  string
	Time  string
}

// EventPatch changes the non-nil fields of an event. Setting Date or Time to
// "" marks that part as to be determined.
type EventPatch struct {
	Title *string
	Icon  *string
	Date  *string
	Time  *string
}

// Event returns the scheduled event with the given id.
func (s *Service) Event(id string) (routine.ScheduledEvent, error) {
	e, ok := s.events.Get(id)
	if !ok {
		return routine.ScheduledEvent{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	return e, nil
}

// AddEvent schedules a new event. An event dated today becomes a task right
// away, the same way the daily reset converts it.
func (s *Service) AddEvent(in EventInput) (routine.ScheduledEvent, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return routine.ScheduledEvent{}, fmt.Errorf("%w: event title required", ErrInvalid)
	}
	sched, err := schedule(in.Date, in.Time)
	if err != nil {
		return routine.ScheduledEvent{}, err
	}
	e := routine.ScheduledEvent{
		ID:       s.newID(func(id string) bool { _, ok := s.events.Get(id); return ok }),
		Title:    title,
		Icon:     glyph.IconOr(strings.TrimSpace(in.Icon), glyph.DefaultEventIcon),
		Schedule: sched,
	}
	s.events.Add(e)
	s.promoteDue()
	s.touch()
	return e, nil
}

// UpdateEvent applies patch to the event with the given id. Moving the event
// to today turns it into a task.
func (s *Service) UpdateEvent(id string, patch EventPatch) (routine.ScheduledEvent, error) {
	e, err := s.Event(id)
	if err != nil {
		return routine.ScheduledEvent{}, err
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return routine.ScheduledEvent{}, fmt.Errorf("%w: event title required", ErrInvalid)
		}
		e.Title = title
	}
	if patch.Icon != nil {
		e.Icon = glyph.IconOr(strings.TrimSpace(*patch.Icon), glyph.DefaultEventIcon)
	}
	date, clock := e.Date(), e.Time()
	if patch.Date != nil {
		date = *patch.Date
	}
	if patch.Time != nil {
		clock = *patch.Time
	}
	sched, err := schedule(date, clock)
	if err != nil {
		return routine.ScheduledEvent{}, err
	}
	e.Schedule = sched
	s.events.Update(e)
	s.promoteDue()
	s.touch()
	return e, nil
}

// DeleteEvent removes a scheduled event.
func (s *Service) DeleteEvent(id string) error {
	if !s.events.Delete(id) {
		return fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	s.touch()
	return nil
}

// Categorized buckets the scheduled events.
func (s *Service) Categorized() events.Categorized {
	return events.Categorize(s.events.All())
}

// EventCounts summarizes the scheduled events relative to today.
func (s *Service) EventCounts() events.Counts {
	return events.Count(s.events.All(), s.Today())
}

// Upcoming lists dated events from today on, earliest first.
func (s *Service) Upcoming() []routine.ScheduledEvent {
	return events.Upcoming(s.events.All(), s.Today())
}

func schedule(date, clock string) (routine.Schedule, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date != "" && !timeutil.ValidDateKey(date) {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalid, date)
	}
	if clock != "" {
		normal, err := timeutil.NormalizeClock(clock)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		clock = normal
	}
	return routine.NewSchedule(date, clock), nil
}

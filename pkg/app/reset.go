package app

import (
	"context"

	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/routine"
)

// ResetResult describes one daily reset.
type ResetResult struct {
	// Date is the date key the reset settled on.
	Date string `json:"date"`
	// Seeded counts tasks copied from the template.
	Seeded int `json:"seeded"`
	// Converted lists the events that became tasks.
	Converted []routine.ScheduledEvent `json:"converted"`
	// FallbackTemplate is set when the active preset was missing and the
	// built-in routine was used instead.
	FallbackTemplate bool `json:"fallbackTemplate"`
}

// ResetDay builds the state for a new day: the active preset's tasks with
// completion cleared, followed by a task for every event dated today. Those
// events leave the event list; undated events stay. fallback is used when
// the active preset does not exist.
func ResetDay(st routine.State, today string, fallback []routine.Task) (routine.State, ResetResult) {
	res := ResetResult{Date: today, Converted: []routine.ScheduledEvent{}}

	template := fallback
	if p, ok := st.ActivePreset(); ok {
		template = p.Tasks
	} else {
		res.FallbackTemplate = true
	}
	tasks := routine.ResetCompletion(template)
	res.Seeded = len(tasks)

	pending := routine.NewEventStore(st.ScheduledEvents)
	due := pending.RemoveWhere(dueOn(today))
	for _, e := range due {
		tasks = append(tasks, e.AsTask())
	}
	res.Converted = append(res.Converted, due...)
	remaining := pending.All()

	next := st.Clone()
	next.Tasks = tasks
	next.ScheduledEvents = remaining
	return next, res
}

func dueOn(today string) func(routine.ScheduledEvent) bool {
	return func(e routine.ScheduledEvent) bool { return events.IsToday(e, today) }
}

// promoteDue moves events dated on the last reset day into the task list.
// Edits made after that day's reset would otherwise never be converted.
func (s *Service) promoteDue() []routine.ScheduledEvent {
	if s.lastResetDate == "" {
		return nil
	}
	due := s.events.RemoveWhere(dueOn(s.lastResetDate))
	for _, e := range due {
		s.tasks.Add(e.AsTask())
	}
	if len(due) > 0 {
		s.logger.Debug("converted events dated today", "count", len(due))
	}
	return due
}

// CheckRollover runs the daily reset when today's date key differs from the
// last reset date. It fires at most once per date key, so calling it on
// every clock tick is cheap. The reset is applied to the saved state and
// written straight to persistence; unsaved edits in the buffer are reset the
// same way but stay unsaved.
func (s *Service) CheckRollover(ctx context.Context) (*ResetResult, error) {
	today := s.Today()
	if s.lastResetDate == today {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved, res := ResetDay(s.saved.state, today, DefaultTasks())
	if err := s.put(KeyTasks, saved.Tasks); err != nil {
		return nil, err
	}
	if err := s.put(KeyEvents, saved.ScheduledEvents); err != nil {
		return nil, err
	}
	if err := s.put(KeyLastReset, today); err != nil {
		return nil, err
	}
	s.saved = snapshot{state: saved, lastResetDate: today}

	if s.unsaved {
		buf, bufRes := ResetDay(s.State(), today, DefaultTasks())
		s.setState(buf)
		res = bufRes
	} else {
		s.setState(saved)
	}
	s.lastResetDate = today

	s.logger.Info("daily reset",
		"date", res.Date,
		"seeded", res.Seeded,
		"converted", len(res.Converted),
		"fallback", res.FallbackTemplate)
	return &res, nil
}

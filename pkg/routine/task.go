// Package routine defines the planner's data model: daily tasks, scheduled
// events, presets and the ordered containers that hold them.
package routine

import "tableflip.dev/dayplan/pkg/timeutil"

// EventTaskPrefix prefixes the id of a task materialized from a scheduled event.
const EventTaskPrefix = "event-"

// Task is a single time-slotted item in today's list.
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Icon             string `json:"icon"`
	Time             string `json:"time"`
	Completed        bool   `json:"completed"`
	IsScheduledEvent bool   `json:"isScheduledEvent,omitempty"`
}

// Period reports which part of the day the task falls in.
func (t Task) Period() timeutil.Period {
	return timeutil.PeriodOf(t.Time)
}

// CloneTasks copies a task slice. A nil input yields an empty, non-nil slice
// so that it serializes as [].
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// ResetCompletion returns a copy of tasks with every completion cleared.
func ResetCompletion(tasks []Task) []Task {
	out := CloneTasks(tasks)
	for i := range out {
		out[i].Completed = false
	}
	return out
}

// CompletedCount counts completed tasks.
func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// ByPeriod groups tasks by day period, keeping list order within each group.
func ByPeriod(tasks []Task) map[timeutil.Period][]Task {
	grouped := make(map[timeutil.Period][]Task, 4)
	for _, t := range tasks {
		p := t.Period()
		grouped[p] = append(grouped[p], t)
	}
	return grouped
}

// InPeriodOrder lists the tasks period by period, keeping list order within
// each period.
func InPeriodOrder(tasks []Task) []Task {
	grouped := ByPeriod(tasks)
	out := make([]Task, 0, len(tasks))
	for _, p := range timeutil.Periods() {
		out = append(out, grouped[p]...)
	}
	return out
}

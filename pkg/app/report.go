package app

import (
	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// ReportSection groups today's tasks for one part of the day.
type ReportSection struct {
	Period    timeutil.Period `json:"-"`
	Name      string          `json:"period"`
	Tasks     []routine.Task  `json:"tasks"`
	Completed int             `json:"completed"`
}

// ReportResult is the day at a glance.
type ReportResult struct {
	Date      string          `json:"date"`
	Preset    string          `json:"preset"`
	Sections  []ReportSection `json:"sections"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
	// Events are the scheduled events dated today that are still waiting in
	// the event list.
	Events  []routine.ScheduledEvent `json:"events"`
	Counts  events.Counts            `json:"counts"`
	Unsaved bool                     `json:"unsaved"`
}

// Report summarizes today: tasks by period, each section in list order,
// plus event counts.
func (s *Service) Report() ReportResult {
	tasks := s.tasks.All()
	grouped := routine.ByPeriod(tasks)

	res := ReportResult{
		Date:      s.Today(),
		Completed: routine.CompletedCount(tasks),
		Total:     len(tasks),
		Events:    events.ForDate(s.events.All(), s.Today(), true),
		Counts:    s.EventCounts(),
		Unsaved:   s.unsaved,
	}
	if p, ok := s.presets.Active(); ok {
		res.Preset = p.Name
	}
	for _, period := range timeutil.Periods() {
		items := grouped[period]
		if len(items) == 0 {
			continue
		}
		res.Sections = append(res.Sections, ReportSection{
			Period:    period,
			Name:      period.String(),
			Tasks:     items,
			Completed: routine.CompletedCount(items),
		})
	}
	return res
}

// Package add provides the runners that add tasks and scheduled events.
package add

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Task adds a task to today's list and saves it.
type Task struct {
	Service *app.Service
	Input   app.TaskInput
	Output  printers.Format
}

func (n *Task) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	t, err := n.Service.AddTask(n.Input)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, t, func() {
		tasks := n.Service.Tasks()
		pp := printers.PrettyPrint{ShowID: true}
		pp.TitleWithCount("Today", len(tasks), "task")
		pp.Tasks(tasks...)
	})
}

// Event schedules an event and saves it. A date or time left blank is to be
// determined.
type Event struct {
	Service *app.Service
	Input   app.EventInput
	Output  printers.Format
}

func (n *Event) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	e, err := n.Service.AddEvent(n.Input)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, e, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.Title("Scheduled")
		pp.Events(n.Service.Today(), e)
		if e.Date() == n.Service.Today() {
			_, _ = color.New(color.Faint).Fprintln(color.Output, "Dated today, so it is on today's task list now.")
		}
	})
}

// Package task provides runners that edit, delete and reorder today's tasks.
package task

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/routine"
)

// Edit patches a task found by id or list position.
type Edit struct {
	Service *app.Service
	Ref     string
	Patch   app.TaskPatch
	Output  printers.Format
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	t, err := n.Service.ResolveTask(n.Ref)
	if err != nil {
		return err
	}
	if t, err = n.Service.UpdateTask(t.ID, n.Patch); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, t, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.Tasks(t)
	})
}

// Delete removes a task found by id or list position.
type Delete struct {
	Service *app.Service
	Ref     string
	Output  printers.Format
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	t, err := n.Service.ResolveTask(n.Ref)
	if err != nil {
		return err
	}
	if err := n.Service.DeleteTask(t.ID); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, t, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.Title("Deleted")
		pp.Tasks(t)
	})
}

// Move reorders a task. Up and Down swap with a neighbour; otherwise the task
// moves to the 1-based position To.
type Move struct {
	Service *app.Service
	Ref     string
	Up      bool
	Down    bool
	To      int
	Output  printers.Format
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	t, err := n.Service.ResolveTask(n.Ref)
	if err != nil {
		return err
	}
	switch {
	case n.Up && n.Down:
		return errors.New("pick one of up or down")
	case n.Up:
		err = n.Service.MoveTaskUp(t.ID)
	case n.Down:
		err = n.Service.MoveTaskDown(t.ID)
	default:
		err = n.Service.MoveTask(index(n.Service.Tasks(), t.ID), n.To-1)
	}
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	tasks := n.Service.Tasks()
	return printers.Print(color.Output, n.Output, tasks, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.TitleWithCount("Today", len(tasks), "task")
		pp.Tasks(tasks...)
	})
}

func index(tasks []routine.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

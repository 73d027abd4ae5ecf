// Package event provides runners that change or remove scheduled events.
package event

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Edit patches a scheduled event.
type Edit struct {
	Service *app.Service
	ID      string
	Patch   app.EventPatch
	Output  printers.Format
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	e, err := n.Service.UpdateEvent(n.ID, n.Patch)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, e, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.Events(n.Service.Today(), e)
	})
}

// Delete removes a scheduled event.
type Delete struct {
	Service *app.Service
	ID      string
	Output  printers.Format
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	e, err := n.Service.Event(n.ID)
	if err != nil {
		return err
	}
	if err := n.Service.DeleteEvent(n.ID); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, e, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.Title("Deleted")
		pp.Events(n.Service.Today(), e)
	})
}

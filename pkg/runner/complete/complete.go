// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Complete toggles the completion of a task, found by id or list position.
type Complete struct {
	Service *app.Service
	Ref     string
	Output  printers.Format
}

// Do flips the task and saves the day.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	t, err := n.Service.ResolveTask(n.Ref)
	if err != nil {
		return err
	}
	t, err = n.Service.ToggleTask(t.ID)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, t, func() {
		done, total := n.Service.Progress()
		pp := printers.PrettyPrint{ShowID: true}
		_, _ = fmt.Fprintln(color.Output, "")
		pp.Title(fmt.Sprintf("Today - %d of %d done", done, total))
		pp.Tasks(n.Service.Tasks()...)
	})
}

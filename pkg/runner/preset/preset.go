// Package preset provides runners for managing routine presets.
package preset

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/routine"
)

// Presets is the structured form of the preset list.
type Presets struct {
	CurrentPresetID string           `json:"currentPresetId"`
	Presets         []routine.Preset `json:"presets"`
}

// List prints every preset, marking the active one.
type List struct {
	Service *app.Service
	Output  printers.Format
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list presets, no service")
	}
	return n.print()
}

func (n *List) print() error {
	out := Presets{CurrentPresetID: n.Service.CurrentPresetID(), Presets: n.Service.Presets()}
	return printers.Print(color.Output, n.Output, out, func() {
		pp := printers.PrettyPrint{}
		pp.Presets(out.CurrentPresetID, out.Presets...)
	})
}

// Create saves today's tasks as a new preset. It does not become active.
type Create struct {
	Service *app.Service
	Name    string
	Output  printers.Format
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create preset, no service")
	}
	if _, err := n.Service.CreatePreset(n.Name); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return (&List{Service: n.Service, Output: n.Output}).print()
}

// Apply replaces today's tasks with a preset's tasks, after taking a backup.
type Apply struct {
	Service *app.Service
	// Ref is a preset id or name.
	Ref    string
	Output printers.Format
}

func (n *Apply) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not apply preset, no service")
	}
	p, err := n.Service.ResolvePreset(n.Ref)
	if err != nil {
		return err
	}
	if _, err := n.Service.ApplyPreset(p.ID); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	tasks := n.Service.Tasks()
	return printers.Print(color.Output, n.Output, tasks, func() {
		pp := printers.PrettyPrint{ShowID: true}
		pp.TitleWithCount(p.Name, len(tasks), "task")
		pp.Tasks(tasks...)
	})
}

// Rename changes a preset's name.
type Rename struct {
	Service *app.Service
	Ref     string
	Name    string
	Output  printers.Format
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename preset, no service")
	}
	p, err := n.Service.ResolvePreset(n.Ref)
	if err != nil {
		return err
	}
	if _, err := n.Service.RenamePreset(p.ID, n.Name); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return (&List{Service: n.Service, Output: n.Output}).print()
}

// Delete removes a preset. The last preset can not be deleted; deleting the
// active one applies the first remaining preset.
type Delete struct {
	Service *app.Service
	Ref     string
	Output  printers.Format
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete preset, no service")
	}
	p, err := n.Service.ResolvePreset(n.Ref)
	if err != nil {
		return err
	}
	if err := n.Service.DeletePreset(p.ID); err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return (&List{Service: n.Service, Output: n.Output}).print()
}

// Package backup provides runners for the backup ledger.
package backup

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// List prints the backups, oldest first.
type List struct {
	Service *app.Service
	Output  printers.Format
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list backups, no service")
	}
	backups := n.Service.Backups()
	return printers.Print(color.Output, n.Output, backups, func() {
		pp := printers.PrettyPrint{}
		pp.Backups(backups...)
	})
}

// Create snapshots the current state into the ledger.
type Create struct {
	Service *app.Service
	Output  printers.Format
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create backup, no service")
	}
	b := n.Service.CreateBackup()
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, b, func() {
		pp := printers.PrettyPrint{}
		pp.Backups(b)
	})
}

// Restore replaces the state with a backup's state.
type Restore struct {
	Service *app.Service
	ID      string
	Output  printers.Format
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not restore backup, no service")
	}
	b, err := n.Service.RestoreBackup(n.ID)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}
	return printers.Print(color.Output, n.Output, b, func() {
		pp := printers.PrettyPrint{}
		pp.Title("Restored")
		pp.Backups(b)
		pp.Day(n.Service.Now(), n.Service.Report())
	})
}

// Package transfer provides the export and import runners.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatICS  = "ics"
)

// Export writes the planner state as JSON, or the dated events as an
// iCalendar file.
type Export struct {
	Service *app.Service
	Format  string
	// Path is the destination; blank or "-" writes to Out.
	Path string
	// Out defaults to stdout.
	Out io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	var data []byte
	switch strings.ToLower(n.Format) {
	case "", FormatJSON:
		b, err := n.Service.Export()
		if err != nil {
			return err
		}
		data = append(b, '\n')
	case FormatICS:
		data = []byte(n.Service.ExportICS())
	default:
		return fmt.Errorf("unknown export format %q, expected json or ics", n.Format)
	}

	if n.Path == "" || n.Path == "-" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(color.Output, "Exported to %s\n", n.Path)
	return nil
}

// Summary is the structured result of an import.
type Summary struct {
	Tasks           int    `json:"tasks"`
	ScheduledEvents int    `json:"scheduledEvents"`
	Presets         int    `json:"presets"`
	CurrentPresetID string `json:"currentPresetId"`
	BackupID        string `json:"backupId"`
}

// Import replaces the planner state with an exported document. A backup of
// the previous state is taken first.
type Import struct {
	Service *app.Service
	// Path is the source; "-" reads In.
	Path string
	// In defaults to stdin.
	In     io.Reader
	Output printers.Format
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	var (
		data []byte
		err  error
	)
	if n.Path == "" || n.Path == "-" {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(n.Path)
	}
	if err != nil {
		return err
	}

	st, err := n.Service.Import(data)
	if err != nil {
		return err
	}
	if err := n.Service.Save(ctx); err != nil {
		return err
	}

	sum := Summary{
		Tasks:           len(st.Tasks),
		ScheduledEvents: len(st.ScheduledEvents),
		Presets:         len(st.Presets),
		CurrentPresetID: st.CurrentPresetID,
	}
	if backups := n.Service.Backups(); len(backups) > 0 {
		sum.BackupID = backups[len(backups)-1].ID
	}
	return printers.Print(color.Output, n.Output, sum, func() {
		_, _ = fmt.Fprintf(color.Output, "Imported %d tasks, %d events and %d presets.\n", sum.Tasks, sum.ScheduledEvents, sum.Presets)
		if sum.BackupID != "" {
			_, _ = color.New(color.Faint).Fprintf(color.Output, "Previous state saved as backup %s.\n", sum.BackupID)
		}
	})
}

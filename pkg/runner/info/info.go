// Package info provides the runner that describes where the planner keeps
// its data.
package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
)

// Info prints the effective configuration and the stored keys.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Output      printers.Format
}

// Details is the structured form of Info.
type Details struct {
	ConfigPathEnv  string   `json:"configPathEnv,omitempty"`
	Path           string   `json:"path"`
	LogLevel       string   `json:"logLevel"`
	SyncEventTasks bool     `json:"syncEventTasks"`
	BackupLimit    int      `json:"backupLimit"`
	Keys           []string `json:"keys"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	d := Details{
		ConfigPathEnv:  os.Getenv("DAYPLAN_CONFIG_PATH"),
		Path:           n.Config.BasePath(),
		LogLevel:       n.Config.LogLevel(),
		SyncEventTasks: n.Config.SyncEventTasks(),
		BackupLimit:    n.Config.BackupLimit(),
		Keys:           n.Persistence.Keys(ctx),
	}
	if d.Keys == nil {
		d.Keys = []string{}
	}

	return printers.Print(color.Output, n.Output, d, func() {
		if d.ConfigPathEnv != "" {
			_, _ = fmt.Fprintln(color.Output, "DAYPLAN_CONFIG_PATH found on env, using", d.ConfigPathEnv)
		} else {
			_, _ = fmt.Fprintln(color.Output, "DAYPLAN_CONFIG_PATH env var not set")
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("path:", d.Path)
		tbl.AddRow("log-level:", d.LogLevel)
		tbl.AddRow("sync-event-tasks:", d.SyncEventTasks)
		tbl.AddRow("backup-limit:", d.BackupLimit)
		_, _ = fmt.Fprintln(color.Output, tbl)

		_, _ = fmt.Fprintln(color.Output, "Keys:")
		for _, k := range d.Keys {
			_, _ = fmt.Fprintf(color.Output, "  %s\n", k)
		}
		if len(d.Keys) == 0 {
			_, _ = fmt.Fprintf(color.Output, "  %s\n", "no keys")
		}
	})
}

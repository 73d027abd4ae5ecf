package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "backup",
		Aliases: []string{"backups"},
		Short:   "Snapshot and restore tasks, events and presets",
		Long: `Backups are taken automatically before a preset is applied or deleted and
before an import. Only the most recent ones are kept (backup-limit).`,
		Example: `
dayplan backup list
dayplan backup create
dayplan backup restore 6f1c2a9e-...
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "list",
		Aliases:   []string{"ls"},
		Short:     "List backups, oldest first",
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				return &backup.List{Service: s.Service, Output: format}, nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "create",
		Short:     "Take a backup now",
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				return &backup.Create{Service: s.Service, Output: format}, nil
			})
		},
	})
	addBackupRestore(cmd)

	topLevel.AddCommand(cmd)
}

func addBackupRestore(topLevel *cobra.Command) {
	var id string
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Replace tasks, events and presets with a backup",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a backup id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				b, err := s.Service.Backup(id)
				if err != nil {
					return nil, err
				}
				if err := co.Confirm("Replace everything with the backup from " + time.UnixMilli(b.Timestamp).Format("Jan 2 3:04 PM")); err != nil {
					return nil, err
				}
				return &backup.Restore{Service: s.Service, ID: id, Output: format}, nil
			})
		},
	}
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

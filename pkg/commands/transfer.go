package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	var (
		format string
		path   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks, events and presets as JSON, or dated events as iCalendar",
		Example: `
dayplan export > dayplan.json
dayplan export --file dayplan.json
dayplan export --format ics --file events.ics
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, _ printers.Format) (doer, error) {
				return &transfer.Export{
					Service: s.Service,
					Format:  format,
					Path:    path,
					Out:     cmd.OutOrStdout(),
				}, nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", transfer.FormatJSON, "Export format. One of 'json' or 'ics'.")
	cmd.Flags().StringVarP(&path, "file", "f", "", "Write to this file instead of stdout.")
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	var path string
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace tasks, events and presets with an export",
		Long: `Import reads a file written by 'dayplan export' ("-" reads stdin). The
current state is backed up first; a file that does not parse changes nothing.`,
		Example: `
dayplan import dayplan.json
cat dayplan.json | dayplan import - --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a file, or - for stdin")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				if path == "-" && !co.Yes {
					return nil, errors.New("reading stdin requires --yes")
				}
				if err := co.Confirm("Replace everything with " + path); err != nil {
					return nil, err
				}
				return &transfer.Import{
					Service: s.Service,
					Path:    path,
					In:      cmd.InOrStdin(),
					Output:  format,
				}, nil
			})
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

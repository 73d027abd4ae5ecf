package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OnOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show month calendars with the days that have events",
		Example: `
dayplan calendar
dayplan calendar --on 2024-12-1 --months 3
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn(s.Service.Now())
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				Service: s.Service,
				On:      on,
				Months:  months,
				ShowID:  ido.ShowID,
				Output:  format,
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOnArgs(cmd, oo)
	cmd.Flags().IntVarP(&months, "months", "m", 1, "Number of months to show.")
	topLevel.AddCommand(cmd)
}

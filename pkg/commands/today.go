package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	period := ""

	cmd := &cobra.Command{
		Use:     "today",
		Aliases: []string{"day", "ls"},
		Short:   "Show today's tasks by part of the day, with progress and today's events.",
		Example: `
dayplan today
dayplan today -k -o yaml
dayplan today --period evening
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
			t := today.Today{
				Service: s.Service,
				ShowID:  ido.ShowID,
				Output:  format,
				Period:  period,
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, ido)
	cmd.Flags().StringVarP(&period, "period", "p", "",
		"Only show one part of the day: morning, afternoon, evening or anytime.")
	topLevel.AddCommand(cmd)
}

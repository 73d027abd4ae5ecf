package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or an event",
		Example: `
dayplan add task stretch --at 7am
dayplan add event dentist --on 6/3 --at 2pm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddEvent(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	item := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task to today's list",
		Example: `
dayplan add task feed the cats --at 7:45am --icon 🐱
dayplan add task call mom
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			item.Title = strings.Join(args, " ")
			return nil
		},
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
			a := add.Task{
				Service: s.Service,
				Input:   app.TaskInput{Title: item.Title, Icon: item.Icon, Time: item.Time},
				Output:  format,
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, item)
	topLevel.AddCommand(cmd)
}

func addAddEvent(topLevel *cobra.Command) {
	item := &options.ItemOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Schedule an event; leave out --on or --at to decide later",
		Example: `
dayplan add event dentist --on 2024-6-3 --at 2pm
dayplan add event birthday party --on 7/4
dayplan add event call the plumber
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an event")
			}
			item.Title = strings.Join(args, " ")
			return nil
		},
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
			a := add.Event{
				Service: s.Service,
				Input:   app.EventInput{Title: item.Title, Icon: item.Icon, Date: on, Time: item.Time},
				Output:  format,
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddItemArgs(cmd, item)
	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

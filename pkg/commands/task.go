package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/complete"
	"tableflip.dev/dayplan/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Change today's tasks",
		Long: `Tasks are referenced by id (see --show-id) or by their 1-based position
in today's list.`,
		Example: `
dayplan task edit 3 --at 8am
dayplan task move 5 --up
dayplan task complete 1
dayplan task delete 1700000000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskEdit(cmd)
	addTaskDelete(cmd)
	addTaskMove(cmd)
	cmd.AddCommand(newCompleteCmd("complete"))

	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command) {
	topLevel.AddCommand(newCompleteCmd("done"))
}

func requireRef(what string, ref *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if len(args) != 1 {
			return errors.New("requires a " + what + " id or position")
		}
		*ref = args[0]
		return nil
	}
}

func newCompleteCmd(use string) *cobra.Command {
	var ref string
	return &cobra.Command{
		Use:   use + " <task>",
		Short: "Toggle whether a task is done",
		Example: `
dayplan ` + use + ` 2
`,
		Args: requireRef("task", &ref),
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
			c := complete.Complete{
				Service: s.Service,
				Ref:     ref,
				Output:  format,
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
}

func addTaskEdit(topLevel *cobra.Command) {
	var ref string
	item := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Change a task's title, time or icon",
		Example: `
dayplan task edit 2 --title "Brush teeth and floss"
dayplan task edit 4 --at ""
`,
		Args: requireRef("task", &ref),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			patch := app.TaskPatch{
				Title: options.Changed(cmd, "title", &item.Title),
				Icon:  options.Changed(cmd, "icon", &item.Icon),
				Time:  options.Changed(cmd, "at", &item.Time),
			}
			if patch.Title == nil && patch.Icon == nil && patch.Time == nil {
				return errors.New("nothing to change, use --title, --at or --icon")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			e := task.Edit{
				Service: s.Service,
				Ref:     ref,
				Patch:   patch,
				Output:  format,
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, item)
	topLevel.AddCommand(cmd)
}

func addTaskDelete(topLevel *cobra.Command) {
	var ref string
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task>",
		Aliases: []string{"rm"},
		Short:   "Remove a task from today's list",
		Args:    requireRef("task", &ref),
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
			t, err := s.Service.ResolveTask(ref)
			if err != nil {
				return output.HandleError(err)
			}
			if err := co.Confirm("Delete " + strconv.Quote(t.Title)); err != nil {
				return output.HandleError(err)
			}
			d := task.Delete{
				Service: s.Service,
				Ref:     t.ID,
				Output:  format,
			}
			err = d.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addTaskMove(topLevel *cobra.Command) {
	var (
		ref      string
		up, down bool
		to       int
	)

	cmd := &cobra.Command{
		Use:   "move <task>",
		Short: "Reorder a task",
		Example: `
dayplan task move 3 --up
dayplan task move 3 --to 1
`,
		Args: requireRef("task", &ref),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			if !up && !down && to < 1 {
				return errors.New("use --up, --down or --to")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			m := task.Move{
				Service: s.Service,
				Ref:     ref,
				Up:      up,
				Down:    down,
				To:      to,
				Output:  format,
			}
			err = m.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "Move one place earlier.")
	cmd.Flags().BoolVar(&down, "down", false, "Move one place later.")
	cmd.Flags().IntVar(&to, "to", 0, "Move to this 1-based position.")
	topLevel.AddCommand(cmd)
}

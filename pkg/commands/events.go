package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/event"
	"tableflip.dev/dayplan/pkg/runner/events"
)

func addEvents(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	eo := &options.EventListOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List scheduled events",
		Example: `
dayplan events
dayplan events --within 2w
dayplan events --tbd --group-by category
dayplan events --group-by created
dayplan events --counts -o json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			groupBy := events.GroupBy(eo.GroupBy)
			switch groupBy {
			case events.GroupByDate, events.GroupByCategory, events.GroupByCreated:
			default:
				return errors.New("--group-by must be date, category or created")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			l := events.List{
				Service: s.Service,
				ShowID:  ido.ShowID,
				Output:  format,
				Window:  eo.Window,
				Search:  eo.Search,
				TBD:     eo.TBD,
				GroupBy: groupBy,
				Counts:  eo.Counts,
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddEventListArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Change scheduled events",
		Long:  "Events are referenced by id, see 'dayplan events --show-id'.",
		Example: `
dayplan event edit 1717236000000 --on 6/4 --at 3pm
dayplan event edit 1717236000000 --time-tbd
dayplan event delete 1717236000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventEdit(cmd)
	addEventDelete(cmd)

	topLevel.AddCommand(cmd)
}

func requireID(id *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if len(args) != 1 {
			return errors.New("requires an event id")
		}
		*id = args[0]
		return nil
	}
}

func addEventEdit(topLevel *cobra.Command) {
	var id string
	item := &options.ItemOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an event's title, date, time or icon",
		Args:  requireID(&id),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			if oo.TBD && oo.OnString != "" {
				return errors.New("pick one of --on or --date-tbd")
			}
			if item.TimeTBD && cmd.Flags().Changed("at") {
				return errors.New("pick one of --at or --time-tbd")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			date, err := oo.Patch(s.Service.Now())
			if err != nil {
				return output.HandleError(err)
			}
			patch := app.EventPatch{
				Title: options.Changed(cmd, "title", &item.Title),
				Icon:  options.Changed(cmd, "icon", &item.Icon),
				Date:  date,
				Time:  options.Changed(cmd, "at", &item.Time),
			}
			if item.TimeTBD {
				blank := ""
				patch.Time = &blank
			}
			if patch.Title == nil && patch.Icon == nil && patch.Date == nil && patch.Time == nil {
				return errors.New("nothing to change, use --title, --on, --at, --icon, --date-tbd or --time-tbd")
			}
			e := event.Edit{
				Service: s.Service,
				ID:      id,
				Patch:   patch,
				Output:  format,
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, item)
	options.AddTimeTBDArg(cmd, item)
	options.AddOnArgs(cmd, oo)
	options.AddDateTBDArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEventDelete(topLevel *cobra.Command) {
	var id string
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a scheduled event",
		Args:    requireID(&id),
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
			e, err := s.Service.Event(id)
			if err != nil {
				return output.HandleError(err)
			}
			if err := co.Confirm("Delete " + strconv.Quote(e.Title)); err != nil {
				return output.HandleError(err)
			}
			d := event.Delete{
				Service: s.Service,
				ID:      id,
				Output:  format,
			}
			err = d.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

package options

import (
	"github.com/spf13/cobra"
)

// EventListOptions
type EventListOptions struct {
	Window  string
	Search  string
	TBD     bool
	GroupBy string
	Counts  bool
}

func AddEventListArgs(cmd *cobra.Command, o *EventListOptions) {
	cmd.Flags().StringVarP(&o.Window, "within", "w", "",
		`Only dated events in the next window, example: --within=2w or --within=10d.`)
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only events whose title or time contains the text.")
	cmd.Flags().BoolVar(&o.TBD, "tbd", false,
		"Only events with a date or time still to be determined.")
	cmd.Flags().StringVar(&o.GroupBy, "group-by", "date",
		"Arrange events by 'date', 'category' or 'created' (newest first).")
	cmd.Flags().BoolVar(&o.Counts, "counts", false,
		"Print event statistics.")
}

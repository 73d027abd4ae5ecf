package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions are the shared fields of tasks and events.
type ItemOptions struct {
	Title string
	Icon  string
	Time  string
	// TimeTBD clears the time of an event.
	TimeTBD bool
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Time, "at", "t", "",
		`Time of day, example: --at="7:30 AM" or --at=7pm.`)
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Emoji shown next to the title.")
}

// AddEditArgs registers the flags of an edit; unset flags keep the old value.
func AddEditArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"New title.")
	AddItemArgs(cmd, o)
}

func AddTimeTBDArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().BoolVar(&o.TimeTBD, "time-tbd", false,
		"Mark the time as to be determined.")
}

// Changed returns a pointer to the flag's value when the flag was set.
func Changed(cmd *cobra.Command, name string, v *string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	s := *v
	return &s
}

package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

// AddOutputArg registers -o on cmd and every subcommand.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().StringVarP(&po.Output, "output", "o", string(printers.FormatPretty),
		"Output format. One of 'pretty', 'json' or 'yaml'.")
}

// Format parses the requested output format.
func (o *OutputOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}

// Structured reports whether the output is meant for machines.
func (o *OutputOptions) Structured() bool {
	f, err := o.Format()
	return err == nil && f != printers.FormatPretty
}

func (o *OutputOptions) HandleError(err error) error {
	if o.Structured() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

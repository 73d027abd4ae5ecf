package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
	TBD      bool
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-6-28", --on="6/28", --on=today or --on=tomorrow.`)
}

// AddDateTBDArg lets an edit clear the date.
func AddDateTBDArg(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().BoolVar(&o.TBD, "date-tbd", false,
		"Mark the date as to be determined.")
}

// GetOn returns the date key for --on relative to now, or "" when unset.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(o.OnString))
	switch raw {
	case "":
		return "", nil
	case "today":
		return timeutil.DateKey(now), nil
	case "tomorrow":
		return timeutil.DateKey(now.AddDate(0, 0, 1)), nil
	}
	t, err := time.ParseInLocation(layoutISO, raw, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, raw, now.Location())
		if err != nil {
			return "", fmt.Errorf("--on %q: expected YYYY-M-D or M/D", o.OnString)
		}
		t = t.AddDate(now.Year(), 0, 0)
		// 1/3 asked on 12/5 means next January, not eleven months ago.
		if timeutil.DateKey(t) < timeutil.DateKey(now) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return timeutil.DateKey(t), nil
}

// Patch turns the flags into an edit: nil leaves the date alone.
func (o *OnOptions) Patch(now time.Time) (*string, error) {
	if o.TBD {
		blank := ""
		return &blank, nil
	}
	if o.OnString == "" {
		return nil, nil
	}
	key, err := o.GetOn(now)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Package key provides CLI helpers to display the planner legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayplan/pkg/glyph"
)

// Key prints a glyph legend describing task, event and period symbols.
type Key struct{}

// Do renders the legend to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	var bullets, periods []glyph.Glyph
	for _, g := range glyph.DefaultGlyphs() {
		if g.Key == "" {
			periods = append(periods, g)
		} else {
			bullets = append(bullets, g)
		}
	}

	k.Key(ctx, "Symbols", bullets)
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, "Periods", periods)

	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// Key renders one glyph table under heading.
func (k *Key) Key(_ context.Context, heading string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}

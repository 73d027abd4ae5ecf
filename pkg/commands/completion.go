package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(dayplan completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(dayplan completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)

	for _, c := range topLevel.Commands() {
		if c.Name() != "preset" {
			continue
		}
		for _, sub := range c.Commands() {
			switch sub.Name() {
			case "apply", "rename", "delete":
				sub.ValidArgsFunction = presetCompletions
			}
		}
	}
}

// presetCompletions offers preset names for the first argument. It reads
// the store without running the daily reset.
func presetCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, preset := range app.ReadPresets(context.Background(), p) {
		if strings.HasPrefix(strings.ToLower(preset.Name), strings.ToLower(toComplete)) {
			names = append(names, preset.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Plan the day: a routine of tasks that resets every morning, plus scheduled events."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addAdd(topLevel)
	addTask(topLevel)
	addComplete(topLevel)
	addEvents(topLevel)
	addEvent(topLevel)
	addCalendar(topLevel)
	addPreset(topLevel)
	addBackup(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

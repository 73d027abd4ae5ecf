package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/runner/preset"
)

func addPreset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage routine presets",
		Long: `A preset is a named task template. Every daily reset starts the day from
the active preset, and saving keeps the active preset in step with today's
tasks. Presets are referenced by id or by name.`,
		Example: `
dayplan preset list
dayplan preset create Weekend
dayplan preset apply weekend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPresetList(cmd)
	addPresetCreate(cmd)
	addPresetApply(cmd)
	addPresetRename(cmd)
	addPresetDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addPresetList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "list",
		Aliases:   []string{"ls"},
		Short:     "List presets; * marks the active one",
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				return &preset.List{Service: s.Service, Output: format}, nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addPresetCreate(topLevel *cobra.Command) {
	var name string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Save today's tasks as a new preset",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				return &preset.Create{Service: s.Service, Name: name, Output: format}, nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addPresetApply(topLevel *cobra.Command) {
	var ref string
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "apply <preset>",
		Short: "Replace today's tasks with a preset and make it active",
		Args:  requireName(&ref),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				p, err := s.Service.ResolvePreset(ref)
				if err != nil {
					return nil, err
				}
				if err := co.Confirm("Replace today's tasks with " + strconv.Quote(p.Name)); err != nil {
					return nil, err
				}
				return &preset.Apply{Service: s.Service, Ref: p.ID, Output: format}, nil
			})
		},
	}
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addPresetRename(topLevel *cobra.Command) {
	var ref, name string
	cmd := &cobra.Command{
		Use:   "rename <preset> <new name>",
		Short: "Rename a preset",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a preset and a new name")
			}
			ref = args[0]
			name = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				return &preset.Rename{Service: s.Service, Ref: ref, Name: name, Output: format}, nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addPresetDelete(topLevel *cobra.Command) {
	var ref string
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:     "delete <preset>",
		Aliases: []string{"rm"},
		Short:   "Delete a preset; the last one can not be deleted",
		Args:    requireName(&ref),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, func(s *session, format printers.Format) (doer, error) {
				p, err := s.Service.ResolvePreset(ref)
				if err != nil {
					return nil, err
				}
				if err := co.Confirm("Delete preset " + strconv.Quote(p.Name)); err != nil {
					return nil, err
				}
				return &preset.Delete{Service: s.Service, Ref: p.ID, Output: format}, nil
			})
		},
	}
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

// requireName takes a preset reference; names may contain spaces.
func requireName(ref *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if len(args) < 1 {
			return errors.New("requires a preset id or name")
		}
		*ref = strings.Join(args, " ")
		return nil
	}
}

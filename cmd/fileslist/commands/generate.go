package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fileslist/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [jobs...]",
		Short: "Regenerate file lists, then run the build command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noCommand, _ := cmd.Flags().GetBool("no-command")
			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				Options:   options(cmd, args),
				NoCommand: noCommand,
			})
		},
	}
	cmd.Flags().BoolP("no-command", "n", false, "Skip the configured build command")
	return cmd
}

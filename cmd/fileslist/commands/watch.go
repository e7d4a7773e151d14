package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fileslist/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [jobs...]",
		Short: "Regenerate file lists whenever matching files change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noCommand, _ := cmd.Flags().GetBool("no-command")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Options:   options(cmd, args),
				NoCommand: noCommand,
			})
		},
	}
	cmd.Flags().BoolP("no-command", "n", false, "Skip the configured build command after each rebuild")
	return cmd
}

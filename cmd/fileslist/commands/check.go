package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/ui/output"
	"go.trai.ch/fileslist/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [jobs...]",
		Short: "Fail if any generated file list is missing, stale or edited by hand",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Check(cmd.Context(), options(cmd, args))

			out := output.New(cmd.OutOrStdout())
			for _, result := range results {
				icon, color := style.Cross, style.Red
				switch result.Status {
				case domain.StatusUpToDate:
					icon, color = style.Check, style.Green
				case domain.StatusStale:
					icon, color = style.Tilde, style.Yellow
				}
				line := fmt.Sprintf("%s %s %s (%s)", icon, result.Job, result.Status, result.Output)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Paint(out, color, line))
			}
			return err
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view (default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}
}

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	s, err := ctx.openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("interactive session started")
	return tui.Run(cmd.Context(), s.rec, s.notes)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/ui"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the analysis service is reachable",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			status, err := s.client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s unreachable: %w", s.cfg.API.BaseURL, err)
			}
			if status != "ok" {
				return fmt.Errorf("%s reports status %q", s.cfg.API.BaseURL, status)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s is %s", s.cfg.API.BaseURL, status))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/export"
	"github.com/idilsaglam/reviews/internal/ui"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "export <file.json|file.yaml>",
		Short: "Save the analyzed reviews to a JSON or YAML file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if _, err := export.FormatForPath(target); err != nil {
				return &usageError{err: err}
			}
			s, err := ctx.openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.rec.Reload(cmd.Context())
			s.flush(cmd.ErrOrStderr())
			if err != nil {
				return &reportedError{err: err}
			}
			items := s.rec.Visible(query)
			if err := export.WriteFile(target, items); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("exported %d reviews to %s", len(items), target))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only export reviews whose text contains this")
	return cmd
}

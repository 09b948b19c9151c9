package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/export"
	"github.com/idilsaglam/reviews/internal/model"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <text...>",
		Short: "Submit a review for sentiment and key point analysis",
		Example: `  reviews analyze "Great product, fast shipping"
  reviews analyze --output json Arrived broken`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(output)
			if err != nil {
				return &usageError{err: err}
			}
			s, err := ctx.openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			// A failed reload is reported but does not block the submission.
			_ = s.rec.Reload(cmd.Context())
			item, err := s.rec.Submit(cmd.Context(), strings.Join(args, " "))
			s.flush(cmd.ErrOrStderr())
			if err != nil {
				return &reportedError{err: err}
			}
			return export.Write(cmd.OutOrStdout(), []model.Item{item}, format, export.Options{})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "panel", "Output format: panel, table, json or yaml")
	return cmd
}

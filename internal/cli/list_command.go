package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/export"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var query string
	var output string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List analyzed reviews",
		Args:    usageArgs(cobra.NoArgs),
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

			err = s.rec.Reload(cmd.Context())
			s.flush(cmd.ErrOrStderr())
			if err != nil {
				return &reportedError{err: err}
			}
			return export.Write(cmd.OutOrStdout(), s.rec.Visible(query), format, export.Options{Group: ctx.group()})
		},
	}

	cmd.Flags().StringVarP(&query, "filter", "f", "", "Only show reviews whose text contains this (case-insensitive)")
	cmd.Flags().StringVarP(&output, "output", "o", "panel", "Output format: panel, table, json or yaml")
	return cmd
}

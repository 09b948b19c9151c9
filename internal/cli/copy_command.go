package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/model"
)

func newCopyCommand(ctx *commandContext) *cobra.Command {
	var info bool

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a review's key points to the clipboard",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseID(args[0])
			if err != nil {
				return &usageError{err: fmt.Errorf("copy: %q is not a review id", args[0])}
			}
			s, err := ctx.openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.rec.Reload(cmd.Context()); err != nil {
				s.flush(cmd.ErrOrStderr())
				return &reportedError{err: err}
			}
			item, ok := s.rec.Find(id)
			if !ok {
				return fmt.Errorf("copy: review %s not found", id)
			}
			if info {
				s.rec.ShowInfo(item)
			}
			err = s.rec.CopyKeyPoints(item)
			s.flush(cmd.ErrOrStderr())
			if err != nil {
				return &reportedError{err: err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&info, "info", false, "Also show the start of the review text")
	return cmd
}

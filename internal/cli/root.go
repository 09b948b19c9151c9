// Package cli is the reviews command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/reviews/internal/reconcile"
	"github.com/idilsaglam/reviews/internal/ui"
)

// Execute runs the command tree and maps the outcome to an exit code:
// 0 ok, 1 runtime failure, 2 usage error.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(defaultDeps())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return report(stderr, root.ExecuteContext(ctx))
}

func newRootCommand(deps deps) *cobra.Command {
	var configFlag string
	var groupFlag bool

	ctx := newCommandContext(&configFlag, &groupFlag, deps)

	rootCmd := &cobra.Command{
		Use:           "reviews",
		Short:         "Analyze product reviews from the terminal",
		Long:          "reviews submits product reviews to the analysis service and browses the analyzed results.\nWithout a subcommand it opens the interactive view.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&groupFlag, "group", false, "Group listings by sentiment")

	rootCmd.AddCommand(newTUICommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newCopyCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newHealthCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// usageError marks bad invocations (exit code 2).
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// reportedError is a failure the user has already seen as a notification.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage), errors.Is(err, reconcile.ErrEmptyReview):
		return 2
	}
	return 1
}

func report(stderr io.Writer, err error) int {
	code := exitCode(err)
	if err == nil {
		return code
	}
	var reported *reportedError
	if !errors.As(err, &reported) && !errors.Is(err, context.Canceled) {
		ui.Fail(stderr, err.Error())
	}
	if code == 2 {
		fmt.Fprintln(stderr, "Run 'reviews --help' for usage.")
	}
	return code
}

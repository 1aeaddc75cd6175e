package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/internal/cli"
	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps error codes to process exit statuses: 2 for bad input,
// 3 when placement gave up at the radius bound, 1 otherwise.
func exitCode(err error) int {
	switch {
	case tcerrors.IsValidation(err):
		return 2
	case tcerrors.Is(err, tcerrors.ErrCodePlacementExhausted):
		return 3
	}
	return 1
}

// describe renders err for the terminal, leading with its code when it has one.
func describe(err error) string {
	if code := tcerrors.GetCode(err); code != "" {
		return fmt.Sprintf("error [%s]: %s", code, tcerrors.UserMessage(err))
	}
	return "error: " + err.Error()
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level must be set before the root pre-run, which registers
	// debug hooks based on it.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

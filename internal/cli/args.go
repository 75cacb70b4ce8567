package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exactArgs is cobra.ExactArgs with errors that wrap ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d arguments, got %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

// noArgs is cobra.NoArgs with errors that wrap ErrUsage.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q accepts no arguments, got %q", ErrUsage, cmd.CommandPath(), args[0])
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		// Printing the version never needs the configuration file.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rcstring version %s\n", build.Version)
		},
	}
}

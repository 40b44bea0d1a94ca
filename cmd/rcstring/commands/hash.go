package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/app"
)

func (c *CLI) newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the content hash of each identifier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Hash(cmd.Context(), app.HashOptions{Path: inputPath(args)})
		},
	}
}

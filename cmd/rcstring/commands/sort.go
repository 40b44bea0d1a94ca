package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/app"
)

func (c *CLI) newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort identifiers, one per line, in byte order",
		Long:  "Sort identifiers read from file, or from stdin when file is omitted or \"-\". Blank lines are skipped.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := c.app.Settings()
			opts := app.SortOptions{
				Path:       inputPath(args),
				Descending: settings.Sort.Descending,
				Unique:     settings.Sort.Unique,
			}
			if cmd.Flags().Changed("descending") {
				opts.Descending, _ = cmd.Flags().GetBool("descending")
			}
			if cmd.Flags().Changed("unique") {
				opts.Unique, _ = cmd.Flags().GetBool("unique")
			}
			return c.app.Sort(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("descending", "d", false, "Sort in reverse byte order")
	cmd.Flags().BoolP("unique", "u", false, "Drop repeated identifiers")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/app"
)

func (c *CLI) newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress <text>",
		Short: "Clone and release one shared string from many goroutines",
		Long: "Clone and release a handle to text concurrently, then report the peak and final\n" +
			"live-handle counts. Fails if the final count differs from the initial one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := c.app.Settings()
			opts := app.StressOptions{
				Text:       args[0],
				Workers:    settings.Stress.Workers,
				Iterations: settings.Stress.Iterations,
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if cmd.Flags().Changed("iterations") {
				opts.Iterations, _ = cmd.Flags().GetInt("iterations")
			}
			_, err := c.app.Stress(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent workers")
	cmd.Flags().IntP("iterations", "n", 0, "Clone/release pairs per worker")
	return cmd
}

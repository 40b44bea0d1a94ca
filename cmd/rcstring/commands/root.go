// Package commands implements the CLI commands for the rcstring tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/adapters/config" //nolint:depguard // Default file name only
	"go.trai.ch/rcstring/internal/app"
	"go.trai.ch/rcstring/internal/build"
	"go.trai.ch/rcstring/internal/core/ports"
)

// CLI represents the command line interface for rcstring.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:               "rcstring",
		Short:             "Inspect and exercise shared, reference-counted strings",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.loadSettings,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newSortCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newStressCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) loadSettings(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	_, err := c.app.LoadSettings(path, verbose)
	return err
}

// inputPath returns the optional file argument, defaulting to stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return ports.StdinPath
	}
	return args[0]
}

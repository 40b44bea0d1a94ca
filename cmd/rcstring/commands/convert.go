package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/rcstring/internal/app"
	"go.trai.ch/rcstring/internal/core/domain"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a JSON or YAML document",
		Long: "Decode a document from file (or stdin) and write it to stdout in another format.\n" +
			"Without --from, the input format follows the file extension, then the configuration.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(args)
			settings := c.app.Settings()

			fromName := settings.Convert.From
			if ext := formatFromExtension(path); ext != "" {
				fromName = ext
			}
			if cmd.Flags().Changed("from") {
				fromName, _ = cmd.Flags().GetString("from")
			}
			toName := settings.Convert.To
			if cmd.Flags().Changed("to") {
				toName, _ = cmd.Flags().GetString("to")
			}

			from, err := domain.ParseFormat(fromName)
			if err != nil {
				return err
			}
			to, err := domain.ParseFormat(toName)
			if err != nil {
				return err
			}

			return c.app.Convert(cmd.Context(), app.ConvertOptions{Path: path, From: from, To: to})
		},
	}
	cmd.Flags().StringP("from", "f", "", "Input format (json, yaml)")
	cmd.Flags().StringP("to", "t", "", "Output format (json, yaml)")
	return cmd
}

func formatFromExtension(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return string(domain.FormatJSON)
	case ".yaml", ".yml":
		return string(domain.FormatYAML)
	default:
		return ""
	}
}

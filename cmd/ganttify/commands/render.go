package commands

import (
	"github.com/spf13/cobra"

	"github.com/kylemshaw/ganttify/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [project-file]",
		Short: "Resolve the project and render its schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			width, _ := cmd.Flags().GetInt("width")
			noColor, _ := cmd.Flags().GetBool("no-color")

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			return c.app.Render(cmd.Context(), app.RenderOptions{
				ProjectPath: path,
				Format:      format,
				Output:      output,
				Width:       width,
				NoColor:     noColor,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: table, json, csv, or svg (default from config)")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout, format inferred from the extension")
	cmd.Flags().IntP("width", "w", 0, "Maximum table width in columns (0 = unbounded)")
	cmd.Flags().Bool("no-color", false, "Disable styled output")
	return cmd
}

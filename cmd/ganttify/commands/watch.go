package commands

import (
	"github.com/spf13/cobra"

	"github.com/kylemshaw/ganttify/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [project-file]",
		Short: "Re-resolve the schedule whenever the project file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, _ := cmd.Flags().GetString("ui")
			debounce, _ := cmd.Flags().GetDuration("debounce")
			width, _ := cmd.Flags().GetInt("width")
			noColor, _ := cmd.Flags().GetBool("no-color")

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ProjectPath: path,
				UI:          ui,
				Debounce:    debounce,
				Width:       width,
				NoColor:     noColor,
			})
		},
	}
	cmd.Flags().String("ui", "", "Front-end: tui or plain (default from config)")
	cmd.Flags().Duration("debounce", 0, "Quiet window after a change before reloading (default from config)")
	cmd.Flags().IntP("width", "w", 0, "Maximum table width in plain mode (0 = unbounded)")
	cmd.Flags().Bool("no-color", false, "Disable styled output in plain mode")
	return cmd
}

// Package tui provides the interactive dashboard for watch mode.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kylemshaw/ganttify/internal/ui/output"
)

// NewModel creates a dashboard model for the given project file. onReload is
// invoked when the user asks for a manual reload; it may be nil.
func NewModel(w io.Writer, projectPath string, onReload func()) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		ProjectPath: projectPath,
		onReload:    onReload,
	}
}

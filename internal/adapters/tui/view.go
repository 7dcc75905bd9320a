package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kylemshaw/ganttify/internal/ui/style"
)

// View renders the dashboard: header, schedule viewport, status footer.
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		m.Viewport.View(),
		m.footer(),
	)
}

func (m Model) header() string {
	return titleStyle.Render("GANTTIFY") + " " + pathStyle.Render(m.ProjectPath) + "\n"
}

func (m Model) footer() string {
	return m.statusLine() + "\n" + helpStyle.Render("q quit · r reload · ↑/↓ scroll")
}

func (m Model) statusLine() string {
	if m.LastErr != nil {
		return statusErrStyle.Render(fmt.Sprintf("%s %s", style.Cross, m.LastErr))
	}
	if m.Schedule == nil {
		return waitingStyle.Render(fmt.Sprintf("%s watching", style.Circle))
	}
	return statusOKStyle.Render(fmt.Sprintf(
		"%s %d task(s) · resolved %s · reload #%d",
		style.Check, len(m.Schedule.Tasks), m.LastUpdate.Format("15:04:05"), m.Reloads,
	))
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kylemshaw/ganttify/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Indigo).
			Foreground(style.White)

	pathStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	waitingStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

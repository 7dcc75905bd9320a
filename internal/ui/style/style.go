// Package style provides shared UI styling primitives including brand colors,
// icons and chart glyphs for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Indigo = lipgloss.Color("#4F46E5")
	Slate  = lipgloss.Color("#64748B")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#111827")
	Mist   = lipgloss.Color("#F8FAFC")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Amber  = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Chart glyphs. BarDay marks a working day inside a task bar, BarGap a
// weekend the bar spans over, BarPad a day outside the bar.
const (
	BarDay = "█"
	BarGap = "░"
	BarPad = "·"
)

// ChartPalette holds the bar colors assigned to resources, cycled in the
// order the schedule lists them.
var ChartPalette = []lipgloss.Color{Indigo, Green, Amber, Red, Slate}

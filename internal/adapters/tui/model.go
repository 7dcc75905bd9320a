package tui

import (
	"bytes"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kylemshaw/ganttify/internal/adapters/render"
	"github.com/kylemshaw/ganttify/internal/core/domain"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the bubbletea model behind the watch dashboard. The schedule body
// lives in a viewport so large projects stay scrollable.
type Model struct {
	ProjectPath string

	Schedule   *domain.Schedule
	LastUpdate time.Time
	LastErr    error
	Reloads    int

	Viewport viewport.Model
	Ready    bool

	onReload func()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.onReload != nil {
				reload := m.onReload
				return m, func() tea.Msg {
					reload()
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		bodyHeight := msg.Height - headerHeight - footerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, bodyHeight)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = bodyHeight
		}
		m.refreshContent()
		return m, nil

	case MsgScheduleUpdated:
		m.Schedule = msg.Schedule
		m.LastUpdate = msg.At
		m.LastErr = nil
		m.Reloads++
		m.refreshContent()
		return m, nil

	case MsgReloadFailed:
		m.LastErr = msg.Err
		m.LastUpdate = msg.At
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// refreshContent re-renders the schedule table into the viewport at the
// current width.
func (m *Model) refreshContent() {
	if !m.Ready {
		return
	}
	if m.Schedule == nil {
		m.Viewport.SetContent(waitingStyle.Render("waiting for the first resolve..."))
		return
	}

	var buf bytes.Buffer
	if err := render.NewTable(m.Viewport.Width).Render(&buf, m.Schedule); err != nil {
		m.Viewport.SetContent(statusErrStyle.Render(err.Error()))
		return
	}
	m.Viewport.SetContent(buf.String())
}

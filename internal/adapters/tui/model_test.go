package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylemshaw/ganttify/internal/adapters/tui"
	"github.com/kylemshaw/ganttify/internal/core/domain"
)

func updateModel(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	model, ok := updated.(tui.Model)
	require.True(t, ok)
	return model, cmd
}

func watchSchedule() *domain.Schedule {
	return &domain.Schedule{
		Name: "website-launch",
		Tasks: []domain.ResolvedTask{
			{
				Task: domain.Task{
					ID:       domain.NewID("setup"),
					Title:    "Setup environment",
					Start:    domain.NewDate(2024, time.August, 1),
					Duration: 5,
				},
				EffectiveStart:   domain.NewDate(2024, time.August, 1),
				End:              domain.NewDate(2024, time.August, 7),
				CalendarDuration: 7,
			},
			{
				Task: domain.Task{
					ID:           domain.NewID("deploy"),
					Title:        "Deploy to production",
					Start:        domain.NewDate(2024, time.August, 1),
					Duration:     6,
					Dependencies: []domain.ID{domain.NewID("setup")},
				},
				EffectiveStart:   domain.NewDate(2024, time.August, 8),
				End:              domain.NewDate(2024, time.August, 15),
				CalendarDuration: 8,
			},
		},
	}
}

func TestModel_Update_Quit(t *testing.T) {
	m := tui.NewModel(nil, "/project/ganttify.yaml", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := tui.NewModel(nil, "/project/ganttify.yaml", nil)

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, m.Ready)
	assert.Equal(t, 100, m.Viewport.Width)
	// Two header lines and two footer lines surround the body.
	assert.Equal(t, 26, m.Viewport.Height)
}

func TestModel_Update_ScheduleUpdated(t *testing.T) {
	m := tui.NewModel(nil, "/project/ganttify.yaml", nil)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = updateModel(t, m, tui.MsgScheduleUpdated{
		Schedule: watchSchedule(),
		At:       time.Date(2024, time.August, 1, 9, 30, 0, 0, time.UTC),
	})

	assert.Equal(t, 1, m.Reloads)
	assert.NoError(t, m.LastErr)
	require.NotNil(t, m.Schedule)
	assert.Equal(t, "website-launch", m.Schedule.Name)
}

func TestModel_Update_ReloadFailedKeepsSchedule(t *testing.T) {
	m := tui.NewModel(nil, "/project/ganttify.yaml", nil)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = updateModel(t, m, tui.MsgScheduleUpdated{Schedule: watchSchedule(), At: time.Now()})

	m, _ = updateModel(t, m, tui.MsgReloadFailed{Err: domain.ErrCycleDetected, At: time.Now()})

	require.Error(t, m.LastErr)
	require.NotNil(t, m.Schedule, "last good schedule stays on screen")
	assert.Equal(t, 1, m.Reloads)
}

func TestModel_Update_ReloadKey(t *testing.T) {
	var called bool
	m := tui.NewModel(nil, "/project/ganttify.yaml", func() { called = true })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	require.NotNil(t, cmd)
	cmd()
	assert.True(t, called)
}

func TestModel_Update_ReloadKeyWithoutCallback(t *testing.T) {
	m := tui.NewModel(nil, "/project/ganttify.yaml", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	assert.Nil(t, cmd)
}

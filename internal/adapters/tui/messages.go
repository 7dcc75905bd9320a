package tui

import (
	"time"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// MsgScheduleUpdated carries a freshly resolved schedule into the dashboard.
type MsgScheduleUpdated struct {
	Schedule *domain.Schedule
	At       time.Time
}

// MsgReloadFailed reports that a reload could not produce a schedule. The
// dashboard keeps showing the last good schedule alongside the error.
type MsgReloadFailed struct {
	Err error
	At  time.Time
}

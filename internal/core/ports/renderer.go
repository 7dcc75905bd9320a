package ports

import (
	"io"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// Renderer turns a resolved schedule into one output format.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the schedule to w.
	Render(w io.Writer, schedule *domain.Schedule) error
}

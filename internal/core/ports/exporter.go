package ports

import "github.com/kylemshaw/ganttify/internal/core/domain"

// Exporter persists rendered output on the file system.
//
//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type Exporter interface {
	// Export renders the schedule with r and writes the result to path,
	// creating parent directories as needed.
	Export(path string, r Renderer, schedule *domain.Schedule) error
}

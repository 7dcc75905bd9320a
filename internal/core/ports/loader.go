// Package ports defines the core interfaces for the application.
package ports

import "github.com/kylemshaw/ganttify/internal/core/domain"

// ProjectLoader defines the interface for loading the project definition.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ProjectLoader interface {
	// Discover walks up from dir to find the nearest project file.
	// Returns the absolute path of the file that won the search.
	Discover(dir string) (string, error)

	// Load reads the project file at path and returns the task plan.
	// Tasks keep the order they appear in the file.
	Load(path string) (*domain.Plan, error)
}

// Package config provides the project file loaders for ganttify.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// Loader implements ports.ProjectLoader for YAML, HCL and CSV project files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover searches for a project file starting in dir and walking up toward
// the filesystem root. Within each directory the canonical YAML name wins
// over the alternative formats.
func (l *Loader) Discover(dir string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(domain.ErrProjectNotFound, "dir", dir)
	}

	for {
		for _, name := range domain.ProjectFileNames() {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrProjectNotFound, "dir", dir)
}

// Load reads the project file at path and returns the plan it describes.
// The format is picked by file extension.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	// #nosec G304 -- path comes from discovery or was given by the user
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return l.loadYAML(path, data)
	case ".hcl":
		return l.loadHCL(path, data)
	case ".csv":
		return l.loadCSV(path, data)
	default:
		err := zerr.With(domain.ErrUnsupportedFormat, "path", path)
		return nil, zerr.With(err, "extension", ext)
	}
}

func (l *Loader) loadYAML(path string, data []byte) (*domain.Plan, error) {
	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectParseFailed.Error())
	}

	return l.buildPlan(projectName(file.Project, path), file.Tasks)
}

// buildPlan converts raw task entries into a plan. Entry order is kept: it is
// the order the resolution engine walks.
func (l *Loader) buildPlan(name string, entries []TaskEntry) (*domain.Plan, error) {
	plan := domain.NewPlan(name)

	if len(entries) == 0 {
		l.Logger.Warn(fmt.Sprintf("project %s has no tasks", name))
	}

	for i, entry := range entries {
		task, err := buildTask(entry)
		if err != nil {
			return nil, zerr.With(err, "entry", i+1)
		}

		if err := plan.AddTask(task); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// buildTask validates a single entry and converts it to a domain task.
// Duration is passed through untouched: the resolution engine owns the
// at-least-one-day rule.
func buildTask(entry TaskEntry) (domain.Task, error) {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return domain.Task{}, domain.ErrMissingTitle
	}

	id := strings.TrimSpace(entry.ID)
	if id == "" {
		// An entry without an explicit id is addressed by its title.
		id = title
	}

	if strings.TrimSpace(entry.Start) == "" {
		return domain.Task{}, zerr.With(domain.ErrMissingStart, "task", id)
	}

	start, err := domain.ParseDate(strings.TrimSpace(entry.Start))
	if err != nil {
		return domain.Task{}, zerr.With(err, "task", id)
	}

	return domain.Task{
		ID:           domain.NewID(id),
		Title:        title,
		Start:        start,
		Duration:     entry.Duration,
		Dependencies: domain.NewIDs(entry.Needs),
		Resource:     domain.NewResource(strings.TrimSpace(entry.Resource)),
	}, nil
}

// projectName picks the configured project name, falling back to the name of
// the directory holding the project file.
func projectName(configured, path string) string {
	if configured != "" {
		return configured
	}

	return filepath.Base(filepath.Dir(path))
}

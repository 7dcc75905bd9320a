// Package export writes rendered schedules to the file system.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// FileExporter implements ports.Exporter. It renders into memory first, so a
// render failure never leaves a truncated file behind.
type FileExporter struct {
	Logger ports.Logger
}

// NewFileExporter creates a new FileExporter with the given logger.
func NewFileExporter(logger ports.Logger) *FileExporter {
	return &FileExporter{Logger: logger}
}

// Export renders the schedule with r and writes the result to path, creating
// parent directories as needed.
func (e *FileExporter) Export(path string, r ports.Renderer, schedule *domain.Schedule) error {
	path = filepath.Clean(path)

	var buf bytes.Buffer
	if err := r.Render(&buf, schedule); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			err = zerr.Wrap(err, domain.ErrExportDirCreateFailed.Error())
			return zerr.With(err, "dir", dir)
		}
	}

	//nolint:gosec // Path is cleaned and provided by the user
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		err = zerr.Wrap(err, domain.ErrExportWriteFailed.Error())
		return zerr.With(err, "path", path)
	}

	e.Logger.Info(fmt.Sprintf("wrote %s (%d bytes)", path, buf.Len()))
	return nil
}

// Package render turns resolved schedules into presentable output. Each
// renderer implements ports.Renderer for one format.
package render

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// Format names accepted by New.
const (
	FormatTable = "table"
	FormatSVG   = "svg"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// New returns the renderer for the given format name. width only affects the
// table renderer and bounds its total line width; zero means unbounded.
func New(format string, width int) (ports.Renderer, error) {
	switch format {
	case FormatTable:
		return NewTable(width), nil
	case FormatSVG:
		return NewSVG(), nil
	case FormatCSV:
		return NewCSV(), nil
	case FormatJSON:
		return NewJSON(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownRenderFormat, "format", format)
	}
}

// Formats returns the known format names.
func Formats() []string {
	return []string{FormatTable, FormatSVG, FormatCSV, FormatJSON}
}

// FormatForPath infers a render format from a file extension.
func FormatForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, true
	case ".csv":
		return FormatCSV, true
	case ".json":
		return FormatJSON, true
	case ".txt":
		return FormatTable, true
	default:
		return "", false
	}
}

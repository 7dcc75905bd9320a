package config

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// csvColumns is the set of recognized header columns.
var csvColumns = map[string]bool{
	"id":       true,
	"title":    true,
	"start":    true,
	"duration": true,
	"needs":    true,
	"resource": true,
}

func (l *Loader) loadCSV(path string, data []byte) (*domain.Plan, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectParseFailed.Error())
	}

	if len(records) == 0 {
		return l.buildPlan(projectName("", path), nil)
	}

	index, err := l.csvHeaderIndex(records[0])
	if err != nil {
		return nil, err
	}

	entries := make([]TaskEntry, 0, len(records)-1)
	for row, record := range records[1:] {
		entry, err := csvEntry(record, index)
		if err != nil {
			// Rows count from one and the header is row one.
			return nil, zerr.With(err, "row", row+2)
		}

		entries = append(entries, entry)
	}

	return l.buildPlan(projectName("", path), entries)
}

func (l *Loader) csvHeaderIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if !csvColumns[name] {
			l.Logger.Warn(fmt.Sprintf("ignoring unknown column %q", name))
			continue
		}

		index[name] = i
	}

	for _, required := range []string{"title", "start", "duration"} {
		if _, ok := index[required]; !ok {
			return nil, zerr.With(domain.ErrProjectParseFailed, "missing_column", required)
		}
	}

	return index, nil
}

func csvEntry(record []string, index map[string]int) (TaskEntry, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	duration := 0
	if raw := field("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return TaskEntry{}, zerr.With(domain.ErrProjectParseFailed, "duration", raw)
		}

		duration = parsed
	}

	return TaskEntry{
		ID:       field("id"),
		Title:    field("title"),
		Start:    field("start"),
		Duration: duration,
		Needs:    splitNeeds(field("needs")),
		Resource: field("resource"),
	}, nil
}

// splitNeeds parses a semicolon-separated dependency list.
func splitNeeds(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	needs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			needs = append(needs, part)
		}
	}

	if len(needs) == 0 {
		return nil
	}

	return needs
}

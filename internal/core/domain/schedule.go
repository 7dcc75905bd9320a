package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ResolvedTask couples a raw task with its computed schedule dates.
type ResolvedTask struct {
	Task
	// EffectiveStart is the start date actually assigned, never a weekend
	// and never before Task.Start.
	EffectiveStart Date
	// End is the calendar date the task's last working day falls on.
	End Date
	// CalendarDuration is the inclusive span in calendar days from
	// EffectiveStart to End.
	CalendarDuration int
}

// Schedule is the immutable outcome of one resolution run. Tasks are sorted
// for presentation: resource name ascending with resource-less tasks last,
// then effective start date within the same resource.
type Schedule struct {
	Name  string
	Tasks []ResolvedTask
}

// Bounds returns the earliest effective start and the latest end date over
// all tasks. ok is false for an empty schedule.
func (s *Schedule) Bounds() (first, last Date, ok bool) {
	for _, t := range s.Tasks {
		if !ok {
			first, last, ok = t.EffectiveStart, t.End, true
			continue
		}
		if t.EffectiveStart.Before(first) {
			first = t.EffectiveStart
		}
		if t.End.After(last) {
			last = t.End
		}
	}
	return first, last, ok
}

// Resources returns the distinct resources in presentation order, excluding
// tasks without one.
func (s *Schedule) Resources() []Resource {
	seen := make(map[Resource]struct{})
	var out []Resource
	for _, t := range s.Tasks {
		if t.Resource.IsZero() {
			continue
		}
		if _, ok := seen[t.Resource]; ok {
			continue
		}
		seen[t.Resource] = struct{}{}
		out = append(out, t.Resource)
	}
	return out
}

// Digest returns a stable fingerprint of the schedule. Identical input
// always resolves to an identical digest, so watch mode can skip
// re-rendering when an edit does not change the outcome.
func (s *Schedule) Digest() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(s.Name)
	for _, t := range s.Tasks {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(t.ID.String())
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(t.Title)
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(t.Resource.String())
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(t.EffectiveStart.String())
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(t.End.String())
		_, _ = h.WriteString("\x01")
		_, _ = h.WriteString(strconv.Itoa(t.Duration))
	}
	return h.Sum64()
}

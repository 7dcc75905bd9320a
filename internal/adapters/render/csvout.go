package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// CSV renders a schedule as comma separated values, one row per task in
// presentation order.
type CSV struct{}

// NewCSV creates a CSV renderer.
func NewCSV() *CSV {
	return &CSV{}
}

// Render writes the header and task rows to w.
func (r *CSV) Render(w io.Writer, schedule *domain.Schedule) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"id", "title", "resource", "effective_start", "end", "working_days", "calendar_days"},
	}
	for _, task := range schedule.Tasks {
		rows = append(rows, []string{
			task.ID.String(),
			task.Title,
			task.Resource.String(),
			task.EffectiveStart.String(),
			task.End.String(),
			strconv.Itoa(task.Duration),
			strconv.Itoa(task.CalendarDuration),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// JSON renders a schedule as indented JSON for machine consumers.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonSchedule struct {
	Project string     `json:"project"`
	Tasks   []jsonTask `json:"tasks"`
}

type jsonTask struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Resource       string   `json:"resource,omitempty"`
	Start          string   `json:"start"`
	EffectiveStart string   `json:"effective_start"`
	End            string   `json:"end"`
	WorkingDays    int      `json:"working_days"`
	CalendarDays   int      `json:"calendar_days"`
	Needs          []string `json:"needs,omitempty"`
}

// Render writes the schedule to w, tasks in presentation order.
func (r *JSON) Render(w io.Writer, schedule *domain.Schedule) error {
	out := jsonSchedule{
		Project: schedule.Name,
		Tasks:   make([]jsonTask, 0, len(schedule.Tasks)),
	}
	for _, task := range schedule.Tasks {
		needs := make([]string, 0, len(task.Dependencies))
		for _, dep := range task.Dependencies {
			needs = append(needs, dep.String())
		}
		out.Tasks = append(out.Tasks, jsonTask{
			ID:             task.ID.String(),
			Title:          task.Title,
			Resource:       task.Resource.String(),
			Start:          task.Start.String(),
			EffectiveStart: task.EffectiveStart.String(),
			End:            task.End.String(),
			WorkingDays:    task.Duration,
			CalendarDays:   task.CalendarDuration,
			Needs:          needs,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Indigo)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Slate)

	barStyle = lipgloss.NewStyle().
			Foreground(style.Indigo)

	gapStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	padStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

// minTimeline is the narrowest useful timeline column. Below that the column
// is dropped rather than squashed into noise.
const minTimeline = 8

// Table renders a schedule as a text table with one timeline bar per task.
type Table struct {
	width int
}

// NewTable creates a table renderer. width bounds the total line width; zero
// renders one column per calendar day.
func NewTable(width int) *Table {
	return &Table{width: width}
}

// Render writes the schedule table to w. Tasks keep the schedule's
// presentation order.
func (r *Table) Render(w io.Writer, schedule *domain.Schedule) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(schedule.Name)) + "\n")

	first, last, ok := schedule.Bounds()
	if !ok {
		b.WriteString(subtitleStyle.Render("no tasks scheduled") + "\n")
		return write(w, b.String())
	}

	span := first.DaysUntil(last) + 1
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%s → %s · %d task(s) · %d calendar days",
		first, last, len(schedule.Tasks), span,
	)) + "\n\n")

	cols := measureColumns(schedule)
	cells, bucket := r.timelineShape(cols, span)

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-10s  %-10s  %*s  %*s",
		cols.id, "ID",
		cols.task, "TASK",
		cols.resource, "RESOURCE",
		"START", "END",
		cols.days, "DAYS",
		cols.span, "SPAN",
	)
	if cells > 0 {
		header += "  TIMELINE"
	}
	b.WriteString(headerStyle.Render(header) + "\n")

	for _, task := range schedule.Tasks {
		row := fmt.Sprintf("%-*s  %-*s  %-*s  %-10s  %-10s  %*d  %*d",
			cols.id, task.ID.String(),
			cols.task, task.Title,
			cols.resource, displayResource(task.Resource),
			task.EffectiveStart, task.End,
			cols.days, task.Duration,
			cols.span, task.CalendarDuration,
		)
		if cells > 0 {
			row += "  " + timelineBar(task, first, span, cells, bucket)
		}
		b.WriteString(row + "\n")
	}

	return write(w, b.String())
}

type columnWidths struct {
	id       int
	task     int
	resource int
	days     int
	span     int
}

// fixed returns the line width consumed by everything except the timeline,
// including the gap in front of it.
func (c columnWidths) fixed() int {
	return c.id + c.task + c.resource + c.days + c.span + 2*10 + 7*2
}

func measureColumns(schedule *domain.Schedule) columnWidths {
	cols := columnWidths{
		id:       len("ID"),
		task:     len("TASK"),
		resource: len("RESOURCE"),
		days:     len("DAYS"),
		span:     len("SPAN"),
	}

	for _, task := range schedule.Tasks {
		cols.id = max(cols.id, len(task.ID.String()))
		cols.task = max(cols.task, len(task.Title))
		cols.resource = max(cols.resource, len(displayResource(task.Resource)))
		cols.days = max(cols.days, len(fmt.Sprint(task.Duration)))
		cols.span = max(cols.span, len(fmt.Sprint(task.CalendarDuration)))
	}

	return cols
}

// timelineShape decides how many timeline cells to draw and how many calendar
// days each cell covers. A zero cell count drops the column.
func (r *Table) timelineShape(cols columnWidths, span int) (cells, bucket int) {
	width := span
	if r.width > 0 {
		avail := r.width - cols.fixed()
		if avail < minTimeline {
			return 0, 0
		}
		if avail < width {
			width = avail
		}
	}

	bucket = (span + width - 1) / width
	cells = (span + bucket - 1) / bucket
	return cells, bucket
}

// timelineBar draws one task's bar across the schedule bounds. Each cell
// covers bucket calendar days: a working day inside the task renders as a
// bar, an occupied weekend as a gap, anything else as padding.
func timelineBar(task domain.ResolvedTask, first domain.Date, span, cells, bucket int) string {
	var b strings.Builder

	for c := range cells {
		from := first.AddDays(c * bucket)
		days := min(bucket, span-c*bucket)
		b.WriteString(timelineCell(task, from, days))
	}

	return b.String()
}

func timelineCell(task domain.ResolvedTask, from domain.Date, days int) string {
	working := false
	occupied := false

	for i := range days {
		day := from.AddDays(i)
		if day.Before(task.EffectiveStart) || day.After(task.End) {
			continue
		}
		occupied = true
		if !domain.IsWeekend(day) {
			working = true
			break
		}
	}

	switch {
	case working:
		return barStyle.Render(style.BarDay)
	case occupied:
		return gapStyle.Render(style.BarGap)
	default:
		return padStyle.Render(style.BarPad)
	}
}

func displayResource(r domain.Resource) string {
	if r.IsZero() {
		return "-"
	}
	return r.String()
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

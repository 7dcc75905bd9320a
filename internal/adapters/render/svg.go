package render

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/ui/style"
)

// SVG chart geometry, in pixels.
const (
	svgDayWidth  = 24
	svgRowHeight = 32
	svgBarHeight = 18
	svgGutter    = 220
	svgHeader    = 48
	svgPadding   = 16
)

// SVG renders a schedule as a Gantt chart.
type SVG struct{}

// NewSVG creates an SVG renderer.
func NewSVG() *SVG {
	return &SVG{}
}

// Render writes the chart to w. One row per task in presentation order, one
// column per calendar day across the schedule bounds.
func (r *SVG) Render(w io.Writer, schedule *domain.Schedule) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	first, last, ok := schedule.Bounds()
	if !ok {
		canvas.Start(svgGutter, svgHeader)
		canvas.Text(svgPadding, 28, schedule.Name+" (no tasks)", svgTextStyle(14, style.Ink, true))
		canvas.End()
		return ew.result()
	}

	span := first.DaysUntil(last) + 1
	width := svgGutter + span*svgDayWidth + svgPadding
	height := svgHeader + len(schedule.Tasks)*svgRowHeight + svgPadding

	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+string(style.White))
	canvas.Text(svgPadding, 28, schedule.Name, svgTextStyle(16, style.Ink, true))

	r.drawCalendar(canvas, first, span, len(schedule.Tasks))
	r.drawTasks(canvas, schedule, first)
	r.drawDependencies(canvas, schedule, first)

	canvas.End()
	return ew.result()
}

// drawCalendar shades weekends, rules the day grid and labels the axis.
func (r *SVG) drawCalendar(canvas *svgo.SVG, first domain.Date, span, rows int) {
	gridBottom := svgHeader + rows*svgRowHeight

	for i := range span {
		day := first.AddDays(i)
		x := svgGutter + i*svgDayWidth

		if domain.IsWeekend(day) {
			canvas.Rect(x, svgHeader, svgDayWidth, rows*svgRowHeight, "fill:"+string(style.Mist))
		}

		canvas.Line(x, svgHeader, x, gridBottom, "stroke:"+string(style.Slate)+";stroke-opacity:0.15")

		if day.Day() == 1 || i == 0 {
			label := fmt.Sprintf("%s %d", day.Month(), day.Year())
			canvas.Text(x+2, svgHeader-26, label, svgTextStyle(12, style.Ink, true))
		}

		canvas.Text(x+svgDayWidth/2, svgHeader-8, fmt.Sprint(day.Day()),
			svgTextStyle(10, style.Slate, false)+";text-anchor:middle")
	}

	canvas.Line(svgGutter+span*svgDayWidth, svgHeader, svgGutter+span*svgDayWidth, gridBottom,
		"stroke:"+string(style.Slate)+";stroke-opacity:0.15")
}

func (r *SVG) drawTasks(canvas *svgo.SVG, schedule *domain.Schedule, first domain.Date) {
	colors := resourceColors(schedule)

	for i, task := range schedule.Tasks {
		rowTop := svgHeader + i*svgRowHeight
		center := rowTop + svgRowHeight/2

		canvas.Text(svgPadding, center+4, task.Title, svgTextStyle(12, style.Ink, false))

		barX := svgGutter + first.DaysUntil(task.EffectiveStart)*svgDayWidth
		barW := task.CalendarDuration * svgDayWidth
		barY := rowTop + (svgRowHeight-svgBarHeight)/2

		canvas.Roundrect(barX, barY, barW, svgBarHeight, 3, 3, "fill:"+string(barColor(task.Resource, colors)))

		// Dim the weekend days the bar spans over.
		for d := range task.CalendarDuration {
			if day := task.EffectiveStart.AddDays(d); domain.IsWeekend(day) {
				canvas.Rect(barX+d*svgDayWidth, barY, svgDayWidth, svgBarHeight,
					"fill:"+string(style.White)+";fill-opacity:0.45")
			}
		}

		if !task.Resource.IsZero() {
			canvas.Text(barX+barW+6, center+4, task.Resource.String(), svgTextStyle(10, style.Slate, false))
		}
	}
}

// drawDependencies connects each task bar to the bars it waits on.
func (r *SVG) drawDependencies(canvas *svgo.SVG, schedule *domain.Schedule, first domain.Date) {
	rowOf := make(map[domain.ID]int, len(schedule.Tasks))
	taskOf := make(map[domain.ID]domain.ResolvedTask, len(schedule.Tasks))
	for i, task := range schedule.Tasks {
		rowOf[task.ID] = i
		taskOf[task.ID] = task
	}

	for _, task := range schedule.Tasks {
		toX := svgGutter + first.DaysUntil(task.EffectiveStart)*svgDayWidth
		toY := svgHeader + rowOf[task.ID]*svgRowHeight + svgRowHeight/2

		for _, dep := range task.Dependencies {
			depTask, ok := taskOf[dep]
			if !ok {
				continue
			}
			fromX := svgGutter + (first.DaysUntil(depTask.End)+1)*svgDayWidth
			fromY := svgHeader + rowOf[dep]*svgRowHeight + svgRowHeight/2

			canvas.Line(fromX, fromY, toX, toY,
				"stroke:"+string(style.Slate)+";stroke-opacity:0.6;stroke-dasharray:3,3")
		}
	}
}

// resourceColors assigns palette colors to resources in presentation order.
func resourceColors(schedule *domain.Schedule) map[domain.Resource]lipgloss.Color {
	colors := make(map[domain.Resource]lipgloss.Color)
	for i, res := range schedule.Resources() {
		colors[res] = style.ChartPalette[i%len(style.ChartPalette)]
	}
	return colors
}

func barColor(res domain.Resource, colors map[domain.Resource]lipgloss.Color) lipgloss.Color {
	if color, ok := colors[res]; ok {
		return color
	}
	return style.Slate
}

func svgTextStyle(size int, color lipgloss.Color, bold bool) string {
	s := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:%s", size, string(color))
	if bold {
		s += ";font-weight:bold"
	}
	return s
}

// errWriter lets the chart drawing run uninterrupted and surfaces the first
// write failure at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}

func (e *errWriter) result() error {
	if e.err != nil {
		return zerr.Wrap(e.err, domain.ErrRenderFailed.Error())
	}
	return nil
}

// Package app implements the application layer for ganttify.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kylemshaw/ganttify/internal/adapters/render"
	"github.com/kylemshaw/ganttify/internal/adapters/telemetry"
	"github.com/kylemshaw/ganttify/internal/adapters/watcher"
	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
	"github.com/kylemshaw/ganttify/internal/engine/scheduler"
	"github.com/kylemshaw/ganttify/internal/settings"
	"github.com/kylemshaw/ganttify/internal/ui/output"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	scheduler *scheduler.Scheduler
	exporter  ports.Exporter
	watcher   ports.Watcher
	cache     *watcher.ContentCache
	logger    ports.Logger
	tracer    ports.Tracer
	settings  *settings.Settings

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	sched *scheduler.Scheduler,
	exporter ports.Exporter,
	watch ports.Watcher,
	cache *watcher.ContentCache,
	log ports.Logger,
	tracer ports.Tracer,
	cfg *settings.Settings,
) *App {
	a := &App{
		loader:    loader,
		scheduler: sched,
		exporter:  exporter,
		watcher:   watch,
		cache:     cache,
		logger:    log,
		tracer:    tracer,
		settings:  cfg,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	if cfg.Trace.Enabled {
		a.EnableTracing()
	}
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects rendered output away from os.Stdout.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithStderr redirects status output away from os.Stderr.
// This is primarily used for testing.
func (a *App) WithStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// EnableTracing installs an OpenTelemetry provider that reports span
// timings through the application logger. The tracer adapter resolves
// against the global provider, so spans stay noops until this runs.
func (a *App) EnableTracing() {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewBridge(a.logger)),
	)
	otel.SetTracerProvider(tp)
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// ProjectPath is the project file to load; empty means discover it
	// from the working directory.
	ProjectPath string
	// Format selects the renderer. Empty falls back to the output file
	// extension, then to the configured default.
	Format string
	// Output writes the rendered schedule to a file instead of stdout.
	Output string
	// Width bounds the table renderer's line width (0 = auto).
	Width int
	// NoColor disables styled output.
	NoColor bool
}

// Render resolves the project and renders the schedule to stdout or,
// when an output path is set, to a file.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	path, err := a.projectPath(opts.ProjectPath)
	if err != nil {
		return err
	}

	schedule, err := a.loadAndResolve(ctx, path)
	if err != nil {
		return err
	}

	format := a.pickFormat(opts)
	width := opts.Width
	if width == 0 {
		width = a.settings.Render.Width
	}

	renderer, err := render.New(format, width)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		_, span := a.tracer.Start(ctx, "export", ports.WithAttributes(map[string]any{
			"path":   opts.Output,
			"format": format,
		}))
		defer span.End()

		if err := a.exporter.Export(opts.Output, renderer, schedule); err != nil {
			span.RecordError(err)
			return err
		}
		return nil
	}

	a.applyColorProfile(opts.NoColor)

	_, span := a.tracer.Start(ctx, "render", ports.WithAttributes(map[string]any{
		"format": format,
	}))
	defer span.End()

	if err := renderer.Render(a.stdout, schedule); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Validate loads and resolves the project without rendering. The resolved
// schedule comes back so callers can report what was checked.
func (a *App) Validate(ctx context.Context, projectPath string) (*domain.Schedule, error) {
	path, err := a.projectPath(projectPath)
	if err != nil {
		return nil, err
	}
	return a.loadAndResolve(ctx, path)
}

// projectPath resolves the project file to use: the explicit path when
// given, otherwise discovery from the working directory.
func (a *App) projectPath(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	return a.loader.Discover(".")
}

func (a *App) loadAndResolve(ctx context.Context, path string) (*domain.Schedule, error) {
	ctx, span := a.tracer.Start(ctx, "load", ports.WithAttributes(map[string]any{
		"path": path,
	}))

	plan, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, err
	}
	span.SetAttribute("tasks", plan.Len())
	span.End()

	return a.scheduler.Resolve(ctx, plan)
}

// pickFormat applies the format precedence: explicit flag, output file
// extension, configured default.
func (a *App) pickFormat(opts RenderOptions) string {
	if opts.Format != "" {
		return opts.Format
	}
	if opts.Output != "" {
		if format, ok := render.FormatForPath(opts.Output); ok {
			return format
		}
	}
	return a.settings.Render.Format
}

// applyColorProfile pins the global style profile to what stdout can
// display, or to plain text when color is switched off.
func (a *App) applyColorProfile(noColor bool) {
	profile := output.ProfileFor(a.stdout)
	if noColor || a.settings.Render.NoColor {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
}

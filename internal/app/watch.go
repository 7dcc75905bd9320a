package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/kylemshaw/ganttify/internal/adapters/render"
	"github.com/kylemshaw/ganttify/internal/adapters/tui"
	"github.com/kylemshaw/ganttify/internal/adapters/watcher"
	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// ProjectPath is the project file to watch; empty means discover it
	// from the working directory.
	ProjectPath string
	// UI selects the front-end: "tui" or "plain". Empty uses the
	// configured default.
	UI string
	// Debounce is the quiet window after a file event before reloading.
	// Zero uses the configured default.
	Debounce time.Duration
	// Width bounds the table renderer's line width (0 = auto).
	Width int
	// NoColor disables styled output in plain mode.
	NoColor bool
}

// reloadSignal asks the watch loop for a reload. force bypasses the
// content cache and the schedule digest check.
type reloadSignal struct {
	force bool
}

// Watch resolves the project, then keeps re-resolving it every time the
// project file changes until the context is canceled or the user quits
// the dashboard.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	path, err := a.projectPath(opts.ProjectPath)
	if err != nil {
		return err
	}

	ui := opts.UI
	if ui == "" {
		ui = a.settings.Watch.UI
	}
	window := opts.Debounce
	if window <= 0 {
		window = a.settings.Watch.Debounce()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, filepath.Dir(path)); err != nil {
		return zerr.Wrap(err, domain.ErrWatchStartFailed.Error())
	}
	defer func() { _ = a.watcher.Stop() }()

	// One pending reload is enough no matter how many triggers pile up,
	// so requests go through a single-slot channel.
	reloads := make(chan reloadSignal, 1)
	request := func(sig reloadSignal) {
		select {
		case reloads <- sig:
		default:
		}
	}
	request(reloadSignal{force: true})

	debouncer := watcher.NewDebouncer(window, func([]string) {
		request(reloadSignal{})
	})

	g, ctx := errgroup.WithContext(ctx)

	// Event pump: only changes to the project file itself count. Remove
	// and rename drop the cached content hash so the rewritten file is
	// always treated as changed.
	g.Go(func() error {
		for event := range a.watcher.Events() {
			if filepath.Clean(event.Path) != path {
				continue
			}
			if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
				a.cache.Forget(event.Path)
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	if ui == "plain" {
		a.watchPlain(ctx, g, path, opts, reloads)
	} else {
		a.watchDashboard(ctx, g, cancel, path, reloads, request)
	}

	return g.Wait()
}

// watchDashboard runs the bubbletea front-end. The program owns the
// terminal; reload results arrive as messages.
func (a *App) watchDashboard(
	ctx context.Context,
	g *errgroup.Group,
	cancel context.CancelFunc,
	path string,
	reloads <-chan reloadSignal,
	request func(reloadSignal),
) {
	model := tui.NewModel(a.stderr, path, func() {
		request(reloadSignal{force: true})
	})
	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	program := tea.NewProgram(model, teaOpts...)

	g.Go(func() error {
		// Quitting the dashboard shuts the whole watch session down.
		defer cancel()
		_, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		var lastDigest uint64
		for {
			select {
			case <-ctx.Done():
				return nil
			case sig := <-reloads:
				schedule, err := a.reload(ctx, path, sig.force, &lastDigest)
				switch {
				case err != nil:
					program.Send(tui.MsgReloadFailed{Err: err, At: time.Now()})
				case schedule != nil:
					program.Send(tui.MsgScheduleUpdated{Schedule: schedule, At: time.Now()})
				}
			}
		}
	})
}

// watchPlain re-renders the table to stdout on every effective change.
func (a *App) watchPlain(
	ctx context.Context,
	g *errgroup.Group,
	path string,
	opts WatchOptions,
	reloads <-chan reloadSignal,
) {
	a.applyColorProfile(opts.NoColor)

	width := opts.Width
	if width == 0 {
		width = a.settings.Render.Width
	}
	renderer := render.NewTable(width)

	g.Go(func() error {
		var lastDigest uint64
		for {
			select {
			case <-ctx.Done():
				return nil
			case sig := <-reloads:
				schedule, err := a.reload(ctx, path, sig.force, &lastDigest)
				switch {
				case err != nil:
					a.logger.Error(err)
				case schedule != nil:
					a.logger.Info(fmt.Sprintf("%s resolved %d task(s) from %s",
						time.Now().Format("15:04:05"), len(schedule.Tasks), filepath.Base(path)))
					if err := renderer.Render(a.stdout, schedule); err != nil {
						a.logger.Error(err)
					}
				}
			}
		}
	})
}

// reload runs one load-and-resolve cycle. It returns (nil, nil) when the
// file content or the resolved schedule is unchanged and no re-render is
// needed; force skips both checks.
func (a *App) reload(ctx context.Context, path string, force bool, lastDigest *uint64) (*domain.Schedule, error) {
	changed, err := a.cache.Changed(path)
	if err != nil {
		return nil, err
	}
	if !changed && !force {
		return nil, nil
	}

	schedule, err := a.loadAndResolve(ctx, path)
	if err != nil {
		return nil, err
	}

	digest := schedule.Digest()
	if digest == *lastDigest && !force {
		return nil, nil
	}
	*lastDigest = digest
	return schedule, nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/kylemshaw/ganttify/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/kylemshaw/ganttify/internal/adapters/export"    //nolint:depguard // Wired in app layer
	"github.com/kylemshaw/ganttify/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/kylemshaw/ganttify/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/kylemshaw/ganttify/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/kylemshaw/ganttify/internal/core/ports"
	"github.com/kylemshaw/ganttify/internal/engine/scheduler"
	"github.com/kylemshaw/ganttify/internal/settings"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *settings.Settings
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			export.NodeID,
			watcher.WatcherNodeID,
			watcher.ContentCacheNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			settings.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*watcher.ContentCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sched, exporter, watch, cache, log, tracer, cfg), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      mainApp,
		Logger:   log,
		Settings: cfg,
	}, nil
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/kylemshaw/ganttify/internal/adapters/config"
	_ "github.com/kylemshaw/ganttify/internal/adapters/export"
	_ "github.com/kylemshaw/ganttify/internal/adapters/logger"
	_ "github.com/kylemshaw/ganttify/internal/adapters/telemetry"
	_ "github.com/kylemshaw/ganttify/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/kylemshaw/ganttify/internal/app"
	_ "github.com/kylemshaw/ganttify/internal/engine/scheduler"
	_ "github.com/kylemshaw/ganttify/internal/settings"
)

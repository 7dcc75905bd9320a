package settings

import (
	"context"
	"fmt"

	"github.com/grindlemire/graft"

	"github.com/kylemshaw/ganttify/internal/adapters/logger"
	"github.com/kylemshaw/ganttify/internal/core/domain"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// NodeID is the unique identifier for the settings Graft node.
const NodeID graft.ID = "app.settings"

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Settings, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			dir, err := domain.DefaultSettingsDir()
			if err != nil {
				log.Warn(fmt.Sprintf("settings: no user config dir, using defaults: %v", err))
				return Default(), nil
			}
			return Load(dir)
		},
	})
}

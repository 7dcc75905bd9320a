package export

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/kylemshaw/ganttify/internal/adapters/logger"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

// NodeID is the unique identifier for the Exporter Graft node.
const NodeID graft.ID = "adapter.exporter"

func init() {
	graft.Register(graft.Node[ports.Exporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Exporter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileExporter(log), nil
		},
	})
}

package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"

	"github.com/kylemshaw/ganttify/internal/adapters/logger"
	"github.com/kylemshaw/ganttify/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ContentCacheNodeID is the unique identifier for the content cache Graft node.
	ContentCacheNodeID graft.ID = "adapter.content_cache"
)

// DefaultDebounceWindow is the default time window for coalescing file
// events before a reload.
const DefaultDebounceWindow = 250 * time.Millisecond

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})

	graft.Register(graft.Node[*ContentCache]{
		ID:        ContentCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*ContentCache, error) {
			return NewContentCache(), nil
		},
	})
}

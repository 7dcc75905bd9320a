package watcher

import (
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// ContentCache remembers a fingerprint of each file it has seen, so watch
// mode can tell real edits from touch events and editor metadata churn.
type ContentCache struct {
	mu   sync.Mutex
	sums map[unique.Handle[string]]uint64
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{
		sums: make(map[unique.Handle[string]]uint64),
	}
}

// Changed reads the file at path and reports whether its content differs
// from the previous call. The first observation of a path reports true.
func (c *ContentCache) Changed(path string) (bool, error) {
	// #nosec G304 -- path comes from the file watcher
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
		return false, zerr.With(err, "path", path)
	}

	sum := xxhash.Sum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	handle := unique.Make(path)
	old, seen := c.sums[handle]
	c.sums[handle] = sum

	return !seen || old != sum, nil
}

// Forget drops the entry for path. The next Changed for it reports true.
func (c *ContentCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sums, unique.Make(path))
}

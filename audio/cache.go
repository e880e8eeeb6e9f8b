package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/core"
)

// ClipPair is the decoded form of one track: intro and loop buffers
// Never mutated after insertion into the cache
type ClipPair struct {
	Intro *beep.Buffer
	Loop  *beep.Buffer
}

// pendingLoad is the shared handle for one in-flight fetch+decode
// done is closed exactly once, after pair/err are set
type pendingLoad struct {
	done chan struct{}
	pair *ClipPair
	err  error
}

// clipCache holds decoded tracks for the process lifetime and deduplicates
// concurrent loads. Tracks are few and small; there is no eviction.
type clipCache struct {
	mu       sync.Mutex
	clips    map[core.TrackID]*ClipPair
	inflight map[core.TrackID]*pendingLoad
}

func newClipCache() *clipCache {
	return &clipCache{
		clips:    make(map[core.TrackID]*ClipPair),
		inflight: make(map[core.TrackID]*pendingLoad),
	}
}

// get returns the cached pair for id, if present
func (c *clipCache) get(id core.TrackID) (*ClipPair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	pair, ok := c.clips[id]
	return pair, ok
}

// ensureLoad returns the pending handle for id, starting a load via fetch if
// none is in flight. Exactly one fetch runs per track id regardless of caller
// count; the registry entry is removed when the load settles either way.
func (c *clipCache) ensureLoad(id core.TrackID, fetch func() (*ClipPair, error)) *pendingLoad {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pair, ok := c.clips[id]; ok {
		p := &pendingLoad{done: make(chan struct{}), pair: pair}
		close(p.done)
		return p
	}
	if p, ok := c.inflight[id]; ok {
		return p
	}

	p := &pendingLoad{done: make(chan struct{})}
	c.inflight[id] = p

	go func() {
		pair, err := fetch()

		c.mu.Lock()
		if err == nil {
			c.clips[id] = pair
		}
		delete(c.inflight, id)
		c.mu.Unlock()

		p.pair = pair
		p.err = err
		close(p.done)
	}()

	return p
}

// loading reports whether a load for id is currently in flight
func (c *clipCache) loading(id core.TrackID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[id]
	return ok
}

package entity

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/entitytype/internal/core/kinds"
)

const cacheShardCount = 16

// accessorCache maps capabilities to resolved accessors. Keys are spread over
// fixed shards by hash so concurrent systems asking for different
// capabilities rarely share a lock. The zero value is ready to use.
type accessorCache struct {
	shards [cacheShardCount]cacheShard
}

type cacheShard struct {
	mx      sync.RWMutex
	entries map[kinds.Capability]*Accessors
}

func (c *accessorCache) shardFor(capability kinds.Capability) *cacheShard {
	return &c.shards[xxhash.Sum64String(string(capability))%cacheShardCount]
}

func (c *accessorCache) load(capability kinds.Capability) (*Accessors, bool) {
	sh := c.shardFor(capability)
	sh.mx.RLock()
	a, ok := sh.entries[capability]
	sh.mx.RUnlock()
	return a, ok
}

// loadOrStore publishes a unless an entry already exists, and returns the
// entry that ended up in the cache.
func (c *accessorCache) loadOrStore(capability kinds.Capability, a *Accessors) (actual *Accessors, loaded bool) {
	sh := c.shardFor(capability)
	sh.mx.Lock()
	defer sh.mx.Unlock()

	if existing, ok := sh.entries[capability]; ok {
		return existing, true
	}
	if sh.entries == nil {
		sh.entries = make(map[kinds.Capability]*Accessors)
	}
	sh.entries[capability] = a
	return a, false
}

func (c *accessorCache) len() int {
	n := 0
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mx.RLock()
		n += len(sh.entries)
		sh.mx.RUnlock()
	}
	return n
}

func (c *accessorCache) reset() {
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mx.Lock()
		sh.entries = nil
		sh.mx.Unlock()
	}
}

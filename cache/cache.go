// Package cache memoizes stroked outlines.
//
// Stroking is a pure function of the source outline, the configuration and
// the open flag, so results can be shared freely. Cache is a sharded LRU
// keyed on a hash of the outline; each entry keeps a copy of its source so
// that hash collisions are detected and recomputed rather than served.
//
// Every shard owns one Stroker, reused under the shard lock.
package cache

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gogpu/stroke"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Key identifies a cached stroke.
type Key struct {
	Hash   uint64
	Config stroke.Config
	Open   bool
}

// Stats holds cache counters.
type Stats struct {
	Len        int
	Capacity   int // per shard
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Collisions uint64
	HitRate    float64
}

type entry struct {
	key    Key
	source *stroke.Outline
	result *stroke.Outline

	prev, next *entry
}

type shard struct {
	mu      sync.Mutex
	entries map[Key]*entry
	order   lru
	stroker *stroke.Stroker
}

// Cache is a concurrency-safe stroke cache.
type Cache struct {
	shards   [ShardCount]*shard
	capacity int
	hash     func(*stroke.Outline) uint64

	hits       atomic.Uint64
	misses     atomic.Uint64
	evictions  atomic.Uint64
	collisions atomic.Uint64
}

// New creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity, hash: HashOutline}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[Key]*entry)}
	}
	return c
}

// HashOutline computes the FNV-1a hash of the points, tags and contour ends
// of o.
func HashOutline(o *stroke.Outline) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 16*len(o.Points)+len(o.Tags)+8*len(o.Contours))
	for _, p := range o.Points {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Y))
	}
	for _, t := range o.Tags {
		buf = append(buf, byte(t))
	}
	for _, c := range o.Contours {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
	}
	_, _ = h.Write(buf) // fnv.Write never returns an error
	return h.Sum64()
}

// Stroke returns the stroke of o with cfg, computing it on a miss. The
// result is a private copy the caller may modify. Failed strokes are not
// cached.
func (c *Cache) Stroke(o *stroke.Outline, cfg stroke.Config, open bool) (*stroke.Outline, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := Key{Hash: c.hash(o), Config: cfg, Open: open}
	sh := c.shards[key.Hash&shardMask]

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e, ok := sh.entries[key]; ok {
		if sameOutline(e.source, o) {
			sh.order.touch(e)
			c.hits.Add(1)
			return e.result.Clone(), nil
		}
		c.collisions.Add(1)
		sh.order.remove(e)
		delete(sh.entries, key)
	}
	c.misses.Add(1)

	result, err := sh.stroke(o, cfg, open)
	if err != nil {
		return nil, err
	}

	for sh.order.len >= c.capacity {
		old := sh.order.popBack()
		if old == nil {
			break
		}
		delete(sh.entries, old.key)
		c.evictions.Add(1)
		stroke.Logger().Debug("cache: evicted", "hash", old.key.Hash, "points", len(old.result.Points))
	}
	e := &entry{key: key, source: o.Clone(), result: result}
	sh.entries[key] = e
	sh.order.pushFront(e)
	return result.Clone(), nil
}

// stroke runs the shard's Stroker. The caller holds sh.mu.
func (sh *shard) stroke(o *stroke.Outline, cfg stroke.Config, open bool) (*stroke.Outline, error) {
	switch {
	case sh.stroker == nil:
		s, err := stroke.New(cfg)
		if err != nil {
			return nil, err
		}
		sh.stroker = s
	case sh.stroker.Config() != cfg:
		if err := sh.stroker.SetConfig(cfg); err != nil {
			return nil, err
		}
	default:
		sh.stroker.Rewind()
	}
	if err := sh.stroker.ParseOutline(o, open); err != nil {
		sh.stroker.Rewind()
		return nil, err
	}
	return sh.stroker.Export()
}

func sameOutline(a, b *stroke.Outline) bool {
	return slices.Equal(a.Points, b.Points) &&
		slices.Equal(a.Tags, b.Tags) &&
		slices.Equal(a.Contours, b.Contours)
}

// Len returns the total number of entries across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.Lock()
		total += len(sh.entries)
		sh.mu.Unlock()
	}
	return total
}

// Clear removes all entries. Counters are kept.
func (c *Cache) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		clear(sh.entries)
		sh.order.clear()
		sh.mu.Unlock()
	}
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:        c.Len(),
		Capacity:   c.capacity,
		Hits:       hits,
		Misses:     misses,
		Evictions:  c.evictions.Load(),
		Collisions: c.collisions.Load(),
		HitRate:    rate,
	}
}

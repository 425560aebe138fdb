package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/metrics"
	"github.com/guttosm/ap-savings-service/internal/service/cache"
)

// ShardedCache spreads estimates across several LRU shards to reduce lock contention.
type ShardedCache struct {
	shards    []*ttlCache
	numShards int
	shardMask int
}

// NewShardedCache creates a sharded cache with the given total capacity and TTL.
// numShards is rounded up to a power of two; values <= 0 default to 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{shards: shards, numShards: n, shardMask: n - 1}
}

func (sc *ShardedCache) shard(key int) *ttlCache {
	return sc.shards[key&sc.shardMask]
}

// Get retrieves an estimate from the owning shard.
func (sc *ShardedCache) Get(key int) (model.SavingsEstimate, bool) {
	return sc.shard(key).Get(key)
}

// Set stores an estimate in the owning shard.
func (sc *ShardedCache) Set(key int, value model.SavingsEstimate) {
	sc.shard(key).Set(key, value)
}

// Stop stops every shard's cleanup loop.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics aggregates the metrics of all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a mutex-guarded LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[int]*list.Element
	order     *list.List
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       int
	value     model.SavingsEstimate
	expiresAt time.Time
}

// newTTLCache creates a cache and starts its background cleanup loop.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached estimate for key unless it is missing or expired.
func (c *ttlCache) Get(key int) (model.SavingsEstimate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.SavingsEstimate{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.SavingsEstimate{}, false
	}

	c.order.MoveToFront(el)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set inserts or refreshes key, evicting the least recently used entry when full.
func (c *ttlCache) Set(key int, value model.SavingsEstimate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns a snapshot of the cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if current.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

func (c *ttlCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}

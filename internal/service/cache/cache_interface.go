// Package cache defines the estimate cache abstraction and its shared Redis backend.
package cache

import "github.com/guttosm/ap-savings-service/internal/domain/model"

// Cache stores savings estimates under a quantized input key.
type Cache interface {
	Get(key int) (model.SavingsEstimate, bool)
	Set(key int, value model.SavingsEstimate)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		numShards  int
		wantShards int
		wantPer    int
	}{
		{name: "default shards when zero", capacity: 160, numShards: 0, wantShards: 16, wantPer: 10},
		{name: "default shards when negative", capacity: 160, numShards: -1, wantShards: 16, wantPer: 10},
		{name: "rounds up to power of 2", capacity: 100, numShards: 3, wantShards: 4, wantPer: 25},
		{name: "exact power of 2", capacity: 100, numShards: 8, wantShards: 8, wantPer: 12},
		{name: "capacity smaller than shard count", capacity: 2, numShards: 4, wantShards: 4, wantPer: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewShardedCache(tt.capacity, time.Minute, tt.numShards)
			defer sc.Stop()

			assert.Equal(t, tt.wantShards, sc.numShards)
			assert.Equal(t, tt.wantShards-1, sc.shardMask)
			assert.Len(t, sc.shards, tt.wantShards)
			assert.Equal(t, tt.wantPer, sc.shards[0].capacity)
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	keys := []int{1001, 3015, 22650, 25003}
	for _, k := range keys {
		sc.Set(k, estimateFor(float64(k/100)/1000, k%100))
	}

	for _, k := range keys {
		got, ok := sc.Get(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, k%100, got.CostPerDay)
	}

	_, ok := sc.Get(9999)
	assert.False(t, ok)

	m := sc.Metrics()
	assert.Equal(t, 4, m.Size)
	assert.Equal(t, 64, m.Capacity)
	assert.Equal(t, int64(4), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
}

func TestShardedCache_ShardDistribution(t *testing.T) {
	sc := NewShardedCache(1600, time.Minute, 16)
	defer sc.Stop()

	for cost := 1; cost <= 50; cost++ {
		sc.Set(3000+cost, estimateFor(0.03, cost))
	}

	used := 0
	for _, s := range sc.shards {
		if s.Metrics().Size > 0 {
			used++
		}
	}
	assert.Equal(t, 16, used)
}

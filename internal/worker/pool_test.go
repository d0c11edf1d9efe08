package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// noopProcessFunc returns a process function that completes every game.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Seed: item.Seed, Index: item.Index, Completed: true, MoveCount: len(item.Moves)}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Seed: item.Seed, Index: item.Index, Completed: true}
	}
}

// collectResults drains the result channel.
func collectResults(pool *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

func submitAll(t *testing.T, pool *Pool, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := pool.Submit(context.Background(), WorkItem{Seed: i + 1, Moves: []string{"1a"}, Index: i}); err != nil {
			t.Errorf("Submit: %v", err)
		}
	}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		submitAll(t, pool, numItems)
		pool.Close()
	}()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Errorf("results = %d; want %d", len(results), numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolResultOrder tests that every result arrives, whatever the order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Seed: item.Seed, Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	submitAll(t, pool, numItems)
	go pool.Close()

	seen := make(map[int]int)
	for result := range pool.Results() {
		seen[result.Index] = result.Seed
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if seen[i] != i+1 {
			t.Errorf("index %d has seed %d; want %d", i, seen[i], i+1)
		}
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	submitAll(t, pool, numItems)

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	block := make(chan struct{})
	pool := NewPool(func(item WorkItem) ProcessResult {
		<-block
		return ProcessResult{}
	}, WithBufferSize(2))

	// Nothing is consuming yet, so the buffer fills after two
	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}
	if pool.TrySubmit(WorkItem{Index: 2}) {
		t.Error("TrySubmit on a full buffer should fail")
	}

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	close(block)
	pool.Start()
	pool.Close()
}

// TestPoolSubmitCancelled tests that a blocked Submit gives up on cancel.
func TestPoolSubmitCancelled(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(1))
	ctx, cancel := context.WithCancel(context.Background())

	if err := pool.Submit(ctx, WorkItem{Index: 0}); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	cancel()
	if err := pool.Submit(ctx, WorkItem{Index: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Submit after cancel = %v; want context.Canceled", err)
	}

	pool.Start()
	go pool.Close()
	if got := len(collectResults(pool)); got != 1 {
		t.Errorf("results = %d; want 1", got)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		submitAll(t, pool, numItems)
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

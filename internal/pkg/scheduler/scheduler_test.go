package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_ImmediateFirstTick(t *testing.T) {
	var ticks int64
	task := NewTask("test", time.Hour, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	})

	task.Start(context.Background())
	defer task.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticks) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestTask_PeriodicTicks(t *testing.T) {
	var ticks int64
	task := NewTask("test", 10*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	})

	task.Start(context.Background())
	defer task.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticks) >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestTask_StopHaltsTicks(t *testing.T) {
	var ticks int64
	task := NewTask("test", 5*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	})

	task.Start(context.Background())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticks) >= 2
	}, time.Second, time.Millisecond)

	task.Stop()
	assert.False(t, task.Running())

	// No tick may fire after Stop returns
	after := atomic.LoadInt64(&ticks)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&ticks))
}

func TestTask_StartTwiceIsNoop(t *testing.T) {
	var ticks int64
	task := NewTask("test", time.Hour, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	})

	task.Start(context.Background())
	task.Start(context.Background())
	defer task.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticks) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&ticks))
}

func TestTask_StopWithoutStart(t *testing.T) {
	task := NewTask("test", time.Hour, func(ctx context.Context) {})
	task.Stop()
	assert.False(t, task.Running())
}

func TestTask_ParentContextCancelStopsLoop(t *testing.T) {
	var ticks int64
	ctx, cancel := context.WithCancel(context.Background())
	task := NewTask("test", 5*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	})

	task.Start(ctx)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := atomic.LoadInt64(&ticks)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&ticks))

	task.Stop()
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/prasongk/fleetview/internal/pkg/logger"
)

// TaskFunc is one tick of a periodic task.
type TaskFunc func(ctx context.Context)

// Task is a cancellable periodic task: the function runs once immediately on
// Start and then on every interval tick until Stop. Stop waits for the loop
// goroutine to exit, so no tick can fire after Stop returns.
type Task struct {
	name     string
	interval time.Duration
	fn       TaskFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewTask creates a periodic task. It does not start it.
func NewTask(name string, interval time.Duration, fn TaskFunc) *Task {
	return &Task{
		name:     name,
		interval: interval,
		fn:       fn,
	}
}

// Start launches the task loop. Starting an already running task is a no-op.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	logger.Info("Starting periodic task",
		logger.String("task", t.name),
		logger.Duration("interval", t.interval))

	go t.run(ctx)
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)

	// Immediate first tick
	t.fn(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fn(ctx)
		}
	}
}

// Stop cancels the task and waits for the loop to exit. Stopping a task that
// is not running is a no-op.
func (t *Task) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	cancel := t.cancel
	done := t.done
	t.running = false
	t.mu.Unlock()

	cancel()
	<-done

	logger.Info("Stopped periodic task", logger.String("task", t.name))
}

// Running reports whether the task loop is active.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

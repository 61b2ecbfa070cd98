package ports

import (
	"context"
	"errors"
)

var ErrTaskQueueFull = errors.New("task queue is full")

// Task is a unit of background work. The context is owned by the queue.
type Task func(ctx context.Context) error

// TaskQueue runs tasks off the request path.
type TaskQueue interface {
	// Submit enqueues task without blocking. Returns ErrTaskQueueFull when the
	// queue is saturated or already stopped.
	Submit(name string, task Task) error
}

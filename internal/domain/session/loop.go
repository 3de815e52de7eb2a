package session

import (
	"context"
	"fmt"
	"sync"
)

type task struct {
	fn   func(*Manager) error
	done chan error
}

// Loop owns a Manager on a single goroutine and runs submitted functions
// one at a time in submission order.
type Loop struct {
	manager   *Manager
	tasks     chan task
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewLoop starts the goroutine that owns manager. The caller must not use
// manager directly afterwards.
func NewLoop(manager *Manager) *Loop {
	l := &Loop{
		manager: manager,
		tasks:   make(chan task),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case t := <-l.tasks:
			t.done <- l.execute(t.fn)
		case <-l.quit:
			return
		}
	}
}

func (l *Loop) execute(fn func(*Manager) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session loop task panicked: %v", r)
		}
	}()
	return fn(l.manager)
}

// Do runs fn on the loop goroutine and returns its error. If ctx ends
// after fn was accepted, fn still runs but Do returns ctx.Err().
func (l *Loop) Do(ctx context.Context, fn func(*Manager) error) error {
	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case l.tasks <- t:
	case <-l.quit:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the loop after the running task finishes
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
	<-l.stopped
}

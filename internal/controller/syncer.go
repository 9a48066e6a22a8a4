package controller

import (
	"context"
	"log"
	"sync"
)

// Syncer applies persistence writes off the UI goroutine. Writes are keyed by
// the store key they replace; a newer write for a key that has not been
// applied yet supersedes the older one, so the store always ends up with the
// last submitted value. Failures are logged and dropped.
type Syncer struct {
	mu      sync.Mutex
	pending map[string]func() error
	order   []string
	closed  bool

	writeMu sync.Mutex // serializes draining between the worker and Flush
	wake    chan struct{}
	done    chan struct{}
}

// NewSyncer starts the background writer.
func NewSyncer() *Syncer {
	s := &Syncer{
		pending: make(map[string]func() error),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Submit queues write for key and returns immediately. After Close the write
// runs synchronously so nothing is lost during shutdown.
func (s *Syncer) Submit(key string, write func() error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		apply(key, write)
		return
	}
	if _, queued := s.pending[key]; !queued {
		s.order = append(s.order, key)
	}
	s.pending[key] = write
	select {
	case s.wake <- struct{}{}:
	default:
	}
	s.mu.Unlock()
}

// Flush applies every queued write before returning.
func (s *Syncer) Flush() {
	s.drain()
}

// Close stops the worker after it has applied the queued writes, or when ctx
// is done, whichever comes first.
func (s *Syncer) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.wake)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Syncer) run() {
	defer close(s.done)
	for range s.wake {
		s.drain()
	}
	s.drain()
}

func (s *Syncer) drain() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	order, pending := s.order, s.pending
	s.order, s.pending = nil, make(map[string]func() error)
	s.mu.Unlock()

	for _, key := range order {
		apply(key, pending[key])
	}
}

func apply(key string, write func() error) {
	if write == nil {
		return
	}
	if err := write(); err != nil {
		log.Printf("persist %s failed: %v", key, err)
	}
}

package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
)

// client is one connected stream consumer
type client struct {
	send chan []byte
	// closed by the hub on unregister or Stop
	done chan struct{}
}

// enqueue queues msg without blocking. When the buffer is full the oldest
// pending frame is discarded; it reports whether a frame was dropped.
func (c *client) enqueue(msg []byte) bool {
	select {
	case c.send <- msg:
		return false
	default:
	}

	dropped := false
	select {
	case <-c.send:
		dropped = true
	default:
	}

	select {
	case c.send <- msg:
	default:
		dropped = true
	}
	return dropped
}

// Hub fans registry snapshots out to WebSocket clients. Snapshots arrive on
// the session loop goroutine and are never blocked on slow clients.
type Hub struct {
	loop       *session.Loop
	bufferSize int
	metrics    *monitoring.Metrics
	logger     *zap.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	sub     session.Subscription
	started bool
}

// NewHub creates a hub. bufferSize is the per-client frame queue length.
func NewHub(loop *session.Loop, bufferSize int, logger *zap.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		loop:       loop,
		bufferSize: bufferSize,
		logger:     logger,
		clients:    make(map[*client]struct{}),
	}
}

// WithMetrics adds metrics tracking to the hub
func (h *Hub) WithMetrics(metrics *monitoring.Metrics) *Hub {
	h.metrics = metrics
	return h
}

// Start subscribes to the registry and captures the current snapshot
func (h *Hub) Start(ctx context.Context) error {
	return h.loop.Do(ctx, func(m *session.Manager) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.started {
			return nil
		}
		data, err := encodeSnapshot(m.Sessions())
		if err != nil {
			return err
		}
		h.latest = data
		h.sub = m.Subscribe(h.publish)
		h.started = true
		return nil
	})
}

// Stop unsubscribes and disconnects every client
func (h *Hub) Stop(ctx context.Context) error {
	err := h.loop.Do(ctx, func(*session.Manager) error {
		h.sub.Cancel()
		return nil
	})

	h.mu.Lock()
	for c := range h.clients {
		close(c.done)
		delete(h.clients, c)
	}
	h.started = false
	h.mu.Unlock()
	return err
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) publish(snap session.Snapshot) {
	data, err := encodeSnapshot(snap)
	if err != nil {
		h.logger.Error("Failed to encode snapshot", zap.Error(err), zap.Uint64("version", snap.Version))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		h.deliver(c, data)
	}
}

// deliver must be called with mu held
func (h *Hub) deliver(c *client, data []byte) {
	if c.enqueue(data) && h.metrics != nil {
		h.metrics.IncWSDropped()
	}
}

// register adds a client and queues the latest snapshot for it
func (h *Hub) register() *client {
	c := &client{
		send: make(chan []byte, h.bufferSize),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		h.deliver(c, h.latest)
	}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.IncWSConnections()
	}
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.done)
	}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.DecWSConnections()
	}
}

// reply queues a control frame for a single client
func (h *Hub) reply(c *client, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		h.deliver(c, data)
	}
}

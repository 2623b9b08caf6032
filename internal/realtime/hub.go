package realtime

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

const defaultBuffer = 16

// Hub is the in-process topic broker behind the SSE subscription endpoint.
// A publish never waits: a subscriber whose buffer is full misses the message.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*Subscription]struct{}
	buffer  int
	dropped atomic.Int64
	log     *zap.Logger
}

type Subscription struct {
	topic string
	ch    chan LocationMessage
	hub   *Hub
	once  sync.Once
}

func NewHub(buffer int, log *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
		log:    log.With(zap.String("component", "hub")),
	}
}

func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan LocationMessage, h.buffer),
		hub:   h,
	}

	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	h.log.Debug("Subscribed", zap.String("topic", topic))
	return sub
}

func (h *Hub) Publish(_ context.Context, topic string, msg LocationMessage) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			total := h.dropped.Add(1)
			h.log.Warn("Subscriber buffer full, message dropped",
				zap.String("topic", topic),
				zap.Int64("dropped_total", total),
			)
		}
	}

	return nil
}

// Subscribers reports the number of live subscriptions on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Dropped counts messages lost to full subscriber buffers since start.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[sub.topic]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.topics, sub.topic)
		}
	}
	close(sub.ch)
}

func (s *Subscription) Topic() string {
	return s.topic
}

// C is closed once the subscription is closed.
func (s *Subscription) C() <-chan LocationMessage {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

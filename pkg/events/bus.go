package events

import (
	"log/slog"
	"sync"
)

// defaultBufferSize is the per-subscription buffer. A subscriber that
// falls this far behind starts losing events; it recovers via catchup.
const defaultBufferSize = 256

// Bus is the in-process publish/subscribe fabric. The orchestrator runs
// as a single instance, so events fan out in memory; durability and
// replay come from the events table, not the bus.
//
// Publish never blocks: a subscription whose buffer is full drops the
// event and counts the drop. WebSocket clients recover dropped events
// through catchup; internal consumers reconcile against the database.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[int]*Subscription
	nextID int
	closed bool
}

// Subscription is one subscriber's feed for a single channel.
type Subscription struct {
	// C delivers published payloads in order.
	C <-chan []byte

	bus     *Bus
	channel string
	id      int
	ch      chan []byte
	dropped int
	mu      sync.Mutex
	once    sync.Once
}

// NewBus creates a new Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]*Subscription)}
}

// Subscribe registers a subscriber for a channel. buffer <= 0 uses the
// default. Close the subscription to release it.
func (b *Bus) Subscribe(channel string, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = defaultBufferSize
	}
	ch := make(chan []byte, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		C:       ch,
		bus:     b,
		channel: channel,
		id:      b.nextID,
		ch:      ch,
	}
	if b.closed {
		sub.once.Do(func() { close(ch) })
		return sub
	}
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]*Subscription)
	}
	b.subs[channel][sub.id] = sub
	return sub
}

// Publish delivers a payload to every subscriber of the channel without
// blocking. Slow subscribers drop the event.
//
// Sends happen under the read lock: subscription channels are only
// closed under the write lock, so a send can never race a close. The
// sends are non-blocking, so holding the lock through delivery is
// cheap.
func (b *Bus) Publish(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[channel] {
		select {
		case sub.ch <- payload:
		default:
			sub.mu.Lock()
			sub.dropped++
			dropped := sub.dropped
			sub.mu.Unlock()
			if dropped == 1 || dropped%100 == 0 {
				slog.Warn("Dropping event for slow subscriber",
					"channel", channel, "dropped_total", dropped)
			}
		}
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// Close shuts the bus down and closes every subscription channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subs {
		for _, sub := range subs {
			sub.once.Do(func() { close(sub.ch) })
		}
	}
	b.subs = make(map[string]map[int]*Subscription)
}

// Dropped returns how many events this subscription has lost.
func (s *Subscription) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close releases the subscription. Safe to call more than once. The
// channel is closed under the bus write lock so no in-flight Publish
// can still be sending on it.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if subs, ok := s.bus.subs[s.channel]; ok {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(s.bus.subs, s.channel)
		}
	}
	s.once.Do(func() { close(s.ch) })
}

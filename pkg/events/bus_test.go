package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub1 := bus.Subscribe("session:a", 8)
	sub2 := bus.Subscribe("session:a", 8)
	other := bus.Subscribe("session:b", 8)
	defer sub1.Close()
	defer sub2.Close()
	defer other.Close()

	bus.Publish("session:a", []byte(`{"n":1}`))

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case got := <-sub.C:
			assert.JSONEq(t, `{"n":1}`, string(got))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}

	select {
	case <-other.C:
		t.Fatal("subscriber on another channel received the event")
	default:
	}
}

func TestBusDropsWhenBufferFull(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe("session:a", 2)
	defer sub.Close()

	for i := 0; i < 5; i++ {
		bus.Publish("session:a", []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	// Buffer holds the first two; the rest were dropped, not blocked on.
	assert.Equal(t, 3, sub.Dropped())

	got := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		select {
		case data := <-sub.C:
			got = append(got, string(data))
		case <-time.After(time.Second):
			t.Fatal("buffered event missing")
		}
	}
	assert.Equal(t, []string{`{"n":0}`, `{"n":1}`}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe("session:a", 8)
	require.Equal(t, 1, bus.SubscriberCount("session:a"))

	sub.Close()
	assert.Equal(t, 0, bus.SubscriberCount("session:a"))

	// Publishing after close must not panic.
	bus.Publish("session:a", []byte(`{}`))

	// Channel is closed so reads complete immediately.
	_, ok := <-sub.C
	assert.False(t, ok)
}

func TestBusPublishDuringConcurrentClose(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	const subscribers = 64
	subs := make([]*Subscription, subscribers)
	for i := range subs {
		subs[i] = bus.Subscribe("session:a", 1)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			bus.Publish("session:a", []byte(`{}`))
		}
	}()

	// Subscriptions closing mid-publish must never turn into a send on
	// a closed channel.
	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(s *Subscription) {
			defer wg.Done()
			s.Close()
		}(sub)
	}
	wg.Wait()
	<-done

	assert.Equal(t, 0, bus.SubscriberCount("session:a"))
}

func TestBusCloseClosesSubscriptions(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("session:a", 8)

	bus.Close()

	_, ok := <-sub.C
	assert.False(t, ok)

	// Close is idempotent and Subscribe after Close yields a closed feed.
	bus.Close()
	late := bus.Subscribe("session:a", 8)
	_, ok = <-late.C
	assert.False(t, ok)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import "testing"

func TestPublishDeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var got []any
	bus.Subscribe("topic", func(topic string, payload any) {
		got = append(got, payload)
	})

	bus.Publish("topic", 1)
	bus.Publish("topic", 2)
	bus.Publish("other", 3)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected payloads [1 2], got %v", got)
	}
}

func TestDuplicateSubscribeIsNoOp(t *testing.T) {
	bus := NewBus()

	calls := 0
	handler := func(topic string, payload any) { calls++ }

	bus.Subscribe("topic", handler)
	bus.Subscribe("topic", handler)

	if n := bus.SubscriberCount("topic"); n != 1 {
		t.Fatalf("subscriber count: got %d, want 1", n)
	}

	bus.Publish("topic", nil)
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	handler := func(topic string, payload any) { calls++ }

	bus.Subscribe("topic", handler)
	bus.Publish("topic", nil)
	bus.Unsubscribe("topic", handler)
	bus.Publish("topic", nil)

	if calls != 1 {
		t.Errorf("handler called %d times after unsubscribe, want 1", calls)
	}
}

func TestHandlerUnsubscribingItselfMidDispatch(t *testing.T) {
	bus := NewBus()

	calls := 0
	var handler Handler
	handler = func(topic string, payload any) {
		calls++
		bus.Unsubscribe(topic, handler)
	}
	bus.Subscribe("topic", handler)

	// The dispatch snapshot makes self-removal safe; the second publish
	// finds no subscribers.
	bus.Publish("topic", nil)
	bus.Publish("topic", nil)

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestPanickingSubscriberDoesNotInterruptDelivery(t *testing.T) {
	bus := NewBus()

	delivered := false
	bus.Subscribe("topic", func(topic string, payload any) {
		panic("subscriber failure")
	})
	bus.Subscribe("topic", func(topic string, payload any) {
		delivered = true
	})

	bus.Publish("topic", nil)

	if !delivered {
		t.Error("second subscriber should receive the event despite the panic")
	}
}

func TestResetDropsAllSubscriptions(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("a", func(string, any) {})
	bus.Subscribe("b", func(string, any) {})

	bus.Reset()

	if bus.SubscriberCount("a") != 0 || bus.SubscriberCount("b") != 0 {
		t.Error("expected no subscribers after Reset")
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("topic", nil)
	bus.Unsubscribe("topic", nil)

	if n := bus.SubscriberCount("topic"); n != 0 {
		t.Errorf("nil handler registered: count %d", n)
	}
}

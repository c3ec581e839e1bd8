// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package events implements the publish/subscribe bus the store uses to
// notify external collaborators of state changes. Topics are plain strings;
// payload shapes are topic-specific.
package events

import (
	"log/slog"
	"reflect"
	"sync"
)

// Handler receives a published event. Handlers run synchronously on the
// publishing goroutine; a panicking handler is logged and never interrupts
// delivery to the remaining subscribers.
type Handler func(topic string, payload any)

// Bus maps topics to subscriber sets. Subscribers are identified by the
// function value, so registering the same handler twice for a topic is a
// no-op for the duplicate. Dispatch iterates a snapshot of the subscriber
// set, which makes a handler unsubscribing itself mid-dispatch well-defined.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[uintptr]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string]map[uintptr]Handler)}
}

// Subscribe registers h for topic. Duplicate registrations are ignored.
func (b *Bus) Subscribe(topic string, h Handler) {
	if h == nil {
		return
	}
	key := reflect.ValueOf(h).Pointer()
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[uintptr]Handler)
		b.topics[topic] = subs
	}
	if _, dup := subs[key]; dup {
		return
	}
	subs[key] = h
}

// Unsubscribe removes h from topic. Unknown handlers are ignored.
func (b *Bus) Unsubscribe(topic string, h Handler) {
	if h == nil {
		return
	}
	key := reflect.ValueOf(h).Pointer()
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.topics[topic]; ok {
		delete(subs, key)
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
}

// Publish delivers payload to every current subscriber of topic. Delivery
// order between subscribers is not guaranteed (set semantics).
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	snapshot := make([]Handler, 0, len(b.topics[topic]))
	for _, h := range b.topics[topic] {
		snapshot = append(snapshot, h)
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		b.dispatch(topic, payload, h)
	}
}

// dispatch invokes a single handler, containing any panic.
func (b *Bus) dispatch(topic string, payload any, h Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("event subscriber panicked",
				"topic", topic,
				"error", rec,
			)
		}
	}()
	h(topic, payload)
}

// SubscriberCount returns the number of subscribers for a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Reset drops every subscription. Used on store teardown.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topics = make(map[string]map[uintptr]Handler)
}

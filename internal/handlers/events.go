// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"promptvault/internal/store"
)

// busEvent pairs a topic with its serialized payload for the SSE stream.
type busEvent struct {
	topic   string
	payload []byte
}

// StreamEvents forwards every store event to the client as server-sent
// events until the client disconnects. The per-connection channel is
// buffered; a slow client drops events rather than blocking publishers.
//
// HTTP: GET /events
func (a *API) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := make(chan busEvent, 64)
	handler := func(topic string, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Warn("event payload not serializable", "topic", topic, "error", err)
			return
		}
		select {
		case ch <- busEvent{topic: topic, payload: data}:
		default:
		}
	}

	topics := store.Topics()
	for _, topic := range topics {
		a.bus.Subscribe(topic, handler)
	}
	defer func() {
		for _, topic := range topics {
			a.bus.Unsubscribe(topic, handler)
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.topic, ev.payload)
			flusher.Flush()
		}
	}
}

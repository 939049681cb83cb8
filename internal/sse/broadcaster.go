package sse

import "log/slog"

// Broadcaster is the change notifier handed to the write path. It is an
// explicit dependency, not a global: whoever constructs the write-path
// controller decides which broadcaster (or fake) it talks to.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastRefresh signals every connected client that the collection
// changed. The event carries no entry data; clients re-query the API.
func (b *Broadcaster) BroadcastRefresh() {
	b.hub.BroadcastEvent(EventRefresh, EventRefresh)
	b.logger.Debug("refresh broadcast queued",
		slog.Int("clients", b.hub.ClientCount()))
}

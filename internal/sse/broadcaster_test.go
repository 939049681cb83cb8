package sse

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_RefreshReachesClients(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hub := NewHub(logger)
	go hub.Run()
	t.Cleanup(hub.Close)

	client := NewClient(hub, "10.0.0.1:1234")
	hub.Register(client)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	NewBroadcaster(hub, logger).BroadcastRefresh()

	select {
	case msg := <-client.send:
		assert.Equal(t, "event: refresh\ndata: refresh\n\n", string(msg))
	case <-time.After(time.Second):
		t.Fatal("no refresh frame received")
	}
	assert.Contains(t, logs.String(), "refresh broadcast queued")
}

func TestBroadcaster_RefreshWithNoClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	go hub.Run()
	t.Cleanup(hub.Close)

	// Nothing to deliver to and nothing blocks
	NewBroadcaster(hub, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).BroadcastRefresh()
	assert.Equal(t, 0, hub.ClientCount())
}

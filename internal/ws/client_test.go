package ws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wstest "github.com/alejoacosta74/binance-stream/internal/ws/test"
)

func TestClientConnect(t *testing.T) {
	t.Run("successful handshake", func(t *testing.T) {
		server := wstest.NewMockStreamServer()
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL()))
		require.False(t, client.Connected())

		err := client.Connect("btcusdt@trade")
		require.NoError(t, err)
		assert.True(t, client.Connected())
	})

	t.Run("handshake failure leaves client unconnected", func(t *testing.T) {
		// Nothing listens on this port.
		client := NewClient(
			WithBaseURL("ws://127.0.0.1:1/ws/"),
			WithHandshakeTimeout(100*time.Millisecond),
		)

		err := client.Connect("btcusdt@trade")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "websocket handshake")
		assert.False(t, client.Connected())
	})

	t.Run("malformed address", func(t *testing.T) {
		client := NewClient(WithBaseURL("wss://stream.binance.com:9443/ws/\x7f"))

		err := client.Connect("btcusdt@trade")
		require.Error(t, err)
		assert.False(t, client.Connected())
	})

	t.Run("double connect rejected", func(t *testing.T) {
		server := wstest.NewMockStreamServer()
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL()))
		require.NoError(t, client.Connect("btcusdt@trade"))
		assert.Error(t, client.Connect("ethusdt@trade"))
	})
}

func TestClientRunBeforeConnect(t *testing.T) {
	client := NewClient()
	err := client.Run(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestClientReceivesFrames(t *testing.T) {
	server := wstest.NewMockStreamServer()
	defer server.Close()

	frame := []byte(`{"e":"trade","E":1,"s":"BNBBTC","t":1}`)
	server.QueueMessage(frame)

	msgChan := make(chan []byte, 10)
	errChan := make(chan error, 10)
	client := NewClient(
		WithBaseURL(server.URL()),
		WithBuffers(msgChan, errChan),
	)
	require.NoError(t, client.Connect("bnbbtc@trade"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	select {
	case got := <-msgChan:
		assert.Equal(t, frame, got)
	case err := <-errChan:
		t.Fatalf("unexpected read error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for frame")
	}
}

func TestClientReportsReadError(t *testing.T) {
	server := wstest.NewMockStreamServer()
	defer server.Close()

	msgChan := make(chan []byte, 10)
	errChan := make(chan error, 10)
	client := NewClient(
		WithBaseURL(server.URL()),
		WithBuffers(msgChan, errChan),
	)
	require.NoError(t, client.Connect("bnbbtc@trade"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx)

	// Give the reader a moment to start blocking on the connection.
	time.Sleep(50 * time.Millisecond)
	server.CloseClientConnections()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for read error")
	}
}

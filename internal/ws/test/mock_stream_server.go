// Package test provides a mock Binance stream server for exercising the
// websocket client and dispatcher end to end.
package test

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/websocket"
)

// MockStreamServer is an httptest-backed websocket server that pushes queued
// frames to every client that connects, the way a Binance stream does.
type MockStreamServer struct {
	Server *httptest.Server

	mu             sync.Mutex
	connections    []*websocket.Conn
	queuedMessages [][]byte
	upgrader       websocket.Upgrader
}

// NewMockStreamServer creates and starts a mock stream server. The returned
// server URL uses the ws scheme and ends with a slash so a stream name can be
// appended to it directly.
func NewMockStreamServer() *MockStreamServer {
	mock := &MockStreamServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	mock.Server = httptest.NewServer(http.HandlerFunc(mock.handleWebSocket))
	return mock
}

// URL returns the server address as a ws:// base URL with a trailing slash.
func (m *MockStreamServer) URL() string {
	return "ws" + m.Server.URL[4:] + "/"
}

func (m *MockStreamServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	m.mu.Lock()
	m.connections = append(m.connections, conn)
	queued := make([][]byte, len(m.queuedMessages))
	copy(queued, m.queuedMessages)
	m.mu.Unlock()

	for _, msg := range queued {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// QueueMessage adds a frame to be streamed to clients on connect.
func (m *MockStreamServer) QueueMessage(message []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queuedMessages = append(m.queuedMessages, message)
}

// Push sends a frame to all currently connected clients.
func (m *MockStreamServer) Push(message []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, conn := range m.connections {
		_ = conn.WriteMessage(websocket.TextMessage, message)
	}
}

// CloseClientConnections drops every live connection, simulating the remote
// end going away mid-stream.
func (m *MockStreamServer) CloseClientConnections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, conn := range m.connections {
		_ = conn.Close()
	}
	m.connections = nil
}

// Close shuts down the server and all connections.
func (m *MockStreamServer) Close() {
	m.CloseClientConnections()
	m.Server.Close()
}

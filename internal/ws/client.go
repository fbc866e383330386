// Package ws manages the websocket connection to the Binance streaming
// endpoint and feeds raw frames to the dispatcher through channels.
package ws

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// BaseURL is the Binance websocket streams endpoint. The caller-supplied
// stream name is appended to it on Connect.
const BaseURL = "wss://stream.binance.com:9443/ws/"

// ErrNotConnected is returned by Run when Connect has not succeeded yet.
var ErrNotConnected = errors.New("websocket client is not connected")

// Client holds the connection to a single Binance stream. The connection is
// established once via Connect; no reconnection is attempted here.
type Client struct {
	baseURL          string
	conn             *websocket.Conn
	connMu           sync.Mutex
	handshakeTimeout time.Duration
	msgChan          chan []byte
	errChan          chan error
	logger           *logger.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default Binance endpoint. Used by tests to point
// the client at a mock server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithBuffers sets the channels used to hand frames and read errors to the
// dispatcher.
func WithBuffers(msgChan chan []byte, errChan chan error) Option {
	return func(c *Client) {
		c.msgChan = msgChan
		c.errChan = errChan
	}
}

// WithHandshakeTimeout bounds the dial handshake.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.handshakeTimeout = d
	}
}

// NewClient creates an unconnected client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:          BaseURL,
		handshakeTimeout: 10 * time.Second,
		logger:           logger.WithField("component", "ws_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect builds the target address by appending the stream name to the base
// endpoint and performs the websocket handshake. On failure the client
// remains unconnected.
func (c *Client) Connect(streamName string) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		return fmt.Errorf("already connected")
	}

	target := c.baseURL + streamName
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid stream address %q: %w", target, err)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: c.handshakeTimeout,
	}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("websocket handshake: %w", err)
	}
	c.logger.Debugf("Connected to %s", u.String())

	c.conn = conn
	return nil
}

// Connected reports whether Connect has succeeded.
func (c *Client) Connected() bool {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	return c.conn != nil
}

// Run starts the reader and blocks until the context is cancelled, then
// closes the connection. It must be called after a successful Connect.
func (c *Client) Run(ctx context.Context) error {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	reader := NewReader(conn, c.msgChan, c.errChan)
	go reader.Run(ctx)

	<-ctx.Done()
	return c.shutdown()
}

// shutdown sends a close frame and closes the connection.
func (c *Client) shutdown() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return nil
	}
	c.logger.Debug("Closing websocket connection")
	if err := c.conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	); err != nil {
		c.logger.Debugf("Error sending close message: %v", err)
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Package client ties the websocket connection and the dispatcher together
// into the streaming event client: connect to a stream, register handlers,
// run the event loop until a fatal error or cancellation.
package client

import (
	"context"

	"github.com/alejoacosta74/binance-stream/internal/dispatcher"
	"github.com/alejoacosta74/binance-stream/internal/events"
	"github.com/alejoacosta74/binance-stream/internal/logger"
	"github.com/alejoacosta74/binance-stream/internal/ws"
)

// Client is the streaming event client. Usage: register handlers, Connect,
// then Run. Run before a successful Connect returns ws.ErrNotConnected.
type Client struct {
	ws         *ws.Client
	dispatcher *dispatcher.Dispatcher
	eventBus   events.Bus
	logger     *logger.Logger
}

// Option configures the Client.
type Option func(*config)

type config struct {
	eventBus events.Bus
	wsOpts   []ws.Option
}

// WithEventBus sets the bus the dispatcher publishes activity on. By default
// the client creates its own.
func WithEventBus(bus events.Bus) Option {
	return func(c *config) {
		c.eventBus = bus
	}
}

// WithBaseURL overrides the Binance endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.wsOpts = append(c.wsOpts, ws.WithBaseURL(u))
	}
}

// New creates a client wired to the default Binance streams endpoint.
func New(opts ...Option) *Client {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eventBus == nil {
		cfg.eventBus = events.NewEventBus()
	}

	msgChan := make(chan []byte, 100)
	errChan := make(chan error, 1)

	wsOpts := append([]ws.Option{ws.WithBuffers(msgChan, errChan)}, cfg.wsOpts...)

	return &Client{
		ws: ws.NewClient(wsOpts...),
		dispatcher: dispatcher.NewDispatcher(dispatcher.Config{
			MsgChan:  msgChan,
			ErrChan:  errChan,
			EventBus: cfg.eventBus,
		}),
		eventBus: cfg.eventBus,
		logger:   logger.WithField("component", "client"),
	}
}

// SetUserStreamHandler binds the user stream handler, replacing any prior one.
func (c *Client) SetUserStreamHandler(h dispatcher.UserStreamHandler) {
	c.dispatcher.SetUserStreamHandler(h)
}

// SetMarketHandler binds the market data handler, replacing any prior one.
func (c *Client) SetMarketHandler(h dispatcher.MarketHandler) {
	c.dispatcher.SetMarketHandler(h)
}

// SetKlineHandler binds the kline handler, replacing any prior one.
func (c *Client) SetKlineHandler(h dispatcher.KlineHandler) {
	c.dispatcher.SetKlineHandler(h)
}

// Connect establishes the websocket connection for the named stream.
func (c *Client) Connect(streamName string) error {
	return c.ws.Connect(streamName)
}

// Run drives the event loop until the context is cancelled or a fatal read
// or decode error occurs. The error is returned to the caller, which owns
// any restart policy.
func (c *Client) Run(ctx context.Context) error {
	if !c.ws.Connected() {
		return ws.ErrNotConnected
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := c.ws.Run(ctx); err != nil {
			c.logger.Debugf("websocket shutdown: %v", err)
		}
	}()

	return c.dispatcher.Run(ctx)
}

// EventBus exposes the bus the dispatcher publishes on, so observers such as
// the metrics recorder can subscribe.
func (c *Client) EventBus() events.Bus {
	return c.eventBus
}

//go:generate mockgen -source=../dispatcher.go -destination=mock_handlers.go -package=mocks
//go:generate mockgen -destination=mock_event_bus.go -package=mocks github.com/alejoacosta74/binance-stream/internal/events Bus

package mocks

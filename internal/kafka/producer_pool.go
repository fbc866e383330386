package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// ProducerConfig holds configuration for the producer pool.
type ProducerConfig struct {
	BrokerList []string // Kafka brokers, e.g. ["localhost:9092"]
	PoolSize   int      // number of producers in the pool
}

// producerPool hands out producers through a channel, so Send borrows one
// and returns it when done.
type producerPool struct {
	producers chan Producer
	config    ProducerConfig
	logger    *logger.Logger
	started   bool
	mu        sync.RWMutex
}

// NewProducerPool creates a pool of Kafka producers.
func NewProducerPool(config ProducerConfig) (ProducerPool, error) {
	if config.PoolSize <= 0 {
		return nil, fmt.Errorf("pool size must be greater than 0")
	}

	return &producerPool{
		producers: make(chan Producer, config.PoolSize),
		config:    config,
		logger:    logger.WithField("component", "kafka_producer_pool"),
	}, nil
}

// Start creates all producers. Fails closed: on any creation error the pool
// is stopped and the error returned.
func (p *producerPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("producer pool already started")
	}

	for i := 0; i < p.config.PoolSize; i++ {
		producer, err := newSaramaProducer(p.config)
		if err != nil {
			p.closeAll()
			return fmt.Errorf("failed to create producer %d: %w", i, err)
		}
		p.producers <- producer
	}

	p.started = true
	p.logger.Info("Producer pool started")
	return nil
}

// Send borrows a producer from the pool and sends one message.
func (p *producerPool) Send(ctx context.Context, topic string, msg []byte) error {
	p.mu.RLock()
	started := p.started
	p.mu.RUnlock()
	if !started {
		return fmt.Errorf("producer pool not started")
	}

	var producer Producer
	select {
	case producer = <-p.producers:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { p.producers <- producer }()

	return producer.Send(ctx, Message{
		Topic:   topic,
		Payload: msg,
		Headers: map[string]string{"produced_at": time.Now().UTC().Format(time.RFC3339)},
	})
}

// Stop closes all producers in the pool.
func (p *producerPool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return nil
	}
	p.closeAll()
	p.started = false
	p.logger.Info("Producer pool stopped")
	return nil
}

func (p *producerPool) closeAll() {
	for {
		select {
		case producer := <-p.producers:
			if err := producer.Close(); err != nil {
				p.logger.Errorf("Error closing producer: %v", err)
			}
		default:
			return
		}
	}
}

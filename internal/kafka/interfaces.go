package kafka

import "context"

// Message is a payload bound for a Kafka topic.
type Message struct {
	Topic   string
	Payload []byte
	Headers map[string]string
}

// MessageSender sends raw payloads to a topic.
type MessageSender interface {
	Send(ctx context.Context, topic string, msg []byte) error
}

// PoolController manages the lifecycle of a producer pool.
type PoolController interface {
	Start() error
	Stop() error
}

// ProducerPool is a pool of Kafka producers usable from multiple goroutines.
type ProducerPool interface {
	MessageSender
	PoolController
}

// Producer is a single Kafka producer.
type Producer interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// saramaProducer implements Producer on top of sarama's SyncProducer.
// RequiredAcks=WaitForAll trades latency for delivery guarantees, which fits
// forwarding market events that must not be silently lost.
type saramaProducer struct {
	producer sarama.SyncProducer
}

func newSaramaProducer(config ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(config.BrokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sarama producer: %w", err)
	}

	return &saramaProducer{producer: producer}, nil
}

// Send delivers one message, honoring context cancellation.
func (p *saramaProducer) Send(ctx context.Context, msg Message) error {
	saramaMsg := &sarama.ProducerMessage{
		Topic: msg.Topic,
		Value: sarama.ByteEncoder(msg.Payload),
	}

	if len(msg.Headers) > 0 {
		var headers []sarama.RecordHeader
		for k, v := range msg.Headers {
			headers = append(headers, sarama.RecordHeader{
				Key:   []byte(k),
				Value: []byte(v),
			})
		}
		saramaMsg.Headers = headers
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := p.producer.SendMessage(saramaMsg)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *saramaProducer) Close() error {
	return p.producer.Close()
}

package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// CheckClusterAvailability verifies the Kafka cluster is reachable before the
// stream client starts forwarding events to it.
func CheckClusterAvailability(brokers []string, timeout time.Duration) error {
	config := sarama.NewConfig()
	config.Net.DialTimeout = timeout
	config.Net.ReadTimeout = timeout
	config.Net.WriteTimeout = timeout

	logger.Tracef("Checking Kafka cluster availability with brokers: %v", brokers)
	client, err := sarama.NewClient(brokers, config)
	if err != nil {
		return fmt.Errorf("failed to create kafka client: %w", err)
	}
	defer client.Close()

	availableBrokers := client.Brokers()
	if len(availableBrokers) == 0 {
		return fmt.Errorf("no brokers available in the cluster")
	}
	logger.Tracef("Kafka brokers available: %d", len(availableBrokers))

	return nil
}

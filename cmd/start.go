package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alejoacosta74/binance-stream/client"
	"github.com/alejoacosta74/binance-stream/internal/dispatcher/handlers"
	"github.com/alejoacosta74/binance-stream/internal/events"
	"github.com/alejoacosta74/binance-stream/internal/kafka"
	"github.com/alejoacosta74/binance-stream/internal/logger"
	"github.com/alejoacosta74/binance-stream/internal/metrics"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <stream>",
	Short: "Connect to a Binance stream and dispatch its events",
	Long: `Connect to a Binance websocket stream and run the event loop.

The stream argument is appended to the Binance streams endpoint, e.g.
"bnbbtc@trade", "bnbbtc@depth" or a user data stream listen key.`,
	RunE: runStart,
	Args: cobra.ExactArgs(1), // the stream name is the only argument
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().String("metrics-addr", ":9100", "Address for the Prometheus metrics endpoint")
	startCmd.Flags().StringSlice("kafka-brokers", nil, "Kafka brokers to forward events to (disabled when empty)")
	startCmd.Flags().String("kafka-topic-prefix", "binance", "Topic prefix for forwarded events")
	viper.BindPFlag("metricsaddr", startCmd.Flags().Lookup("metrics-addr"))
	viper.BindPFlag("kafkabrokers", startCmd.Flags().Lookup("kafka-brokers"))
	viper.BindPFlag("kafkatopicprefix", startCmd.Flags().Lookup("kafka-topic-prefix"))
}

func runStart(cmd *cobra.Command, args []string) error {
	stream := args[0]
	brokers := viper.GetStringSlice("kafkabrokers")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Capture system signals for graceful shutdown
	go handleSignals(cancel)

	eventBus := events.NewEventBus()
	defer eventBus.Shutdown()

	c := client.New(client.WithEventBus(eventBus))

	// Metrics recorder and server observe the dispatch loop through the bus.
	recorder := metrics.NewRecorder(eventBus)
	recorder.Start(ctx)
	metricsServer := metrics.NewServer(viper.GetString("metricsaddr"), recorder.Registry())
	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			logger.Errorf("Metrics server error: %v", err)
		}
	}()

	debug := handlers.NewDebugHandler()
	c.SetUserStreamHandler(debug)
	c.SetMarketHandler(debug)
	c.SetKlineHandler(debug)

	if len(brokers) > 0 {
		if err := kafka.CheckClusterAvailability(brokers, 5*time.Second); err != nil {
			return fmt.Errorf("kafka cluster check: %w", err)
		}
		pool, err := kafka.NewProducerPool(kafka.ProducerConfig{BrokerList: brokers, PoolSize: 3})
		if err != nil {
			return err
		}
		if err := pool.Start(); err != nil {
			return err
		}
		defer pool.Stop()

		// Forwarding replaces the debug handler for market and kline events.
		forwarder := handlers.NewKafkaForwarder(ctx, pool, viper.GetString("kafkatopicprefix"))
		c.SetMarketHandler(forwarder)
		c.SetKlineHandler(forwarder)
	}

	// The dial itself is retried here; once connected, a dropped connection
	// is fatal and ends the process, matching the client's no-reconnect
	// contract.
	dialBackoff := backoff.NewExponentialBackOff()
	dialBackoff.MaxElapsedTime = 1 * time.Minute
	err := backoff.RetryNotify(
		func() error { return c.Connect(stream) },
		backoff.WithContext(dialBackoff, ctx),
		func(err error, delay time.Duration) {
			logger.Warnf("Connect failed (retrying in %s): %v", delay, err)
		},
	)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", stream, err)
	}
	logger.Infof("Connected to stream %q", stream)

	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	logger.Info("Client shutdown")
	return nil
}

// Package circuitbreaker guards downstream sinks (Kafka) so a broker outage
// does not turn every dispatched event into a blocking send attempt.
package circuitbreaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// State represents the current state of the circuit breaker.
type State int

const (
	StateClosed   State = iota // normal operation, requests allowed
	StateOpen                  // circuit tripped, requests blocked
	StateHalfOpen              // probing whether the sink has recovered
)

// CircuitBreaker trips open after a threshold of consecutive failures and
// probes again after a timeout.
type CircuitBreaker struct {
	state     State
	failures  int
	threshold int
	timeout   time.Duration
	lastError error
	openTime  time.Time
	mu        sync.Mutex
	logger    *logger.Logger
}

// NewCircuitBreaker creates a closed circuit breaker that opens after
// threshold consecutive failures and probes again after timeout.
func NewCircuitBreaker(threshold int, timeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:     StateClosed,
		threshold: threshold,
		timeout:   timeout,
		logger:    logger.WithField("component", "circuitbreaker"),
	}
}

// Execute runs fn if the circuit allows it and records the outcome.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.AllowRequest() {
		return fmt.Errorf("circuit breaker is open: %v", cb.LastError())
	}
	err := fn()
	cb.RecordResult(err)
	return err
}

// AllowRequest reports whether a request may proceed, transitioning from
// open to half-open once the timeout has elapsed.
func (cb *CircuitBreaker) AllowRequest() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if time.Since(cb.openTime) > cb.timeout {
		cb.state = StateHalfOpen
		cb.logger.Warn("Circuit breaker transitioned to half-open")
		return true
	}
	return false
}

// RecordResult updates the breaker from the outcome of a request.
func (cb *CircuitBreaker) RecordResult(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastError = err
		if cb.failures >= cb.threshold {
			if cb.state != StateOpen {
				cb.logger.Warnf("Circuit breaker opened after %d failures", cb.failures)
			}
			cb.state = StateOpen
			cb.openTime = time.Now()
		}
		return
	}

	cb.failures = 0
	cb.state = StateClosed
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// LastError returns the most recent failure.
func (cb *CircuitBreaker) LastError() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.lastError
}

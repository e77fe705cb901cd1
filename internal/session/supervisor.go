package session

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"

	"solana-geyser-client/internal/geyser"
	"solana-geyser-client/internal/observability"
)

// DialFunc opens a new transport connection.
type DialFunc func(ctx context.Context) (geyser.Transport, error)

// Action runs one attempt's work against a connected transport: either a
// one-shot request/response call or an open-ended streaming subscription.
type Action func(ctx context.Context, transport geyser.Transport) error

// BackoffPolicy produces a fresh backoff schedule for a supervisor run.
type BackoffPolicy func() backoff.BackOff

// DefaultBackoffPolicy is exponential backoff with jitter: 500ms initial
// interval, 1.5x multiplier, retrying forever until a permanent error.
func DefaultBackoffPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.Multiplier = 1.5
	b.MaxElapsedTime = 0 // retry forever
	return b
}

// NewBackoffPolicy builds a policy with the given base delay, multiplier and
// maximum elapsed retry time (zero means retry forever).
func NewBackoffPolicy(initial time.Duration, multiplier float64, maxElapsed time.Duration) BackoffPolicy {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = initial
		b.Multiplier = multiplier
		b.MaxElapsedTime = maxElapsed
		return b
	}
}

// Supervisor owns the reconnect lifecycle: it opens a transport connection,
// runs the action, and retries transient failures under backoff. Permanent
// failures stop the run and are surfaced to the caller.
type Supervisor struct {
	dial    DialFunc
	policy  BackoffPolicy
	logger  *log.Logger
	metrics *observability.Metrics
}

// NewSupervisor creates a supervisor. A nil policy uses the default
// exponential backoff.
func NewSupervisor(dial DialFunc, policy BackoffPolicy, logger *log.Logger, metrics *observability.Metrics) *Supervisor {
	if policy == nil {
		policy = DefaultBackoffPolicy
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Supervisor{dial: dial, policy: policy, logger: logger, metrics: metrics}
}

// Run executes the action under the retry loop until it succeeds, fails
// permanently, or the backoff schedule gives up. The first attempt is never
// delayed. Each attempt owns exactly one connection, released before the
// next attempt.
func (s *Supervisor) Run(ctx context.Context, action Action) error {
	firstAttempt := true

	operation := func() error {
		if firstAttempt {
			firstAttempt = false
		} else {
			s.logger.Printf("retrying connection")
			s.metrics.IncReconnect()
		}

		transport, err := s.dial(ctx)
		if err != nil {
			s.logger.Printf("connect failed: %v", err)
			if IsPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		defer transport.Close()
		s.logger.Printf("connected")

		if err := action(ctx, transport); err != nil {
			s.logger.Printf("session failed: %v", err)
			if IsPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(s.policy(), ctx))
}

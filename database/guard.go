package database

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Guard wraps every call that reaches the database: a circuit breaker around
// a retry loop. It holds no business logic.
type Guard struct {
	policy  RetryPolicy
	breaker *gobreaker.CircuitBreaker[struct{}]
	log     *zap.Logger
}

type GuardConfig struct {
	Retry            RetryPolicy
	FailureThreshold uint32        // consecutive failures that open the breaker
	OpenTimeout      time.Duration // how long the breaker stays open
}

func NewGuard(cfg GuardConfig, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 15 * time.Second
	}

	g := &Guard{policy: cfg.Retry, log: log}
	base := cfg.Retry.Retryable
	if base == nil {
		base = IsTransient
	}
	g.policy.Retryable = func(err error) bool {
		if !base(err) {
			return false
		}
		log.Warn("retrying db call", zap.Error(err))
		return true
	}

	g.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "database",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// a caller giving up or an empty lookup says nothing about DB health
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded) ||
				errors.Is(err, gorm.ErrRecordNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return g
}

// Run executes op under the breaker and retry policy. A nil Guard runs op once.
func (g *Guard) Run(ctx context.Context, op func(context.Context) error) error {
	if g == nil {
		return op(ctx)
	}
	_, err := g.breaker.Execute(func() (struct{}, error) {
		return WithRetry(ctx, g.policy, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, op(ctx)
		})
	})
	return err
}

func (g *Guard) State() gobreaker.State { return g.breaker.State() }

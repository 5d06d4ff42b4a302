/*
 * Copyright (c) 2025-present unTill Pro, Ltd. and Contributors
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package retrier

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

func NewConfig(initialDelay, maxDelay time.Duration) Config {
	return Config{
		InitialDelay: initialDelay,
		MaxDelay:     maxDelay,
		Multiplier:   DefaultMultiplier,
		JitterFactor: DefaultJitterFactor,
	}
}

// New creates a Retrier with provided Config, validating parameters.
func New(cfg Config) (*Retrier, error) {
	if cfg.InitialDelay <= 0 || cfg.MaxDelay <= 0 || cfg.MaxDelay < cfg.InitialDelay ||
		cfg.Multiplier < 1 || cfg.JitterFactor < 0 || cfg.JitterFactor > 1 || cfg.MaxAttempts < 0 {
		return nil, ErrInvalidConfig
	}
	return &Retrier{
		cfg:          cfg,
		currentDelay: cfg.InitialDelay,
		rnd:          rand.Float64,
	}, nil
}

// NextDelay computes the next delay applying exponential backoff and jitter
func (r *Retrier) NextDelay() time.Duration {
	base := r.currentDelay

	next := time.Duration(float64(base) * r.cfg.Multiplier)
	if next > r.cfg.MaxDelay {
		next = r.cfg.MaxDelay
	}
	r.currentDelay = next

	// offset in [-JitterFactor*base, +JitterFactor*base]
	offset := (r.rnd()*2 - 1) * r.cfg.JitterFactor * float64(base)
	delay := base + time.Duration(offset)
	if delay < 0 {
		delay = 0
	}
	return delay
}

func (r *Retrier) action(err error) Action {
	for _, acceptable := range r.cfg.Acceptable {
		if errors.Is(err, acceptable) {
			return Accept
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Abort
	}
	if len(r.cfg.RetryOnlyOn) == 0 {
		return DoRetry
	}
	for _, retryable := range r.cfg.RetryOnlyOn {
		if errors.Is(err, retryable) {
			return DoRetry
		}
	}
	return Abort
}

// Run retries operation until success, abort, attempts exhaustion or context cancellation
func (r *Retrier) Run(ctx context.Context, operation func() error) error {
	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := operation()
		if err == nil {
			return nil
		}
		switch r.action(err) {
		case Accept:
			return nil
		case Abort:
			return err
		}
		attempt++
		if r.cfg.MaxAttempts > 0 && attempt >= r.cfg.MaxAttempts {
			return err
		}
		d := r.NextDelay()
		if r.cfg.OnError != nil {
			r.cfg.OnError(attempt, d, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}

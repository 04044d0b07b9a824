package client

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"pivota/internal/domain"
)

// PollConfig bounds the status poll. Zero values take the defaults below.
type PollConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     uint64
}

func (p PollConfig) withDefaults() PollConfig {
	if p.InitialInterval <= 0 {
		p.InitialInterval = 500 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 5 * time.Second
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = 10
	}
	return p
}

// WaitForDecision polls the status endpoint with capped exponential backoff
// until the KYB review reaches a decision (anything other than
// pending_verification), the poll budget is exhausted, or ctx is done.
//
// On budget exhaustion the last observed record is returned alongside
// ErrStillPending so callers can show "still pending, check back later"
// instead of going silently stale. Server 5xx and transport errors are
// retried within the same budget; 4xx errors abort immediately.
func (c *Client) WaitForDecision(ctx context.Context, merchantID string, cfg PollConfig) (*StatusRecord, error) {
	cfg = cfg.withDefaults()

	backoff := retry.NewExponential(cfg.InitialInterval)
	backoff = retry.WithCappedDuration(cfg.MaxInterval, backoff)
	backoff = retry.WithMaxRetries(cfg.MaxAttempts, backoff)

	var last *StatusRecord
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		rec, err := c.Status(ctx, merchantID)
		if err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		last = rec
		if domain.KYCStatus(rec.KYCStatus) == domain.KYCPending {
			return retry.RetryableError(ErrStillPending)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStillPending) {
			return last, ErrStillPending
		}
		return last, err
	}
	return last, nil
}

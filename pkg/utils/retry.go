package utils

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dezh-tech/immortal/pkg/logger"
)

// logEvery caps how often a failing dependency is reported while retrying.
const logEvery = 12

// RetryForever calls connect every interval until it succeeds or ctx is done.
// The first failure is logged and then every logEvery-th one.
func RetryForever[T any](ctx context.Context, name string, interval time.Duration,
	connect func() (T, error),
) (T, error) {
	attempt := 0

	return backoff.RetryNotifyWithData(connect,
		backoff.WithContext(backoff.NewConstantBackOff(interval), ctx),
		func(err error, wait time.Duration) {
			if attempt%logEvery == 0 {
				logger.Error("connection failed, retrying", "target", name, "attempt", attempt+1,
					"retry_in", wait.String(), "err", err)
			}
			attempt++
		})
}

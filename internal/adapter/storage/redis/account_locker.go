package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bank-account-service/config"
	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/metrics"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AccountLocker implements ports.AccountLocker across processes. The lock
// is a SET NX key holding a random token, expiring after ttl so a crashed
// holder cannot wedge the account.
type AccountLocker struct {
	client        *goredis.Client
	prefix        string
	ttl           time.Duration
	waitTimeout   time.Duration
	retryInterval time.Duration
	log           zerolog.Logger
}

// NewAccountLocker creates a Redis-backed account locker.
func NewAccountLocker(client *goredis.Client, cfg config.LockConfig, log zerolog.Logger) *AccountLocker {
	retry := cfg.RetryInterval
	if retry <= 0 {
		retry = 25 * time.Millisecond
	}
	return &AccountLocker{
		client:        client,
		prefix:        "lock:account:",
		ttl:           cfg.TTL,
		waitTimeout:   cfg.WaitTimeout,
		retryInterval: retry,
		log:           log,
	}
}

// Lock polls SET NX until it wins, ctx ends, or waitTimeout passes.
func (l *AccountLocker) Lock(ctx context.Context, accountID string) (func(), error) {
	key := l.prefix + accountID
	token := uuid.NewString()
	start := time.Now()

	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	for {
		ok, err := l.tryAcquire(ctx, key, token)
		if err != nil && ctx.Err() == nil {
			metrics.LockWait.WithLabelValues("redis", "error").Observe(time.Since(start).Seconds())
			return nil, err
		}
		if ok {
			metrics.LockWait.WithLabelValues("redis", "acquired").Observe(time.Since(start).Seconds())
			return l.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			metrics.LockWait.WithLabelValues("redis", "timeout").Observe(time.Since(start).Seconds())
			return nil, apperror.ErrLockTimeout(fmt.Errorf("account %s: %w", accountID, ctx.Err()))
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *AccountLocker) tryAcquire(ctx context.Context, key, token string) (bool, error) {
	result, err := l.client.SetArgs(ctx, key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  l.ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return result == "OK", nil
}

func (l *AccountLocker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's ctx may already be done; release on a fresh one.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
				l.log.Warn().Err(err).Str("key", key).Msg("failed to release account lock, it will expire")
			}
		})
	}
}

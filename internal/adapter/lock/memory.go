// Package lock provides in-process AccountLocker implementations.
package lock

import (
	"context"
	"sync"
	"time"

	"bank-account-service/pkg/apperror"
	"bank-account-service/pkg/metrics"
)

// MemoryLocker serializes updates per account inside one process. Each
// account id maps to a one-slot channel so waiters can give up on ctx.
type MemoryLocker struct {
	waitTimeout time.Duration

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// NewMemoryLocker creates a MemoryLocker. A zero waitTimeout waits until ctx ends.
func NewMemoryLocker(waitTimeout time.Duration) *MemoryLocker {
	return &MemoryLocker{
		waitTimeout: waitTimeout,
		slots:       make(map[string]*slot),
	}
}

// Lock implements ports.AccountLocker.
func (l *MemoryLocker) Lock(ctx context.Context, accountID string) (func(), error) {
	start := time.Now()
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	s := l.ref(accountID)
	select {
	case s.ch <- struct{}{}:
		metrics.LockWait.WithLabelValues("memory", "acquired").Observe(time.Since(start).Seconds())
		var once sync.Once
		return func() {
			once.Do(func() {
				<-s.ch
				l.unref(accountID, s)
			})
		}, nil
	case <-ctx.Done():
		l.unref(accountID, s)
		metrics.LockWait.WithLabelValues("memory", "timeout").Observe(time.Since(start).Seconds())
		return nil, apperror.ErrLockTimeout(ctx.Err())
	}
}

func (l *MemoryLocker) ref(accountID string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[accountID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[accountID] = s
	}
	s.refs++
	return s
}

func (l *MemoryLocker) unref(accountID string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, accountID)
	}
}

// held reports how many account ids currently have holders or waiters.
func (l *MemoryLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

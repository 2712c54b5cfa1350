package lock

import "context"

// NoopLocker never blocks. Concurrent read-modify-write sequences on the
// same account may lose updates.
type NoopLocker struct{}

// Lock implements ports.AccountLocker.
func (NoopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

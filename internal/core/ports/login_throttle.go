package ports

import "context"

// LoginThrottle bounds repeated failed authentication attempts per natural
// key. Implementations should fail open: a store error must never lock a
// caller out.
type LoginThrottle interface {
	TooMany(ctx context.Context, naturalKey string) (bool, error)
	RecordFailure(ctx context.Context, naturalKey string) error
	Reset(ctx context.Context, naturalKey string) error
}

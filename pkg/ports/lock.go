package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a previously acquired distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes session access across processes. The session
// manager's in-process mutexes cover a single replica; deployments running
// several server replicas against one shared store add a DistributedLocker on
// top.
type DistributedLocker interface {
	// Lock blocks until the lock for key is held or ctx is done.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}

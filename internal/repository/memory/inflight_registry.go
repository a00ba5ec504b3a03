package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InflightRegistry enforces the one-request-in-flight rule per
// (user, kind) pair. A second submission of the same kind while one is
// pending must be rejected, never queued. The TTL is a safety valve in
// case a release is ever lost to a crash mid-call.
type InflightRegistry struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewInflightRegistry() *InflightRegistry {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &InflightRegistry{
		cache: c,
	}
}

func key(userId uuid.UUID, kind string) string {
	return fmt.Sprintf("%s:%s", userId, kind)
}

// TryAcquire marks the pair busy. Returns false when a request of the
// same kind is already pending for the user.
func (r *InflightRegistry) TryAcquire(userId uuid.UUID, kind string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(userId, kind)
	if _, found := r.cache.Get(k); found {
		return false
	}
	r.cache.Set(k, struct{}{}, cache.DefaultExpiration)
	return true
}

func (r *InflightRegistry) Release(userId uuid.UUID, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(key(userId, kind))
}

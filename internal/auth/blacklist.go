package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryBlacklist keeps revoked tokens in an in-process map. Entries expire
// with the token itself; a background sweep reclaims them.
type MemoryBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	done    chan struct{}
	once    sync.Once
}

func NewMemoryBlacklist(sweepInterval time.Duration) *MemoryBlacklist {
	b := &MemoryBlacklist{
		revoked: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go b.sweep(sweepInterval)
	}
	return b
}

// Revoke marks the token as revoked until expiresAt. Revoking an already
// revoked token is a no-op.
func (b *MemoryBlacklist) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.revoked[token]; !ok || expiresAt.After(existing) {
		b.revoked[token] = expiresAt
	}
	return nil
}

// IsRevoked reports whether the token is on the blacklist and not yet expired.
func (b *MemoryBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	expiresAt, ok := b.revoked[token]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiresAt), nil
}

// Stop terminates the background sweep goroutine.
func (b *MemoryBlacklist) Stop() {
	b.once.Do(func() { close(b.done) })
}

func (b *MemoryBlacklist) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-b.done:
			return
		case now := <-ticker.C:
			b.mu.Lock()
			for token, expiresAt := range b.revoked {
				if now.After(expiresAt) {
					delete(b.revoked, token)
				}
			}
			b.mu.Unlock()
		}
	}
}

package site

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrNoSnapshot = errors.New("site content has not been loaded yet")

// Source produces fresh snapshots. *Loader implements it.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Cache holds the last snapshot that loaded successfully.
type Cache struct {
	source Source
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	lastErr  error
}

func NewCache(source Source, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{source: source, logger: logger.Named("cache")}
}

// Refresh reloads the content. On failure the previous snapshot stays in
// place and the error is returned.
func (c *Cache) Refresh(ctx context.Context) error {
	snap, err := c.source.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
	if err != nil {
		c.logger.Warn("content refresh failed, keeping previous snapshot",
			zap.Bool("has_snapshot", c.snapshot != nil), zap.Error(err))
		return err
	}
	c.snapshot = snap
	return nil
}

// Snapshot returns the current snapshot or ErrNoSnapshot.
func (c *Cache) Snapshot() (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		if c.lastErr != nil {
			return nil, errors.Join(ErrNoSnapshot, c.lastErr)
		}
		return nil, ErrNoSnapshot
	}
	return c.snapshot, nil
}

// LastError is the error of the most recent refresh, nil if it succeeded.
func (c *Cache) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

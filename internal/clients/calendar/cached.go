package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/logger"
)

const cacheTTLSeconds = 24 * 60 * 60

type renderer interface {
	Render(day string, descriptions []string) ([]byte, error)
}

type imageCache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttlSeconds int32) error
}

// CachedRenderer serves repeated renders of identical input from the cache.
type CachedRenderer struct {
	next  renderer
	cache imageCache
}

func NewCachedRenderer(next renderer, cache imageCache) *CachedRenderer {
	return &CachedRenderer{next: next, cache: cache}
}

func (c *CachedRenderer) Render(day string, descriptions []string) ([]byte, error) {
	key := cacheKey(day, descriptions)
	if img, err := c.cache.Get(key); err == nil && len(img) > 0 {
		logger.Debug("calendar cache hit", zap.String("day", day))
		return img, nil
	}

	img, err := c.next.Render(day, descriptions)
	if err != nil {
		return nil, err
	}
	if err = c.cache.Set(key, img, cacheTTLSeconds); err != nil {
		logger.Warn("cannot cache calendar", zap.Error(err))
	}
	return img, nil
}

func cacheKey(day string, descriptions []string) string {
	sum := sha256.Sum256([]byte(day + "\x00" + strings.Join(descriptions, "\x00")))
	return "calendar:" + hex.EncodeToString(sum[:])
}

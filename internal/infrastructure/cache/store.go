package cache

import "time"

// Store is a key-value cache with per-entry expiration. Implementations are
// best-effort: a miss and an unavailable backend look the same to callers.
type Store interface {
	Set(key string, value string, expiration time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

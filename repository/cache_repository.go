package repository

// CacheRepository caches derived values keyed by string. Misses are
// reported via the bool, never as errors.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Del(key string) error
}

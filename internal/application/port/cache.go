package port

// Cache is a bounded key-value store. Implementations must be safe for
// concurrent use; the image probe keeps its verdicts in one.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)
	// Set stores value under key, evicting older entries when full.
	Set(key K, value V)
	Remove(key K)
	Len() int
}

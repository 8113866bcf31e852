package aoc

// Memo caches the results of a recursive function. The function receives the
// Memo itself so that recursive calls go through the cache. A Memo is meant
// to live for a single top-level computation and be shared by every input
// solved as part of it.
type Memo[K comparable, V any] struct {
	fn    func(m *Memo[K, V], k K) V
	cache map[K]V
	hits  int
}

// NewMemo returns an empty Memo for fn.
func NewMemo[K comparable, V any](fn func(m *Memo[K, V], k K) V) *Memo[K, V] {
	return &Memo[K, V]{
		fn:    fn,
		cache: make(map[K]V),
	}
}

// Get returns fn(k), computing it at most once.
func (m *Memo[K, V]) Get(k K) V {
	if v, ok := m.cache[k]; ok {
		m.hits++
		return v
	}
	v := m.fn(m, k)
	m.cache[k] = v
	return v
}

// Len reports the number of cached keys.
func (m *Memo[K, V]) Len() int {
	return len(m.cache)
}

// Hits reports how many calls to Get were answered from the cache.
func (m *Memo[K, V]) Hits() int {
	return m.hits
}

// Package kvindex implements a hash-indexed associative store mapping
// string keys to string values, with separate-chaining collision
// resolution. It is the physical storage substrate under the graph store.
//
// The bucket array is sized once at construction and never resized:
// callers expecting large graphs should size the table up front or accept
// longer chains and degraded average-case lookup. This is a documented
// scalability ceiling, not a bug.
//
// The index is not goroutine-safe; the graph store owns synchronization.
package kvindex

// DefaultBuckets is the bucket count used when none is given.
const DefaultBuckets = 1024

type entry struct {
	key   string
	value string
	next  *entry
}

// Index is a fixed-size chained hash table.
type Index struct {
	buckets []*entry
	count   int
}

// New creates an Index with the given bucket count. Counts below 1 fall
// back to DefaultBuckets.
func New(buckets int) *Index {
	if buckets < 1 {
		buckets = DefaultBuckets
	}

	return &Index{buckets: make([]*entry, buckets)}
}

// djb2 hashes a key: h = 5381, then h = h*33 + byte for each byte.
func djb2(key string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}

	return h
}

func (ix *Index) bucket(key string) int {
	return int(djb2(key) % uint64(len(ix.buckets)))
}

// Set inserts or replaces the value for key.
func (ix *Index) Set(key, value string) {
	b := ix.bucket(key)

	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			e.value = value

			return
		}
	}

	ix.buckets[b] = &entry{key: key, value: value, next: ix.buckets[b]}
	ix.count++
}

// Get returns the value for key. The second return is false when the key
// is absent; absence is a normal outcome, never an error.
func (ix *Index) Get(key string) (string, bool) {
	for e := ix.buckets[ix.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}

	return "", false
}

// Delete removes key and reports whether it was present.
func (ix *Index) Delete(key string) bool {
	b := ix.bucket(key)

	var prev *entry
	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				ix.buckets[b] = e.next
			} else {
				prev.next = e.next
			}
			ix.count--

			return true
		}
		prev = e
	}

	return false
}

// Exists reports whether key is present.
func (ix *Index) Exists(key string) bool {
	_, ok := ix.Get(key)

	return ok
}

// Count returns the number of stored entries.
func (ix *Index) Count() int {
	return ix.count
}

// Keys returns a snapshot of all keys, in no particular order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, ix.count)
	for _, head := range ix.buckets {
		for e := head; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}

	return keys
}

// Clear removes every entry, keeping the bucket array size.
func (ix *Index) Clear() {
	for i := range ix.buckets {
		ix.buckets[i] = nil
	}
	ix.count = 0
}

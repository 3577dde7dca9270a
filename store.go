// FILE: lixenwraith/smolconf/store.go
package smolconf

import "iter"

// DefaultCapacity is the initial entry capacity used by Read and New(0).
const DefaultCapacity = 16

// Entry is a single key/value pair held by a Store.
type Entry struct {
	Key   string
	Value string
}

// Store holds configuration entries in insertion order, indexed by a fixed
// number of hash buckets. Each bucket lists the positions of the entries whose
// key hashes to it, in insertion order.
//
// A Store is not safe for concurrent use; callers must serialize access.
type Store struct {
	entries []Entry
	index   [HashSize][]int
	probe   FileProbe
}

// New creates an empty store able to hold capacity entries before growing.
// A capacity below 1 uses DefaultCapacity.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries: make([]Entry, 0, capacity),
		probe:   OSProbe{},
	}
}

// Insert adds key=value if key is not present yet.
// It returns false, leaving the store untouched, when key already exists.
func (s *Store) Insert(key, value string) bool {
	if s.IsDefined(key) {
		return false
	}
	if len(s.entries) == cap(s.entries) {
		s.grow()
	}

	pos := len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})

	b := bucketOf(key)
	s.index[b] = append(s.index[b], pos)
	return true
}

// grow extends the entry capacity by half, and by at least one slot.
func (s *Store) grow() {
	c := cap(s.entries)
	next := c + c/2
	if next <= c {
		next = c + 1
	}
	grown := make([]Entry, len(s.entries), next)
	copy(grown, s.entries)
	s.entries = grown
}

// Find returns the value stored for key.
// The whole bucket chain is searched; only an exact key match is returned.
func (s *Store) Find(key string) (string, bool) {
	for _, pos := range s.index[bucketOf(key)] {
		if e := s.entries[pos]; e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// IsDefined reports whether key exists, independent of its value type.
func (s *Store) IsDefined(key string) bool {
	_, ok := s.Find(key)
	return ok
}

// Concat inserts every entry of src into s, in src's order.
// Keys already present in s keep their value. It returns the number of
// entries actually added.
func (s *Store) Concat(src *Store) int {
	if src == nil || src == s {
		return 0
	}
	added := 0
	for _, e := range src.entries {
		if s.Insert(e.Key, e.Value) {
			added++
		}
	}
	return added
}

// Free releases all entries and index buckets. The store stays usable and empty.
func (s *Store) Free() {
	s.entries = nil
	for i := range s.index {
		s.index[i] = nil
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Cap returns the number of entries the store can hold before growing.
func (s *Store) Cap() int {
	return cap(s.entries)
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Keys returns all keys in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates over key/value pairs in insertion order.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range s.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// SetProbe replaces the file probe used by Path. A nil probe restores OSProbe.
func (s *Store) SetProbe(p FileProbe) {
	if p == nil {
		p = OSProbe{}
	}
	s.probe = p
}

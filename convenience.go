// FILE: lixenwraith/smolconf/convenience.go
package smolconf

import (
	"fmt"
	"io"
	"strings"
)

// Quick creates a fully configured Store with a single call.
// Defaults may be a struct, a map[string]string or a *Store.
// Precedence: CLI > Env > File > Default
func Quick(defaults any, envPrefix, configFile string) (*Store, error) {
	return NewBuilder().
		WithDefaults(defaults).
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(defaults any, envPrefix, configFile string) *Store {
	return NewBuilder().
		WithDefaults(defaults).
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		MustBuild()
}

// MustRead is like Read but panics on error
func MustRead(path string) *Store {
	s, err := Read(path)
	if err != nil {
		panic(fmt.Sprintf("config read failed: %v", err))
	}
	return s
}

// Validate checks that all required keys are defined
func (s *Store) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if !s.IsDefined(key) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required configuration: %s", ErrKeyNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// BucketStats summarizes how entries spread over the hash index.
type BucketStats struct {
	Entries     int
	UsedBuckets int
	MaxChain    int
}

// Stats reports the index occupancy.
func (s *Store) Stats() BucketStats {
	stats := BucketStats{Entries: len(s.entries)}
	for _, chain := range s.index {
		if len(chain) == 0 {
			continue
		}
		stats.UsedBuckets++
		stats.MaxChain = max(stats.MaxChain, len(chain))
	}
	return stats
}

// Debug returns a formatted string showing all entries and the index occupancy
func (s *Store) Debug() string {
	var b strings.Builder
	stats := s.Stats()
	b.WriteString("Configuration Debug Info:\n")
	fmt.Fprintf(&b, "Entries: %d (capacity %d)\n", stats.Entries, s.Cap())
	fmt.Fprintf(&b, "Buckets: %d/%d used, longest chain %d\n", stats.UsedBuckets, HashSize, stats.MaxChain)
	b.WriteString("Current values:\n")

	for i, e := range s.entries {
		fmt.Fprintf(&b, "  [%d] %s = %q (bucket %d)\n", i, e.Key, e.Value, bucketOf(e.Key))
	}

	return b.String()
}

// Dump writes the store to w in format f
func (s *Store) Dump(w io.Writer, f Format) error {
	data, err := Marshal(s, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Clone creates a deep copy of the store, keeping its entry capacity and probe
func (s *Store) Clone() *Store {
	clone := New(s.Cap())
	clone.probe = s.probe
	clone.entries = append(clone.entries, s.entries...)
	for i, chain := range s.index {
		if len(chain) > 0 {
			clone.index[i] = append([]int(nil), chain...)
		}
	}
	return clone
}

// FILE: lixenwraith/smolconf/hash.go
package smolconf

// HashSize is the number of buckets in a store's index.
const HashSize = 256

// djb2 hashes s with hash = hash*33 + byte, starting at 5381, in uint32 arithmetic.
func djb2(s string) uint32 {
	var hash uint32 = 5381
	for i := 0; i < len(s); i++ {
		hash = (hash << 5) + hash + uint32(s[i])
	}
	return hash
}

// bucketOf returns the index bucket for key.
func bucketOf(key string) int {
	return int(djb2(key) % HashSize)
}

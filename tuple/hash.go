package tuple

import "hash/maphash"

// Hashing follows the classic multiplicative scheme: an arity-identifying
// seed combined with each element's hash by *31 in slot order. Equal tuples
// hash equal under the same maphash.Seed; hashes are not stable across seeds
// or processes.

const hashMix = 31

// HashPair returns a hash of the pair under the given seed.
func HashPair[A, B comparable](seed maphash.Seed, p Pair[A, B]) uint64 {
	h := maphash.String(seed, "tuple.Pair")
	h = h*hashMix + maphash.Comparable(seed, p.first)
	h = h*hashMix + maphash.Comparable(seed, p.second)
	return h
}

// HashTriple returns a hash of the triple under the given seed.
func HashTriple[A, B, C comparable](seed maphash.Seed, t Triple[A, B, C]) uint64 {
	h := maphash.String(seed, "tuple.Triple")
	h = h*hashMix + maphash.Comparable(seed, t.first)
	h = h*hashMix + maphash.Comparable(seed, t.second)
	h = h*hashMix + maphash.Comparable(seed, t.third)
	return h
}

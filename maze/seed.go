package maze

import "math/rand/v2"

// RandomSeed draws a fresh Seed from the runtime's random source.
// Use it for unseeded generation; record the result to replay the maze.
func RandomSeed() Seed {
	var seed Seed
	for i := 0; i < len(seed); i += 8 {
		putUint64(seed[i:], rand.Uint64())
	}
	return seed
}

// SeedFrom expands a 64-bit value into a full Seed, so callers can keep short
// numeric seeds (flags, test tables) and still get well-mixed 32-byte input.
// Distinct values give distinct seeds.
//
// Complexity: O(1).
func SeedFrom(v uint64) Seed {
	var seed Seed
	x := v
	for i := 0; i < len(seed); i += 8 {
		x += 0x9e3779b97f4a7c15
		putUint64(seed[i:], splitmix64(x))
	}
	return seed
}

// splitmix64 is the SplitMix64 finalizer (Vigna 2014).
func splitmix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// putUint64 writes v little-endian into b[:8].
func putUint64(b []byte, v uint64) {
	for j := 0; j < 8; j++ {
		b[j] = byte(v >> (8 * j))
	}
}

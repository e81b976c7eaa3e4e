// Package transferop - deterministic RNG plumbing for the randomized
// paths (Random boundary successor, initial solve distribution).
//
// Goals:
//   - Determinism: same seed ⇒ identical operators and measures.
//   - Encapsulation: one RNG factory, no time-based sources anywhere.
//   - Independence: derived streams decorrelate build and solve draws.
package transferop

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, keeping default runs reproducible.
const defaultSeed int64 = 1

// Stream identifiers keep the randomized paths independent: the same
// user seed must not hand correlated draws to the boundary successor
// and the solve's initial distribution.
const (
	streamBoundary uint64 = iota + 1
	streamSolve
)

// rngFromSeed returns a deterministic *rand.Rand for the given stream.
// Policy: seed==0 ⇒ defaultSeed; the stream id is then mixed in.
func rngFromSeed(seed int64, stream uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer so nearby seeds yield uncorrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

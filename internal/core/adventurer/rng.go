package adventurer

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG returns a deterministic generator for the given seed.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible rosters.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// NewRNG returns a generator seeded from the runtime's entropy source.
func NewRNG() *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

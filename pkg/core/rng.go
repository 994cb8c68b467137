package core

import (
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 that remembers the
// seed it was built from so named subsystems can derive their own streams.
type RNG struct {
	seed uint64
	r    *rand.Rand
}

// NewRNG creates an RNG. A zero seed means "unseeded": the stream is keyed from
// the wall clock, which is what interactive runs want.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &RNG{seed: s, r: rand.New(rand.NewPCG(s, 0))}
}

// Seed reports the effective seed, including the clock-derived one.
func (r *RNG) Seed() uint64 { return r.seed }

// Derive returns an independent generator for the named subsystem. The same
// parent seed and name always yield the same stream.
func (r *RNG) Derive(name string) *RNG {
	s := r.seed ^ fnv1a64(name)
	return &RNG{seed: s, r: rand.New(rand.NewPCG(s, 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a value in [0, n). Non-positive n yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Perm4 shuffles the four entries of dirs in place.
func (r *RNG) Perm4(dirs *[4]int) {
	for i := 3; i > 0; i-- {
		j := r.r.IntN(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

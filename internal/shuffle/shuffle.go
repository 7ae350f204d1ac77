// Package shuffle orders answer options deterministically so that a question
// renders the same way every time while different questions look randomized.
package shuffle

import (
	"hash/fnv"

	"github.com/spigell/hh-assessor/internal/catalog"
)

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// Shuffle returns a permutation of items derived only from seed. The input
// slice is never modified.
func Shuffle[T any](items []T, seed string) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}

	g := newGenerator(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Options returns the display order of a question's options.
func Options(q catalog.Question) []catalog.Option {
	return Shuffle(q.Options, q.ID)
}

type generator struct {
	state uint32
}

func newGenerator(seed string) *generator {
	h := fnv.New32a()
	// Write on a hash never fails.
	_, _ = h.Write([]byte(seed))
	return &generator{state: mix(h.Sum32())}
}

func (g *generator) next() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return mix(g.state)
}

// intn draws from [0, n) using the high bits of the next output.
func (g *generator) intn(n int) int {
	return int((uint64(g.next()) * uint64(n)) >> 32)
}

// mix is the murmur3 32-bit finalizer.
func mix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

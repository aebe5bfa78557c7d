// Package random provides the random source every generator draws from.
//
// Generators never touch math/rand directly; they receive a Source so that
// tests and reproducible runs can swap in a seeded or scripted implementation.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source is the set of draws the generators need.
type Source interface {
	// Int returns a uniform integer in [min, max). It returns min when max <= min.
	Int(min, max int) int
	// Int64 is Int over int64.
	Int64(min, max int64) int64
	// Float returns a uniform float in [0, 1).
	Float() float64
	// Chance reports true with probability p.
	Chance(p float64) bool
	// Date returns a uniform instant in [min, max) at millisecond precision, in UTC.
	Date(min, max time.Time) time.Time
	// Weighted returns an index chosen with probability proportional to weights[i].
	Weighted(weights ...float64) int
	// Bytes returns n random bytes.
	Bytes(n int) []byte
}

// Rand is the math/rand backed Source.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Source seeded with seed. A zero seed draws one from crypto/rand.
func New(seed int64) *Rand {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}
	return &Rand{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the source was built with.
func (r *Rand) Seed() int64 { return r.seed }

func (r *Rand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

func (r *Rand) Int64(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + r.rng.Int63n(max-min)
}

func (r *Rand) Float() float64 {
	return r.rng.Float64()
}

func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

func (r *Rand) Date(min, max time.Time) time.Time {
	lo, hi := min.UnixMilli(), max.UnixMilli()
	return time.UnixMilli(r.Int64(lo, hi)).UTC()
}

func (r *Rand) Weighted(weights ...float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	x := r.rng.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	r.rng.Read(b)
	return b
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Int(0, len(items))]
}

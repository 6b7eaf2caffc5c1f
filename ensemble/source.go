// SPDX-License-Identifier: MIT

package ensemble

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Source is the random stream ensembles sample from.
// It is not safe for concurrent use; an aggregator owns it for a run.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Reseed resets the stream to the start of the sequence for seed.
func (s *Source) Reseed(seed int64) {
	s.rng.Seed(seed)
	s.seed = seed
}

// Seed reports the seed of the last (re)seeding.
func (s *Source) Seed() int64 { return s.seed }

// Rand exposes the underlying generator to constructors.
func (s *Source) Rand() *rand.Rand { return s.rng }

// ParseSeed turns a user-supplied seed into an int64. Decimal integers are
// used as-is, any other non-empty text is hashed with FNV-1a, and an empty
// string yields a time-based seed.
func ParseSeed(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Now().UnixNano()
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))

	return int64(h.Sum64())
}

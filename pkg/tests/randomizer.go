package tests

import (
	"math/rand"
	"time"
)

// Randomizer is a seeded source for randomized tests. Seed is kept so a
// failing run can be reproduced with NewRandomizerWithSeed.
type Randomizer struct {
	Seed    int64
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	return NewRandomizerWithSeed(time.Now().UnixNano())
}

func NewRandomizerWithSeed(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed:    seed,
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Pick returns a random element of items.
func Pick[T any](r Randomizer, items ...T) T {
	return items[r.Intn(len(items))]
}

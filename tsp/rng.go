// Package tsp - deterministic randomness for the heuristic tour solvers.
//
// Every randomized solver (hill-climbing, annealing, tabu search, the
// genetic algorithm) draws from a single *rand.Rand seeded once at entry via
// rngFromSeed, then threads that one stream through every shuffle and
// successor draw it performs. There is no per-restart or per-worker stream
// derivation here: none of this package's solvers run concurrent restarts,
// so a single shared stream is enough — see route.go's shuffleIntsInPlace
// caller, which is the only consumer.
//
// math/rand.Rand is not goroutine-safe; a *rand.Rand returned from
// rngFromSeed must stay on the goroutine that owns the solve call.
package tsp

import "math/rand"

// defaultRouteRNGSeed is used whenever a caller passes opts.Seed == 0, so
// "no seed given" still reproduces the same tour run to run.
const defaultRouteRNGSeed int64 = 1

// rngFromSeed returns the deterministic RNG a solver draws its shuffles and
// successor moves from: opts.Seed verbatim, or defaultRouteRNGSeed when the
// caller left Seed at its zero value.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRouteRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of ids using
// rng, the primitive behind Route.Shuffle's initial-tour randomization. A
// nil rng falls back to the same default stream rngFromSeed(0) would give,
// so callers never need a nil check of their own.
func shuffleIntsInPlace(ids []int, rng *rand.Rand) {
	n := len(ids)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

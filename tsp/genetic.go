// Package tsp - ordered-crossover genetic algorithm.
//
// SolveGeneticAlgorithm evolves a population of N routes using elitism,
// fitness-proportional (roulette) selection, ordered crossover (OX), and
// per-child reverse-segment mutation, per spec.md §4.4.8.
package tsp

import (
	"math"
	"math/rand"
	"sort"
)

// geneticFitness returns 1/tour_length, or 0 when the length is 0.
func geneticFitness(dm *DistanceMatrix, r Route) float64 {
	length, err := dm.TourLength(r)
	if err != nil || length == 0 {
		return 0
	}
	return 1 / length
}

// orderedCrossover produces two children from parents a and b by copying
// the inclusive segment [from,to] from the other parent, then filling the
// remaining positions by scanning the original parent cyclically from
// (to+1) mod N, skipping any id already placed by the segment, per
// spec.md §4.4.8.
func orderedCrossover(a, b Route, from, to int) (Route, Route) {
	n := len(a)
	segA := make(map[int]bool, to-from+1)
	segB := make(map[int]bool, to-from+1)
	for i := from; i <= to; i++ {
		segA[a[i]] = true
		segB[b[i]] = true
	}
	child1 := orderedCrossoverFill(b, a, segB, from, to, n)
	child2 := orderedCrossoverFill(a, b, segA, from, to, n)
	return child1, child2
}

// orderedCrossoverFill builds one child: segmentSource supplies [from,to]
// verbatim, fillSource is scanned cyclically from (to+1) mod n to fill the
// rest, skipping ids already present in seg.
func orderedCrossoverFill(segmentSource, fillSource Route, seg map[int]bool, from, to, n int) Route {
	child := make(Route, n)
	for i := from; i <= to; i++ {
		child[i] = segmentSource[i]
	}

	target := n - (to - from + 1)
	writePos := (to + 1) % n
	readPos := (to + 1) % n
	filled := 0
	for filled < target {
		v := fillSource[readPos]
		if !seg[v] {
			child[writePos] = v
			writePos = (writePos + 1) % n
			filled++
		}
		readPos = (readPos + 1) % n
	}
	return child
}

// mutateRoute applies the reverse-segment mutation: pick two positions and
// reverse the inclusive segment between them.
func mutateRoute(r Route, rng *rand.Rand) Route {
	out := r.Clone()
	i, j := RandomPositionPair(len(out), rng)
	reverseSegment(out, i, j)
	return out
}

// rouletteSelect performs fitness-proportional sampling over the population.
func rouletteSelect(population []Route, fitness []float64, totalFitness float64, rng *rand.Rand) Route {
	if totalFitness <= 0 {
		return population[rng.Intn(len(population))]
	}
	threshold := rng.Float64() * totalFitness
	cum := 0.0
	for i, f := range fitness {
		cum += f
		if threshold <= cum {
			return population[i]
		}
	}
	return population[len(population)-1]
}

// SolveGeneticAlgorithm implements the ordered-crossover genetic algorithm.
func SolveGeneticAlgorithm(points []Point, opts SolverOptions, pub Publisher) (Solution, error) {
	dm, _, err := buildContext(points)
	if err != nil {
		return Solution{}, err
	}
	n := dm.N()
	rng := rngFromSeed(opts.Seed)
	identity := RouteFromPoints(points)

	populationSize := n
	population := make([]Route, populationSize)
	for i := range population {
		ind := identity.Clone()
		for step := 0; step < n; step++ {
			ind = ind.RandomSuccessor(rng)
		}
		population[i] = ind
	}

	eliteCount := opts.NElite
	if eliteCount > populationSize {
		eliteCount = populationSize
	}
	if eliteCount < 0 {
		eliteCount = 0
	}

	bestLen := math.Inf(1)
	var bestRoute Route

	trackBest := func(pop []Route) {
		for _, ind := range pop {
			length, lerr := dm.TourLength(ind)
			if lerr != nil {
				continue
			}
			if length < bestLen {
				bestLen = length
				bestRoute = ind.Clone()
				pub.Publish(NewPathUpdate(bestRoute.Clone(), bestLen))
			}
		}
	}

	sortByFitnessDesc := func(pop []Route) {
		sort.Slice(pop, func(i, j int) bool {
			return geneticFitness(dm, pop[i]) > geneticFitness(dm, pop[j])
		})
	}

	sortByFitnessDesc(population)
	trackBest(population)

	for gen := 0; gen < opts.Epochs; gen++ {
		fitnessVals := make([]float64, populationSize)
		totalFitness := 0.0
		for i, ind := range population {
			f := geneticFitness(dm, ind)
			fitnessVals[i] = f
			totalFitness += f
		}

		next := make([]Route, 0, populationSize)
		next = append(next, population[:eliteCount]...)

		for len(next) < populationSize {
			parent1 := rouletteSelect(population, fitnessVals, totalFitness, rng)
			parent2 := rouletteSelect(population, fitnessVals, totalFitness, rng)
			from, to := RandomPositionPair(n, rng)
			child1, child2 := orderedCrossover(parent1, parent2, from, to)

			if rng.Float64() < opts.MutationProbability {
				child1 = mutateRoute(child1, rng)
			}
			if rng.Float64() < opts.MutationProbability {
				child2 = mutateRoute(child2, rng)
			}

			next = append(next, child1)
			if len(next) < populationSize {
				next = append(next, child2)
			}
		}
		population = next

		sortByFitnessDesc(population)
		trackBest(population)
		pub.Publish(NewEpochUpdate(gen))
	}

	if bestRoute == nil {
		bestRoute = population[0]
	}

	sol, err := NewSolution(bestRoute, dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewDone())
	return sol, nil
}

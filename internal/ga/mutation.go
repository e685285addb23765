package ga

import (
	"math/rand"
)

// MutateIndividual applies the domain's bit-flip mutation to an individual
func MutateIndividual(ind *Individual, rng *rand.Rand) int {
	return ind.FlipMutate(rng)
}

// Mutate applies bit-flip mutation to every individual, in order, and returns
// the total number of flipped bits.
func Mutate(individuals []*Individual, rng *rand.Rand) int {
	flips := 0
	for _, ind := range individuals {
		flips += MutateIndividual(ind, rng)
	}
	return flips
}

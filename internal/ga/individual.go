package ga

import (
	"fmt"
	"math/rand"
)

// Individual is one candidate solution: a genome and its cached fitness.
// The cache is refreshed by every operation that changes the genome.
type Individual struct {
	genome  Genome
	fitness float64
	domain  *Domain
}

// NewRandomIndividual creates an individual with a uniformly random genome
func NewRandomIndividual(d *Domain, rng *rand.Rand) *Individual {
	ind := &Individual{
		genome: RandomGenome(d.params.BitLength, rng),
		domain: d,
	}
	ind.evaluate()
	return ind
}

// NewIndividual creates an individual from an explicit genome.
// The genome is copied.
func NewIndividual(d *Domain, genome Genome) (*Individual, error) {
	if len(genome) != d.params.BitLength {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidGenomeLength, len(genome), d.params.BitLength)
	}
	if !genome.valid() {
		return nil, fmt.Errorf("genome %v holds non-binary symbols", []byte(genome))
	}
	ind := &Individual{
		genome: genome.Clone(),
		domain: d,
	}
	ind.evaluate()
	return ind, nil
}

func (ind *Individual) evaluate() {
	ind.fitness = ind.domain.Fitness(ind.genome)
}

// Fitness returns the cached fitness
func (ind *Individual) Fitness() float64 {
	return ind.fitness
}

// Genome returns a copy of the genome
func (ind *Individual) Genome() Genome {
	return ind.genome.Clone()
}

// Len returns the genome length
func (ind *Individual) Len() int {
	return len(ind.genome)
}

func (ind *Individual) String() string {
	return fmt.Sprintf("%s %.4f", ind.genome, ind.fitness)
}

// FlipMutate perturbs the genome in place according to the domain's mutation
// mode and returns the number of flipped bits.
func (ind *Individual) FlipMutate(rng *rand.Rand) int {
	p := ind.domain.params
	flips := 0

	switch p.MutationMode {
	case MutateSingleBit:
		if rng.Float64() < p.MutationRate {
			i := rng.Intn(len(ind.genome))
			ind.genome[i] ^= 1
			flips++
		}
	default:
		for i := range ind.genome {
			if rng.Float64() < p.MutationRate {
				ind.genome[i] ^= 1
				flips++
			}
		}
	}

	if flips > 0 {
		ind.evaluate()
	}
	return flips
}

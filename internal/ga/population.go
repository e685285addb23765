package ga

import (
	"math/rand"
	"sort"
)

// Population manages the collection of individuals of one generation
type Population struct {
	Individuals []*Individual
}

// NewPopulation creates a new random population of the configured size
func NewPopulation(d *Domain, rng *rand.Rand) *Population {
	p := &Population{
		Individuals: make([]*Individual, d.params.Population),
	}

	for i := range p.Individuals {
		p.Individuals[i] = NewRandomIndividual(d, rng)
	}

	return p
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Individuals)
}

// SortByFitness sorts individuals by fitness (descending)
func (p *Population) SortByFitness() {
	sort.SliceStable(p.Individuals, func(i, j int) bool {
		return p.Individuals[i].fitness > p.Individuals[j].fitness
	})
}

// Best returns the first individual with the highest fitness
func (p *Population) Best() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.fitness > best.fitness {
			best = ind
		}
	}
	return best
}

// Worst returns the first individual with the lowest fitness
func (p *Population) Worst() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	worst := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.fitness < worst.fitness {
			worst = ind
		}
	}
	return worst
}

// Fitnesses returns the fitness of every individual in order
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.Individuals))
	for i, ind := range p.Individuals {
		out[i] = ind.fitness
	}
	return out
}

// Genomes returns copies of every genome in order
func (p *Population) Genomes() []Genome {
	out := make([]Genome, len(p.Individuals))
	for i, ind := range p.Individuals {
		out[i] = ind.Genome()
	}
	return out
}

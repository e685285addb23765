package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutateRateZero(t *testing.T) {
	d := newTestDomain(t, func(p *Params) { p.MutationRate = 0 })
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)
	before := pop.Genomes()

	assert.Zero(t, Mutate(pop.Individuals, rng))
	assert.Equal(t, before, pop.Genomes())
}

func TestMutateRateOneCoversLastIndividual(t *testing.T) {
	d := newTestDomain(t, func(p *Params) { p.MutationRate = 1 })
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)
	before := pop.Genomes()

	flips := Mutate(pop.Individuals, rng)
	assert.Equal(t, pop.Size()*8, flips)

	after := pop.Genomes()
	for i := range before {
		for j := range before[i] {
			assert.Equal(t, before[i][j]^1, after[i][j], "individual %d bit %d", i, j)
		}
		assert.Equal(t, OnesFraction.Fitness(after[i]), pop.Individuals[i].Fitness())
	}
}

func TestMutateRateIsPerBit(t *testing.T) {
	d := newTestDomain(t, func(p *Params) {
		p.BitLength = 100
		p.Population = 100
		p.MutationRate = 0.1
	})
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)

	flips := Mutate(pop.Individuals, rng)
	// 10000 bits at 10%
	assert.InDelta(t, 1000, flips, 120)
}

package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSurvivorsCountAndUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, ratio := range []float64{0.002, 0.1, 0.5, 0.8, 1} {
		d := newTestDomain(t, func(p *Params) {
			p.Population = 500
			p.TournamentK = 5
			p.SurvivorRatio = ratio
		})
		pop := NewPopulation(d, rng)

		survivors, err := SelectSurvivors(pop.Individuals, d, rng)
		require.NoError(t, err)

		target := int(ratio * 500)
		assert.Len(t, survivors, target, "ratio %v", ratio)

		seen := make(map[*Individual]struct{}, len(survivors))
		for _, s := range survivors {
			_, dup := seen[s]
			assert.False(t, dup, "duplicate survivor at ratio %v", ratio)
			seen[s] = struct{}{}
		}
	}
}

func TestSelectSurvivorsLeavesPopulationUntouched(t *testing.T) {
	d := newTestDomain(t, func(p *Params) { p.SurvivorRatio = 1 })
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)
	before := append([]*Individual(nil), pop.Individuals...)

	survivors, err := SelectSurvivors(pop.Individuals, d, rng)
	require.NoError(t, err)

	assert.Equal(t, before, pop.Individuals)
	assert.ElementsMatch(t, before, survivors)
}

func TestSelectSurvivorsFavoursFitter(t *testing.T) {
	d := newTestDomain(t, func(p *Params) {
		p.Population = 400
		p.TournamentK = 8
		p.SurvivorRatio = 0.1
	})
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)

	survivors, err := SelectSurvivors(pop.Individuals, d, rng)
	require.NoError(t, err)

	popMean := Summarize(pop).Average
	survMean := Summarize(&Population{Individuals: survivors}).Average
	assert.Greater(t, survMean, popMean)
}

func TestTournamentFirstWinsTies(t *testing.T) {
	d := newTestDomain(t, nil)
	a, err := NewIndividual(d, mustGenome(t, "11110000"))
	require.NoError(t, err)
	b, err := NewIndividual(d, mustGenome(t, "00001111"))
	require.NoError(t, err)

	// Equal fitness everywhere: the first draw always wins
	pool := []*Individual{a, b}
	for seed := int64(0); seed < 20; seed++ {
		rngDraw := rand.New(rand.NewSource(seed))
		first := pool[rngDraw.Intn(len(pool))]

		got := TournamentSelect(pool, 5, rand.New(rand.NewSource(seed)))
		assert.Same(t, first, got, "seed %d", seed)
	}
}

func TestTournamentPicksHighestFitness(t *testing.T) {
	d := newTestDomain(t, nil)
	var pool []*Individual
	for _, s := range []string{"00000000", "00000001", "00000011", "11111111"} {
		ind, err := NewIndividual(d, mustGenome(t, s))
		require.NoError(t, err)
		pool = append(pool, ind)
	}

	rng := rand.New(rand.NewSource(42))
	// A large tournament almost surely draws the best one
	got := TournamentSelect(pool, 200, rng)
	assert.Equal(t, 1.0, got.Fitness())
}

func TestTournamentSizeOneIsUniform(t *testing.T) {
	d := newTestDomain(t, nil)
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)
	pop.Individuals = pop.Individuals[:4]

	counts := make(map[*Individual]int)
	for i := 0; i < 4000; i++ {
		counts[TournamentSelect(pop.Individuals, 1, rng)]++
	}
	require.Len(t, counts, 4)
	for _, c := range counts {
		assert.InDelta(t, 1000, c, 150)
	}
}

func TestSelectSurvivorsExhausted(t *testing.T) {
	d := newTestDomain(t, nil)
	rng := rand.New(rand.NewSource(42))
	pop := NewPopulation(d, rng)

	survivors, err := selectSurvivors(pop.Individuals[:3], 5, 2, rng)
	assert.ErrorIs(t, err, ErrSelectionExhausted)
	assert.Len(t, survivors, 3)

	_, err = selectSurvivors(nil, 1, 1, rng)
	assert.ErrorIs(t, err, ErrSelectionExhausted)
}

func TestTournamentSelectEmpty(t *testing.T) {
	assert.Nil(t, TournamentSelect(nil, 3, rand.New(rand.NewSource(1))))
}

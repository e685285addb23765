package ga

import (
	"fmt"
	"math/rand"
)

// remainingPool is the set of individuals still eligible to win a tournament.
// It indexes into a backing slice that is never modified.
type remainingPool struct {
	backing []*Individual
	idx     []int
}

func newRemainingPool(backing []*Individual) *remainingPool {
	idx := make([]int, len(backing))
	for i := range idx {
		idx[i] = i
	}
	return &remainingPool{backing: backing, idx: idx}
}

func (rp *remainingPool) Len() int {
	return len(rp.idx)
}

// draw returns a uniformly chosen position in the pool
func (rp *remainingPool) draw(rng *rand.Rand) int {
	return rng.Intn(len(rp.idx))
}

func (rp *remainingPool) at(pos int) *Individual {
	return rp.backing[rp.idx[pos]]
}

// remove drops the entry at pos in O(1) by swapping in the last entry
func (rp *remainingPool) remove(pos int) {
	last := len(rp.idx) - 1
	rp.idx[pos] = rp.idx[last]
	rp.idx = rp.idx[:last]
}

// tournament draws k participants with replacement and returns the position
// of the winner. The first participant with the highest fitness wins.
func (rp *remainingPool) tournament(k int, rng *rand.Rand) int {
	best := rp.draw(rng)
	for i := 1; i < k; i++ {
		candidate := rp.draw(rng)
		if rp.at(candidate).fitness > rp.at(best).fitness {
			best = candidate
		}
	}
	return best
}

// TournamentSelect selects a single individual from agents using tournament selection
func TournamentSelect(individuals []*Individual, k int, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}
	rp := newRemainingPool(individuals)
	return rp.at(rp.tournament(k, rng))
}

// SelectSurvivors runs repeated tournaments over pop until
// floor(SurvivorRatio * len(pop)) distinct winners have been chosen.
func SelectSurvivors(pop []*Individual, d *Domain, rng *rand.Rand) ([]*Individual, error) {
	return selectSurvivors(pop, d.params.SurvivorTarget(len(pop)), d.params.TournamentK, rng)
}

func selectSurvivors(pop []*Individual, target, k int, rng *rand.Rand) ([]*Individual, error) {
	rp := newRemainingPool(pop)
	survivors := make([]*Individual, 0, target)

	for len(survivors) < target {
		if rp.Len() == 0 {
			return survivors, fmt.Errorf("%w: %d of %d survivors chosen", ErrSelectionExhausted, len(survivors), target)
		}
		winner := rp.tournament(k, rng)
		survivors = append(survivors, rp.at(winner))
		rp.remove(winner)
	}
	return survivors, nil
}

package ga

import (
	"fmt"
	"math/rand"
	"sort"
)

// SplitPoints draws count distinct interior cut positions in [1, bitLength-1]
// and returns them sorted, framed by 0 and bitLength.
func SplitPoints(bitLength, count int, rng *rand.Rand) ([]int, error) {
	if bitLength < 1 || count < 0 || count > bitLength-1 {
		return nil, fmt.Errorf("%w: %d crossover points do not fit %d bits",
			ErrInvalidConfiguration, count, bitLength)
	}

	splits := make([]int, 0, count+2)
	seen := make(map[int]struct{}, count)

	splits = append(splits, 0)
	for len(seen) < count {
		cut := rng.Intn(bitLength-1) + 1
		if _, dup := seen[cut]; dup {
			continue
		}
		seen[cut] = struct{}{}
		splits = append(splits, cut)
	}
	splits = append(splits, bitLength)

	sort.Ints(splits)
	return splits, nil
}

// SliceAndDice assembles two children from the segments delimited by splits.
// Even segments come from father into c1 and mother into c2, odd segments the
// other way round.
func SliceAndDice(father, mother Genome, splits []int) (Genome, Genome) {
	size := len(father)
	c1 := make(Genome, size)
	c2 := make(Genome, size)

	for seg := 0; seg+1 < len(splits); seg++ {
		lo, hi := splits[seg], splits[seg+1]
		if seg%2 == 0 {
			copy(c1[lo:hi], father[lo:hi])
			copy(c2[lo:hi], mother[lo:hi])
		} else {
			copy(c1[lo:hi], mother[lo:hi])
			copy(c2[lo:hi], father[lo:hi])
		}
	}

	return c1, c2
}

// Crossover performs multi-point crossover between two parents
// Returns two children
func Crossover(father, mother *Individual, rng *rand.Rand) (*Individual, *Individual, error) {
	d := father.domain
	splits, err := SplitPoints(d.params.BitLength, d.params.CrossoverPoints, rng)
	if err != nil {
		return nil, nil, err
	}
	g1, g2 := SliceAndDice(father.genome, mother.genome, splits)

	c1, err := NewIndividual(d, g1)
	if err != nil {
		return nil, nil, err
	}
	c2, err := NewIndividual(d, g2)
	if err != nil {
		return nil, nil, err
	}
	return c1, c2, nil
}

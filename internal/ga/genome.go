package ga

import (
	"fmt"
	"math/rand"
	"strings"
)

// Genome is a fixed-length bit vector, one 0/1 byte per position
type Genome []byte

// RandomGenome draws n independent uniform bits
func RandomGenome(n int, rng *rand.Rand) Genome {
	g := make(Genome, n)
	for i := range g {
		g[i] = byte(rng.Intn(2))
	}
	return g
}

// ParseGenome parses the textual form, e.g. "01010101"
func ParseGenome(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			g[i] = 1
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", s[i], i)
		}
	}
	return g, nil
}

// String renders the genome as a string of '0' and '1'
func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, b := range g {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ones counts set bits
func (g Genome) Ones() int {
	n := 0
	for _, b := range g {
		if b != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (g Genome) Clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

func (g Genome) valid() bool {
	for _, b := range g {
		if b > 1 {
			return false
		}
	}
	return true
}

package eval

import (
	"fmt"
	"math/bits"

	"bitevolve/internal/config"
	"bitevolve/internal/ga"
)

// Fitness modes accepted in the fitness.mode config key
const (
	ModeOnes        = "ones"
	ModeLeadingOnes = "leading_ones"
	ModeTrap        = "trap"
	ModeHIFF        = "hiff"
)

// Evaluator computes fitness for the configured mode. Every mode is
// normalised to [0,1].
type Evaluator struct {
	mode  string
	trapK int
}

// NewEvaluator creates an evaluator for the fitness config and checks that
// the mode can score genomes of bitLength bits.
func NewEvaluator(cfg config.FitnessConfig, bitLength int) (*Evaluator, error) {
	e := &Evaluator{mode: cfg.Mode, trapK: cfg.TrapK}
	if e.mode == "" {
		e.mode = ModeOnes
	}

	switch e.mode {
	case ModeOnes, ModeLeadingOnes:
	case ModeTrap:
		if e.trapK < 2 {
			return nil, fmt.Errorf("%w: trap_k must be at least 2, got %d", ga.ErrInvalidConfiguration, e.trapK)
		}
		if bitLength%e.trapK != 0 {
			return nil, fmt.Errorf("%w: bit length %d is not a multiple of trap_k %d",
				ga.ErrInvalidConfiguration, bitLength, e.trapK)
		}
	case ModeHIFF:
		if bitLength <= 0 || bits.OnesCount(uint(bitLength)) != 1 {
			return nil, fmt.Errorf("%w: hiff needs a power-of-two bit length, got %d",
				ga.ErrInvalidConfiguration, bitLength)
		}
	default:
		return nil, fmt.Errorf("%w: unknown fitness mode %q", ga.ErrInvalidConfiguration, e.mode)
	}
	return e, nil
}

// Mode returns the fitness mode in use
func (e *Evaluator) Mode() string {
	return e.mode
}

// Fitness computes the fitness score based on the mode
func (e *Evaluator) Fitness(g ga.Genome) float64 {
	switch e.mode {
	case ModeLeadingOnes:
		return LeadingOnes(g)
	case ModeTrap:
		return DeceptiveTrap(g, e.trapK)
	case ModeHIFF:
		return HIFF(g)
	default:
		return ga.OnesFraction.Fitness(g)
	}
}

// LeadingOnes is the length of the leading run of set bits over the genome length
func LeadingOnes(g ga.Genome) float64 {
	if len(g) == 0 {
		return 0
	}
	n := 0
	for _, b := range g {
		if b == 0 {
			break
		}
		n++
	}
	return float64(n) / float64(len(g))
}

// DeceptiveTrap scores consecutive blocks of k bits. A block with t ones
// earns k when full and k-t-1 otherwise, so the gradient leads away from the
// optimum. The total is divided by the genome length.
func DeceptiveTrap(g ga.Genome, k int) float64 {
	if len(g) == 0 || k <= 0 {
		return 0
	}
	var score float64
	for i := 0; i+k <= len(g); i += k {
		t := 0
		for j := 0; j < k; j++ {
			if g[i+j] != 0 {
				t++
			}
		}
		if t == k {
			score += float64(k)
		} else {
			score += float64(k - t - 1)
		}
	}
	return score / float64(len(g))
}

// HIFF is hierarchical if-and-only-if: every uniform block of size 2, 4, …, n
// earns its size. The total is divided by the optimum n*(log2(n)+1), where
// single bits count as uniform blocks of size 1.
func HIFF(g ga.Genome) float64 {
	n := len(g)
	if n == 0 {
		return 0
	}

	score := float64(n)
	levels := 1
	for size := 2; size <= n; size *= 2 {
		levels++
		for i := 0; i+size <= n; i += size {
			uniform := true
			for j := i + 1; j < i+size; j++ {
				if g[j] != g[i] {
					uniform = false
					break
				}
			}
			if uniform {
				score += float64(size)
			}
		}
	}
	return score / float64(n*levels)
}

package ga

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports parameters that violate a run invariant
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidGenomeLength reports a genome whose length differs from the configured bit length
	ErrInvalidGenomeLength = errors.New("invalid genome length")
	// ErrSelectionExhausted reports a tournament pool that ran dry before the survivor target
	ErrSelectionExhausted = errors.New("selection pool exhausted")
)

// MutationMode controls how FlipMutate perturbs a genome
type MutationMode string

const (
	MutatePerBit    MutationMode = "per_bit"    // every bit flips with probability MutationRate
	MutateSingleBit MutationMode = "single_bit" // one random bit flips with probability MutationRate
)

// Params holds the scalar parameters of a run
type Params struct {
	BitLength       int
	Population      int
	Generations     int
	CrossoverPoints int
	TournamentK     int
	SurvivorRatio   float64
	MutationRate    float64
	MutationMode    MutationMode
}

// Validate checks the parameter invariants
func (p Params) Validate() error {
	switch {
	case p.BitLength <= 0:
		return fmt.Errorf("%w: bit length must be positive, got %d", ErrInvalidConfiguration, p.BitLength)
	case p.Population <= 0:
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalidConfiguration, p.Population)
	case p.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalidConfiguration, p.Generations)
	case p.CrossoverPoints < 0 || p.CrossoverPoints >= p.BitLength:
		return fmt.Errorf("%w: crossover points must be in [0,%d), got %d",
			ErrInvalidConfiguration, p.BitLength, p.CrossoverPoints)
	case p.TournamentK < 1 || p.TournamentK > p.Population:
		return fmt.Errorf("%w: tournament size must be in [1,%d], got %d",
			ErrInvalidConfiguration, p.Population, p.TournamentK)
	case !(p.SurvivorRatio > 0 && p.SurvivorRatio <= 1):
		return fmt.Errorf("%w: survivor ratio must be in (0,1], got %v", ErrInvalidConfiguration, p.SurvivorRatio)
	case !(p.MutationRate >= 0 && p.MutationRate <= 1):
		return fmt.Errorf("%w: mutation rate must be in [0,1], got %v", ErrInvalidConfiguration, p.MutationRate)
	}

	switch p.MutationMode {
	case "", MutatePerBit, MutateSingleBit:
	default:
		return fmt.Errorf("%w: unknown mutation mode %q", ErrInvalidConfiguration, p.MutationMode)
	}
	return nil
}

// SurvivorTarget returns floor(SurvivorRatio * size)
func (p Params) SurvivorTarget(size int) int {
	return int(p.SurvivorRatio * float64(size))
}

// FitnessModel maps a genome to a score to be maximized
type FitnessModel interface {
	Fitness(g Genome) float64
}

// FitnessFunc adapts a plain function to FitnessModel
type FitnessFunc func(g Genome) float64

func (f FitnessFunc) Fitness(g Genome) float64 { return f(g) }

// OnesFraction is the canonical model: set bits divided by genome length
var OnesFraction FitnessModel = FitnessFunc(func(g Genome) float64 {
	if len(g) == 0 {
		return 0
	}
	return float64(g.Ones()) / float64(len(g))
})

// Domain binds validated parameters to a fitness model. It is immutable once built.
type Domain struct {
	params Params
	model  FitnessModel
}

// NewDomain validates params and pairs them with model
func NewDomain(params Params, model FitnessModel) (*Domain, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("%w: fitness model is required", ErrInvalidConfiguration)
	}
	if params.MutationMode == "" {
		params.MutationMode = MutatePerBit
	}
	return &Domain{params: params, model: model}, nil
}

// Params returns a copy of the run parameters
func (d *Domain) Params() Params {
	return d.params
}

// Fitness scores g with the domain's model
func (d *Domain) Fitness(g Genome) float64 {
	return d.model.Fitness(g)
}

package ga

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Phase is the state of the generational loop
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSeeding
	PhaseEvaluating
	PhaseSelecting
	PhaseReproducing
	PhaseMutating
	PhaseReporting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSeeding:
		return "seeding"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseSelecting:
		return "selecting"
	case PhaseReproducing:
		return "reproducing"
	case PhaseMutating:
		return "mutating"
	case PhaseReporting:
		return "reporting"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Reporter receives the statistics of every generation, after mutation and
// before the next selection.
type Reporter interface {
	Report(ctx context.Context, stats GenerationStats) error
}

// ReporterFunc adapts a plain function to Reporter
type ReporterFunc func(ctx context.Context, stats GenerationStats) error

func (f ReporterFunc) Report(ctx context.Context, stats GenerationStats) error { return f(ctx, stats) }

// Result is what a completed run hands back
type Result struct {
	RunID   string
	Initial GenerationStats
	History []GenerationStats
	Final   *Population
}

// Evolver drives the generational loop
type Evolver struct {
	domain    *Domain
	rng       *rand.Rand
	reporters []Reporter
	phase     Phase
	runID     string
}

// NewEvolver creates an evolver. rng is the only randomness source of the run.
func NewEvolver(d *Domain, rng *rand.Rand, reporters ...Reporter) *Evolver {
	return &Evolver{
		domain:    d,
		rng:       rng,
		reporters: reporters,
		runID:     uuid.NewString(),
	}
}

// AddReporter appends a reporter; reporters are called in the order added
func (e *Evolver) AddReporter(r Reporter) {
	e.reporters = append(e.reporters, r)
}

// RunID identifies this evolver's run in reports
func (e *Evolver) RunID() string {
	return e.runID
}

// Phase returns the current state of the loop
func (e *Evolver) Phase() Phase {
	return e.phase
}

// Seed builds the initial random population
func (e *Evolver) Seed() *Population {
	e.phase = PhaseSeeding
	return NewPopulation(e.domain, e.rng)
}

// Step advances pop by one generation and returns the next population.
// gen is 1-based.
func (e *Evolver) Step(ctx context.Context, gen int, pop *Population) (*Population, GenerationStats, error) {
	p := e.domain.params

	e.phase = PhaseSelecting
	survivors, err := SelectSurvivors(pop.Individuals, e.domain, e.rng)
	if err != nil {
		return nil, GenerationStats{}, fmt.Errorf("generation %d: %w", gen, err)
	}

	e.phase = PhaseReproducing
	next := make([]*Individual, 0, p.Population+1)
	next = append(next, survivors...)
	for len(next) < p.Population {
		father := pop.Individuals[e.rng.Intn(pop.Size())]
		mother := pop.Individuals[e.rng.Intn(pop.Size())]

		c1, c2, err := Crossover(father, mother, e.rng)
		if err != nil {
			return nil, GenerationStats{}, fmt.Errorf("generation %d: crossover: %w", gen, err)
		}
		next = append(next, c1, c2)
	}
	// Offspring come in pairs, so at most one is surplus
	next = next[:p.Population]

	e.phase = PhaseMutating
	flips := Mutate(next, e.rng)

	e.phase = PhaseReporting
	nextPop := &Population{Individuals: next}
	stats := Summarize(nextPop)
	stats.Generation = gen
	stats.Remaining = p.Generations - gen
	stats.Flips = flips

	for _, r := range e.reporters {
		if err := r.Report(ctx, stats); err != nil {
			return nil, stats, fmt.Errorf("generation %d: report: %w", gen, err)
		}
	}

	return nextPop, stats, nil
}

// Run seeds a population and evolves it for the configured number of
// generations. The first error aborts the run.
func (e *Evolver) Run(ctx context.Context) (*Result, error) {
	pop := e.Seed()

	e.phase = PhaseEvaluating
	res := &Result{
		RunID:   e.runID,
		Initial: Summarize(pop),
		History: make([]GenerationStats, 0, e.domain.params.Generations),
	}

	for gen := 1; gen <= e.domain.params.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, stats, err := e.Step(ctx, gen, pop)
		if err != nil {
			return nil, err
		}
		res.History = append(res.History, stats)
		pop = next
	}

	e.phase = PhaseDone
	res.Final = pop
	return res, nil
}

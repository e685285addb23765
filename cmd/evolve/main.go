package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"bitevolve/internal/config"
	"bitevolve/internal/eval"
	"bitevolve/internal/ga"
	"bitevolve/internal/logging"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file (defaults when empty)")
	generations := flag.Int("generations", 0, "override number of generations")
	seed := flag.Int64("seed", 0, "override random seed")
	topN := flag.Int("top", 0, "print the top N individuals of the final population")
	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *generations > 0 {
		cfg.GA.Generations = *generations
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	evaluator, err := eval.NewEvaluator(cfg.Fitness, cfg.GA.BitLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating evaluator: %v\n", err)
		os.Exit(1)
	}
	domain, err := ga.NewDomain(cfg.Params(), evaluator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bit-string GA - Fitness: %s\n", evaluator.Mode())
	fmt.Printf("Config: %s, Seed: %d\n", *configPath, cfg.Seed)
	fmt.Printf("Bits: %d, Population: %d, Generations: %d\n", cfg.GA.BitLength, cfg.GA.Population, cfg.GA.Generations)
	fmt.Printf("Crossover points: %d, Tournament K: %d, Survivors: %.3f, Mutation: %.3f (%s)\n",
		cfg.GA.CrossoverPoints, cfg.GA.TournamentK, cfg.GA.SurvivorRatio, cfg.GA.MutationRate, cfg.GA.MutationMode)
	fmt.Println("---")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create logger
	var console io.Writer
	if cfg.Logging.EveryGenSummary {
		console = os.Stdout
	}
	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath, console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Initialize RNG
	rng := rand.New(rand.NewSource(cfg.Seed))
	evolver := ga.NewEvolver(domain, rng, logger)

	if cfg.Logging.SQLitePath != "" {
		store, err := logging.OpenStatsStore(ctx, cfg.Logging.SQLitePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening stats store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.BeginRun(ctx, evolver.RunID(), cfg.Seed, cfg.Params(), evaluator.Mode()); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering run: %v\n", err)
			os.Exit(1)
		}
		evolver.AddReporter(store)
	}

	startTime := time.Now()

	result, err := evolver.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: run aborted: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	fmt.Println("---")
	fmt.Printf("Run %s complete! %d generations in %v\n", result.RunID, len(result.History), elapsed)
	fmt.Printf("Initial: Avg=%.2f, Max=%.4f, Min=%.4f\n", result.Initial.Average, result.Initial.Max, result.Initial.Min)

	best := result.Final.Best()
	fmt.Printf("Best: Fitness=%.4f, Genome=%s\n", best.Fitness(), best.Genome())
	if *topN > 0 {
		logging.LogTopK(os.Stdout, result.Final, *topN)
	}

	// Save final champion
	if cfg.Logging.ChampionPath != "" {
		if err := logging.SaveChampion(cfg.Logging.ChampionPath, result.RunID, best, len(result.History)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save champion: %v\n", err)
		}
	}
}

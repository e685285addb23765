package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"bitevolve/internal/config"
	"bitevolve/internal/eval"
	"bitevolve/internal/ga"
	"bitevolve/internal/logging"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "path to config file (defaults when empty)")
	championPath := flag.String("champion", "", "path to champion JSON")
	genomeStr := flag.String("genome", "", "genome to score, e.g. 01010101")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	text := *genomeStr
	if *championPath != "" {
		champion, err := logging.LoadChampion(*championPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading champion: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded champion from gen %d (fitness=%.4f, run=%s)\n",
			champion.Generation, champion.Fitness, champion.RunID)
		text = champion.Genome
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -genome or -champion is required")
		os.Exit(1)
	}

	genome, err := ga.ParseGenome(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing genome: %v\n", err)
		os.Exit(1)
	}

	// Score against the genome's own length so any champion can be inspected
	cfg.GA.BitLength = len(genome)
	if cfg.GA.CrossoverPoints >= cfg.GA.BitLength {
		cfg.GA.CrossoverPoints = 0
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
	ind, err := ga.NewIndividual(domain, genome)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render(genome))
	fmt.Printf("  Mode: %s | Bits: %d | Ones: %d | Fitness: %.4f\n",
		evaluator.Mode(), len(genome), genome.Ones(), ind.Fitness())
}

// render draws the genome as a strip, wrapped at 64 bits
func render(g ga.Genome) string {
	var sb strings.Builder
	for i, b := range g {
		if i > 0 && i%64 == 0 {
			sb.WriteByte('\n')
		}
		if b != 0 {
			sb.WriteString("█")
		} else {
			sb.WriteString("·")
		}
	}
	return sb.String()
}

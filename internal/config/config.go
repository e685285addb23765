package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bitevolve/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	GA      GAConfig      `yaml:"ga"`
	Fitness FitnessConfig `yaml:"fitness"`
	Logging LogConfig     `yaml:"logging"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	BitLength       int     `yaml:"bit_length"`
	Population      int     `yaml:"population"`
	Generations     int     `yaml:"generations"`
	CrossoverPoints int     `yaml:"crossover_points"`
	TournamentK     int     `yaml:"tournament_k"`
	SurvivorRatio   float64 `yaml:"survivor_ratio"`
	MutationRate    float64 `yaml:"mutation_rate"`
	MutationMode    string  `yaml:"mutation_mode"` // per_bit|single_bit
}

// FitnessConfig defines the fitness function
type FitnessConfig struct {
	Mode  string `yaml:"mode"` // ones|leading_ones|trap|hiff
	TrapK int    `yaml:"trap_k"`
}

// LogConfig defines reporting parameters. An empty path disables that sink.
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
	SQLitePath      string `yaml:"sqlite_path"`
	ChampionPath    string `yaml:"champion_path"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults, so keys absent from the
// file keep their default and explicit zeros are honoured.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the stock run: the original OneMax setup with a per-bit
// mutation rate
func Default() *Config {
	return &Config{
		Seed: 1337,
		GA: GAConfig{
			BitLength:       100,
			Population:      10000,
			Generations:     5,
			CrossoverPoints: 15,
			TournamentK:     20,
			SurvivorRatio:   0.8,
			MutationRate:    0.01,
			MutationMode:    string(ga.MutatePerBit),
		},
		Fitness: FitnessConfig{
			Mode:  "ones",
			TrapK: 4,
		},
	}
}

// applyDefaults fills string keys written out as empty values
func applyDefaults(cfg *Config) {
	if cfg.GA.MutationMode == "" {
		cfg.GA.MutationMode = string(ga.MutatePerBit)
	}
	if cfg.Fitness.Mode == "" {
		cfg.Fitness.Mode = "ones"
	}
}

// Params converts the GA section to run parameters
func (c *Config) Params() ga.Params {
	return ga.Params{
		BitLength:       c.GA.BitLength,
		Population:      c.GA.Population,
		Generations:     c.GA.Generations,
		CrossoverPoints: c.GA.CrossoverPoints,
		TournamentK:     c.GA.TournamentK,
		SurvivorRatio:   c.GA.SurvivorRatio,
		MutationRate:    c.GA.MutationRate,
		MutationMode:    ga.MutationMode(c.GA.MutationMode),
	}
}

// Validate checks the GA invariants
func (c *Config) Validate() error {
	return c.Params().Validate()
}

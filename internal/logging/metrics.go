package logging

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"bitevolve/internal/ga"
)

// Logger writes per-generation summaries to the console, a CSV file and a
// JSON lines file. Empty paths and a nil console disable that output.
type Logger struct {
	csvPath     string
	jsonPath    string
	console     io.Writer
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string, console io.Writer) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  console,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Init opens the log files
func (l *Logger) Init() error {
	var err error

	if l.csvPath != "" {
		l.csvFile, err = os.Create(l.csvPath)
		if err != nil {
			return err
		}
		l.csvWriter = csv.NewWriter(l.csvFile)

		header := []string{"generation", "remaining", "size", "avg_fitness", "max_fitness", "min_fitness", "std_fitness", "flips"}
		if err := l.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if l.jsonPath != "" {
		l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	if l.csvFile != nil {
		if err := l.csvFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.jsonFile != nil {
		if err := l.jsonFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Report logs a generation summary
func (l *Logger) Report(_ context.Context, s ga.GenerationStats) error {
	if !l.initialized {
		return nil
	}

	if l.csvWriter != nil {
		row := []string{
			strconv.Itoa(s.Generation),
			strconv.Itoa(s.Remaining),
			strconv.Itoa(s.Size),
			fmt.Sprintf("%.2f", s.Average),
			strconv.FormatFloat(s.Max, 'f', -1, 64),
			strconv.FormatFloat(s.Min, 'f', -1, 64),
			fmt.Sprintf("%.4f", s.StdDev),
			strconv.Itoa(s.Flips),
		}
		if err := l.csvWriter.Write(row); err != nil {
			return err
		}
		l.csvWriter.Flush()
		if err := l.csvWriter.Error(); err != nil {
			return err
		}
	}

	if l.jsonFile != nil {
		line, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := l.jsonFile.Write(append(line, '\n')); err != nil {
			return err
		}
	}

	if l.console != nil {
		fmt.Fprintf(l.console, "Gen %4d | Avg: %.2f | Max: %.4f | Min: %.4f | Std: %.4f | Flips: %d\n",
			s.Generation, s.Average, s.Max, s.Min, s.StdDev, s.Flips)
	}
	return nil
}

// LogTopK prints the top K individuals of a population
func LogTopK(w io.Writer, pop *ga.Population, k int) {
	pop.SortByFitness()
	if k > pop.Size() {
		k = pop.Size()
	}
	fmt.Fprintf(w, "  Top %d individuals:\n", k)
	for i := 0; i < k; i++ {
		ind := pop.Individuals[i]
		fmt.Fprintf(w, "    #%d: Fitness=%.4f, Genome=%s\n", i+1, ind.Fitness(), ind.Genome())
	}
}

// Champion is the saved form of the best individual of a run
type Champion struct {
	RunID      string  `json:"run_id,omitempty"`
	Generation int     `json:"generation"`
	Fitness    float64 `json:"fitness"`
	Genome     string  `json:"genome"`
}

// SaveChampion saves the champion genome to a file
func SaveChampion(path, runID string, ind *ga.Individual, gen int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := Champion{
		RunID:      runID,
		Generation: gen,
		Fitness:    ind.Fitness(),
		Genome:     ind.Genome().String(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion loads a champion from a file
func LoadChampion(path string) (*Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved Champion
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}

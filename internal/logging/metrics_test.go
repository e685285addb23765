package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitevolve/internal/ga"
)

func testDomain(t *testing.T) *ga.Domain {
	t.Helper()
	d, err := ga.NewDomain(ga.Params{
		BitLength:       16,
		Population:      40,
		Generations:     3,
		CrossoverPoints: 2,
		TournamentK:     3,
		SurvivorRatio:   0.25,
		MutationRate:    0.01,
	}, ga.OnesFraction)
	require.NoError(t, err)
	return d
}

func TestLoggerWritesAllSinks(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out", "run.csv")
	jsonPath := filepath.Join(dir, "out", "run.jsonl")
	var console bytes.Buffer

	logger, err := NewLogger(csvPath, jsonPath, &console)
	require.NoError(t, err)
	require.NoError(t, logger.Init())

	ev := ga.NewEvolver(testDomain(t), rand.New(rand.NewSource(42)), logger)
	res, err := ev.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "generation", rows[0][0])
	assert.Equal(t, []string{"1", "2", "40"}, rows[1][:3])

	jf, err := os.Open(jsonPath)
	require.NoError(t, err)
	defer jf.Close()
	var got []ga.GenerationStats
	sc := bufio.NewScanner(jf)
	for sc.Scan() {
		var s ga.GenerationStats
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		got = append(got, s)
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, res.History, got)

	assert.Contains(t, console.String(), "Gen    1 |")
	assert.Contains(t, console.String(), "Gen    3 |")
}

func TestLoggerDisabledSinks(t *testing.T) {
	logger, err := NewLogger("", "", nil)
	require.NoError(t, err)
	require.NoError(t, logger.Init())

	err = logger.Report(context.Background(), ga.GenerationStats{Generation: 1})
	assert.NoError(t, err)
	assert.NoError(t, logger.Close())
}

func TestLoggerIgnoresReportsBeforeInit(t *testing.T) {
	var console bytes.Buffer
	logger, err := NewLogger("", "", &console)
	require.NoError(t, err)

	require.NoError(t, logger.Report(context.Background(), ga.GenerationStats{Generation: 1}))
	assert.Empty(t, console.String())
}

func TestLogTopK(t *testing.T) {
	d := testDomain(t)
	pop := ga.NewPopulation(d, rand.New(rand.NewSource(42)))

	var buf bytes.Buffer
	LogTopK(&buf, pop, 3)
	assert.Contains(t, buf.String(), "Top 3 individuals")
	assert.Contains(t, buf.String(), "#3:")
	assert.Equal(t, pop.Best().Fitness(), pop.Individuals[0].Fitness())
}

func TestChampionRoundTrip(t *testing.T) {
	d := testDomain(t)
	g, err := ga.ParseGenome("1111000011110000")
	require.NoError(t, err)
	ind, err := ga.NewIndividual(d, g)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "artifacts", "champion.json")
	require.NoError(t, SaveChampion(path, "run-1", ind, 7))

	champ, err := LoadChampion(path)
	require.NoError(t, err)
	assert.Equal(t, &Champion{
		RunID:      "run-1",
		Generation: 7,
		Fitness:    0.5,
		Genome:     "1111000011110000",
	}, champ)
}

func TestLoadChampionMissing(t *testing.T) {
	_, err := LoadChampion(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

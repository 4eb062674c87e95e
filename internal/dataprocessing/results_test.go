package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olympicscli/pkg/contracts/domain"
)

func sampleRawResults() []domain.RawResult {
	return []domain.RawResult{
		{
			AthleteID:   "1",
			Games:       "2008 Summer Olympics",
			Event:       "100 metres, Men",
			Team:        "France",
			Pos:         "1",
			Medal:       "Gold",
			Discipline:  "Athletics",
			NOC:         "FRA",
			Nationality: "France",
			As:          "Jean Dupont",
		},
		{
			AthleteID:  "1",
			Games:      "2012 Summer Olympics",
			Event:      "200 metres, Men",
			Team:       "France",
			Pos:        "5",
			Discipline: "Athletics",
			NOC:        "FRA",
		},
		{
			AthleteID:  "99",
			Games:      "1952 Summer Olympics",
			Event:      "Marathon, Men",
			Team:       "Sweden",
			Discipline: "Athletics",
			NOC:        "SWE",
		},
	}
}

func TestResultsCleanerPreservesCardinality(t *testing.T) {
	cleaner := NewResultsCleaner(nil)
	raw := sampleRawResults()

	cleaned, report := cleaner.Clean(raw)

	// No row filtering: every participation record passes through.
	assert.Len(t, cleaned, len(raw))
	assert.Equal(t, len(raw), report.InputRows)
	assert.Equal(t, len(raw), report.OutputRows)
	assert.Equal(t, 0, report.DroppedRows())
}

func TestResultsCleanerFieldMapping(t *testing.T) {
	cleaner := NewResultsCleaner(nil)

	cleaned, _ := cleaner.Clean(sampleRawResults())
	require.NotEmpty(t, cleaned)

	r := cleaned[0]
	assert.Equal(t, "1", r.AthleteID)
	assert.Equal(t, "FRA", r.NOC)
	assert.Equal(t, "2008 Summer Olympics", r.Games)
	assert.Equal(t, "100 metres, Men", r.Event)
	assert.Equal(t, "France", r.Team)
	assert.Equal(t, "1", r.Position)
	assert.Equal(t, "Gold", r.Medal)
	assert.Equal(t, "Athletics", r.Discipline)
}

func TestResultsCleanerDropsRedundantColumns(t *testing.T) {
	// Nationality and the display-name column are intentionally absent
	// from the cleaned header: nationality comes from the bios join.
	header := domain.CleanedResultHeader()
	assert.Equal(t, []string{"athlete_id", "NOC", "games", "event", "team", "position", "medal", "discipline"}, header)
	assert.NotContains(t, header, "nationality")
	assert.NotContains(t, header, "as")
}

func TestResultsCleanerEmptyInput(t *testing.T) {
	cleaner := NewResultsCleaner(nil)

	cleaned, report := cleaner.Clean(nil)

	assert.Empty(t, cleaned)
	assert.Equal(t, 0, report.InputRows)
	assert.Equal(t, 0, report.OutputRows)
}

package ingest

import (
	"fmt"
	"log/slog"

	"olympicscli/pkg/contracts/domain"
)

// LoadBiographies reads the raw bios dataset from a CSV or XLSX file.
// The athlete_id column is required; every other column is optional and
// reads as missing when absent.
func LoadBiographies(path string) ([]domain.RawBiography, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bios table: %w", err)
	}
	if !t.HasColumn(domain.BiosColAthleteID) {
		return nil, fmt.Errorf("bios table missing %s column", domain.BiosColAthleteID)
	}

	bios := make([]domain.RawBiography, 0, t.Len())
	for _, row := range t.Rows {
		bios = append(bios, domain.RawBiography{
			AthleteID:    t.Cell(row, domain.BiosColAthleteID),
			Sex:          t.Cell(row, domain.BiosColSex),
			UsedName:     t.Cell(row, domain.BiosColUsedName),
			FullName:     t.Cell(row, domain.BiosColFullName),
			OriginalName: t.Cell(row, domain.BiosColOriginalName),
			NameOrder:    t.Cell(row, domain.BiosColNameOrder),
			OtherNames:   t.Cell(row, domain.BiosColOtherNames),
			NickNames:    t.Cell(row, domain.BiosColNickNames),
			Roles:        t.Cell(row, domain.BiosColRoles),
			Born:         t.Cell(row, domain.BiosColBorn),
			Died:         t.Cell(row, domain.BiosColDied),
			Measurements: t.Cell(row, domain.BiosColMeasurements),
			NOC:          t.Cell(row, domain.BiosColNOC),
			Nationality:  t.Cell(row, domain.BiosColNationality),
			Titles:       t.Cell(row, domain.BiosColTitles),
			Affiliations: t.Cell(row, domain.BiosColAffiliations),
		})
	}

	slog.Info("Loaded raw biographies",
		slog.String("path", path),
		slog.Int("rows", len(bios)))

	return bios, nil
}

// LoadResults reads the raw results dataset from a CSV or XLSX file.
func LoadResults(path string) ([]domain.RawResult, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results table: %w", err)
	}
	if !t.HasColumn(domain.ResultsColAthleteID) {
		return nil, fmt.Errorf("results table missing %s column", domain.ResultsColAthleteID)
	}

	results := make([]domain.RawResult, 0, t.Len())
	for _, row := range t.Rows {
		results = append(results, domain.RawResult{
			AthleteID:   t.Cell(row, domain.ResultsColAthleteID),
			Games:       t.Cell(row, domain.ResultsColGames),
			Event:       t.Cell(row, domain.ResultsColEvent),
			Team:        t.Cell(row, domain.ResultsColTeam),
			Pos:         t.Cell(row, domain.ResultsColPos),
			Medal:       t.Cell(row, domain.ResultsColMedal),
			Discipline:  t.Cell(row, domain.ResultsColDiscipline),
			NOC:         t.Cell(row, domain.ResultsColNOC),
			Nationality: t.Cell(row, domain.ResultsColNationality),
			As:          t.Cell(row, domain.ResultsColAs),
		})
	}

	slog.Info("Loaded raw results",
		slog.String("path", path),
		slog.Int("rows", len(results)))

	return results, nil
}

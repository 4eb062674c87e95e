package dataprocessing

import (
	"log/slog"

	"olympicscli/pkg/contracts/domain"
)

// BiosCleaner transforms raw biography rows into cleaned ones. Each input
// row is handled independently; no step mutates shared state, so the
// cleaner takes an immutable input slice and returns a new output slice.
type BiosCleaner struct {
	logger *slog.Logger
}

// NewBiosCleaner creates a bios cleaner. A nil logger falls back to the
// default slog logger.
func NewBiosCleaner(logger *slog.Logger) *BiosCleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &BiosCleaner{logger: logger}
}

// Clean applies the full bios transformation chain: role filtering, name
// normalization, birth/death splitting, measurement extraction, and
// numeric coercion. Only rows whose role tags contain the competed marker
// survive. No input value ever aborts the run; extraction failures
// degrade to missing and land in the report.
func (c *BiosCleaner) Clean(raw []domain.RawBiography) ([]domain.CleanedBiography, *CleanReport) {
	report := newCleanReport()
	report.InputRows = len(raw)

	cleaned := make([]domain.CleanedBiography, 0, len(raw))
	for _, row := range raw {
		if !HasCompetedRole(row.Roles) {
			if IsStructuralAnomaly(row.Roles) {
				report.Anomalies++
				c.logger.Debug("Row matches no known role category",
					slog.String("athlete_id", row.AthleteID),
					slog.String("roles", row.Roles))
			}
			continue
		}
		cleaned = append(cleaned, c.cleanRow(row, report))
	}

	report.OutputRows = len(cleaned)
	return cleaned, report
}

// cleanRow derives one cleaned biography from one raw row.
func (c *BiosCleaner) cleanRow(row domain.RawBiography, report *CleanReport) domain.CleanedBiography {
	heightToken, weightToken := SplitMeasurements(row.Measurements)

	height, heightOutcome := CoerceFloat(heightToken)
	if heightOutcome == OutcomeMalformed {
		report.recordMalformed("height_cm", row.Measurements)
	}

	weight, weightOutcome := CoerceFloat(weightToken)
	if weightOutcome == OutcomeMalformed {
		report.recordMalformed("weight_kg", row.Measurements)
	}

	return domain.CleanedBiography{
		AthleteID:       row.AthleteID,
		Sex:             row.Sex,
		Name:            CleanName(row.UsedName),
		BornDate:        ExtractDate(row.Born),
		BornCity:        ExtractCity(row.Born),
		BornRegion:      ExtractRegion(row.Born),
		BornCountry:     ExtractCountry(row.Born),
		NOC:             row.NOC,
		Nationality:     row.Nationality,
		DiedDate:        ExtractDate(row.Died),
		HeightCM:        height,
		WeightKG:        weight,
		Titles:          row.Titles,
		AdditionalRoles: AdditionalRoles(row.Roles),
		Affiliations:    row.Affiliations,
	}
}

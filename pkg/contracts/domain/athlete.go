package domain

// Raw bios column headers as they appear in the scraped dataset.
const (
	BiosColAthleteID    = "athlete_id"
	BiosColSex          = "Sex"
	BiosColUsedName     = "Used name"
	BiosColFullName     = "Full name"
	BiosColOriginalName = "Original name"
	BiosColNameOrder    = "Name order"
	BiosColOtherNames   = "Other names"
	BiosColNickNames    = "Nick/petnames"
	BiosColRoles        = "Roles"
	BiosColBorn         = "Born"
	BiosColDied         = "Died"
	BiosColMeasurements = "Measurements"
	BiosColNOC          = "NOC"
	BiosColNationality  = "Nationality"
	BiosColTitles       = "Title(s)"
	BiosColAffiliations = "Affiliations"
)

// RawBiography is one row of the raw bios dataset, one per person scraped
// from olympedia.org. All fields are raw cell text; a missing source value
// is the empty string.
type RawBiography struct {
	AthleteID    string `json:"athlete_id"`
	Sex          string `json:"sex"`
	UsedName     string `json:"used_name"`
	FullName     string `json:"full_name"`
	OriginalName string `json:"original_name"`
	NameOrder    string `json:"name_order"`
	OtherNames   string `json:"other_names"`
	NickNames    string `json:"nick_names"`
	Roles        string `json:"roles"`
	Born         string `json:"born"`
	Died         string `json:"died"`
	Measurements string `json:"measurements"`
	NOC          string `json:"noc"`
	Nationality  string `json:"nationality"`
	Titles       string `json:"titles"`
	Affiliations string `json:"affiliations"`
}

// CleanedBiography is the normalized bios row, one per person who competed
// in official Olympic Games. Birth and death dates stay strings: the source
// mixes full dates, year-only values, and approximations like "c. 1929"
// that cannot be coerced to a date type without guessing.
type CleanedBiography struct {
	AthleteID       string   `json:"athlete_id"`
	Sex             string   `json:"sex"`
	Name            string   `json:"name"`
	BornDate        string   `json:"born_date"`
	BornCity        string   `json:"born_city"`
	BornRegion      string   `json:"born_region"`
	BornCountry     string   `json:"born_country"`
	NOC             string   `json:"noc"`
	Nationality     string   `json:"nationality"`
	DiedDate        string   `json:"died_date"`
	HeightCM        *float64 `json:"height_cm"`
	WeightKG        *float64 `json:"weight_kg"`
	Titles          string   `json:"titles"`
	AdditionalRoles string   `json:"additional_roles"`
	Affiliations    string   `json:"affiliations"`
}

// CleanedBiographyHeader is the output column order: identity fields first,
// then birth fields, then death/physical/role fields. NOC keeps its
// uppercase spelling.
func CleanedBiographyHeader() []string {
	return []string{
		"athlete_id", "sex", "name",
		"born_date", "born_city", "born_region", "born_country",
		"NOC", "nationality",
		"died_date", "height_cm", "weight_kg",
		"title(s)", "additional_roles", "affiliations",
	}
}

// Record serializes the row in header order. Missing values become empty
// fields.
func (b CleanedBiography) Record() []string {
	return []string{
		b.AthleteID, b.Sex, b.Name,
		b.BornDate, b.BornCity, b.BornRegion, b.BornCountry,
		b.NOC, b.Nationality,
		b.DiedDate, formatOptionalFloat(b.HeightCM), formatOptionalFloat(b.WeightKG),
		b.Titles, b.AdditionalRoles, b.Affiliations,
	}
}

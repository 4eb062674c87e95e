package domain

import "strconv"

// Raw results column headers as they appear in the scraped dataset.
const (
	ResultsColAthleteID   = "athlete_id"
	ResultsColGames       = "Games"
	ResultsColEvent       = "Event"
	ResultsColTeam        = "Team"
	ResultsColPos         = "Pos"
	ResultsColMedal       = "Medal"
	ResultsColDiscipline  = "Discipline"
	ResultsColNOC         = "NOC"
	ResultsColNationality = "Nationality"
	ResultsColAs          = "As"
	ResultsColUnnamed     = "Unnamed: 7"
)

// RawResult is one row of the raw results dataset, one per athlete-event
// participation. AthleteID is a foreign key into the bios dataset.
type RawResult struct {
	AthleteID   string `json:"athlete_id"`
	Games       string `json:"games"`
	Event       string `json:"event"`
	Team        string `json:"team"`
	Pos         string `json:"pos"`
	Medal       string `json:"medal"`
	Discipline  string `json:"discipline"`
	NOC         string `json:"noc"`
	Nationality string `json:"nationality"`
	As          string `json:"as"`
}

// CleanedResult is the normalized participation row. Nationality is
// intentionally dropped: it is obtained by joining against the cleaned
// bios on athlete_id.
type CleanedResult struct {
	AthleteID  string `json:"athlete_id"`
	NOC        string `json:"noc"`
	Games      string `json:"games"`
	Event      string `json:"event"`
	Team       string `json:"team"`
	Position   string `json:"position"`
	Medal      string `json:"medal"`
	Discipline string `json:"discipline"`
}

// CleanedResultHeader is the output column order, athlete_id first.
func CleanedResultHeader() []string {
	return []string{"athlete_id", "NOC", "games", "event", "team", "position", "medal", "discipline"}
}

// Record serializes the row in header order.
func (r CleanedResult) Record() []string {
	return []string{r.AthleteID, r.NOC, r.Games, r.Event, r.Team, r.Position, r.Medal, r.Discipline}
}

// JoinedRecord is a bios row enriched with one matching result row. It is
// an exploratory view only, never persisted.
type JoinedRecord struct {
	Biography CleanedBiography `json:"biography"`
	Result    CleanedResult    `json:"result"`
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

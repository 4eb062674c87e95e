package dataprocessing

import "olympicscli/pkg/contracts/domain"

// IndexBiographies builds an athlete_id lookup over cleaned biographies.
// athlete_id is expected to be unique; if the source ever violates that,
// the last row wins, which keeps join cardinality at one biography per
// result row.
func IndexBiographies(bios []domain.CleanedBiography) map[string]domain.CleanedBiography {
	index := make(map[string]domain.CleanedBiography, len(bios))
	for _, b := range bios {
		index[b.AthleteID] = b
	}
	return index
}

// InnerJoin joins results against biographies on athlete_id, keeping only
// result rows with a biography match. The join is many-to-one: one row
// per matched result row.
func InnerJoin(bios []domain.CleanedBiography, results []domain.CleanedResult) []domain.JoinedRecord {
	index := IndexBiographies(bios)

	var joined []domain.JoinedRecord
	for _, r := range results {
		if b, ok := index[r.AthleteID]; ok {
			joined = append(joined, domain.JoinedRecord{Biography: b, Result: r})
		}
	}
	return joined
}

// Medalists filters a joined view down to rows with a non-missing medal.
func Medalists(joined []domain.JoinedRecord) []domain.JoinedRecord {
	var out []domain.JoinedRecord
	for _, j := range joined {
		if j.Result.Medal != "" {
			out = append(out, j)
		}
	}
	return out
}

// TitledFemaleMedalists returns joined rows for female athletes holding a
// formal title who won a medal, an exploratory view over recognition
// versus Olympic success.
func TitledFemaleMedalists(joined []domain.JoinedRecord) []domain.JoinedRecord {
	var out []domain.JoinedRecord
	for _, j := range Medalists(joined) {
		if j.Biography.Sex == "Female" && j.Biography.Titles != "" {
			out = append(out, j)
		}
	}
	return out
}

// BornCountryMismatches returns joined rows where the athlete competed
// under a NOC different from their birth country, revealing athletic
// migration and citizenship changes. Rows missing either side are skipped.
func BornCountryMismatches(joined []domain.JoinedRecord) []domain.JoinedRecord {
	var out []domain.JoinedRecord
	for _, j := range joined {
		if j.Result.NOC == "" || j.Biography.BornCountry == "" {
			continue
		}
		if j.Result.NOC != j.Biography.BornCountry {
			out = append(out, j)
		}
	}
	return out
}

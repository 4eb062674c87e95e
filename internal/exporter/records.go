package exporter

import "olympicscli/pkg/contracts/domain"

// WriteBiographies writes the cleaned bios dataset to the given path.
// Header order and field serialization follow the domain contract;
// missing values become empty fields, no index column is added.
func (w *CSVWriter) WriteBiographies(filePath string, bios []domain.CleanedBiography) error {
	records := make([][]string, 0, len(bios))
	for _, b := range bios {
		records = append(records, b.Record())
	}
	return w.WriteSimpleCSV(filePath, domain.CleanedBiographyHeader(), records)
}

// WriteResults writes the cleaned results dataset to the given path.
func (w *CSVWriter) WriteResults(filePath string, results []domain.CleanedResult) error {
	records := make([][]string, 0, len(results))
	for _, r := range results {
		records = append(records, r.Record())
	}
	return w.WriteSimpleCSV(filePath, domain.CleanedResultHeader(), records)
}

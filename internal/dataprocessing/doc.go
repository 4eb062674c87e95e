// Package dataprocessing normalizes the raw Olympics athlete datasets.
// It consolidates field extraction, row cleaning, and join views into a
// cohesive package that handles the complete lifecycle from raw rows to
// cleaned, analysis-ready records.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Field extraction: pure functions that pull structured sub-fields out
// of the semi-structured source strings (composite birth/death strings,
// combined measurements, free-text role tags)
//
// 2. Cleaners: BiosCleaner and ResultsCleaner apply the per-row
// transformation chain and produce the cleaned record sets
//
// 3. Views: ad hoc equi-joins on athlete_id for exploratory analysis
//
// # Error Handling
//
// Per-field parsing never fails the pipeline. A value that is absent reads
// as missing; a value that is present but malformed degrades to missing
// and is counted in the CleanReport together with a bounded set of raw
// exemplars, so silent data loss stays auditable.
package dataprocessing

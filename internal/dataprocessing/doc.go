// Package dataprocessing loads small-body CSV exports and summarizes them.
//
// # Data Flow
//
//	CSV file → ParseFile → []domain.Asteroid → Summarizer.Summarize → domain.AsteroidSummary
//
// ParseFile locates the full_name, neo, pha, diameter, albedo, q and moid
// columns by header name. Empty numeric cells are kept as absent
// measurements and never enter a statistic.
//
// Summarize makes a single pass: it counts and lists near-Earth and
// potentially hazardous objects, collects the hazardous objects' MOIDs and
// gathers diameter, albedo and perihelion samples. Median and Mean fail with
// an EMPTY_SAMPLE error instead of returning zero for an empty sample set.
//
// # Errors
//
//	- NOT_FOUND: the dataset path does not exist
//	- PARSING: malformed CSV, a missing column or a non-numeric measurement
//	- DATA_INTEGRITY: a hazardous object without a usable moid
//	- EMPTY_SAMPLE: a statistic with no contributing values
package dataprocessing

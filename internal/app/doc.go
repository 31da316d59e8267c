// Package app wires configuration, logging, telemetry and the report
// pipeline together.
//
// # Pipeline
//
//	1. Validate the dataset (.csv) and, if given, report (.xlsx) extensions,
//	   then check the dataset is an existing regular file
//	2. Load the dataset (dataprocessing.ParseFile)
//	3. Summarize it in one pass (dataprocessing.Summarizer)
//	4. Print the summary, or write the spreadsheet and confirm its path
//
// Each step runs in its own span and every log record carries the run's
// trace_id. The first failing step's error is returned unchanged so the
// caller can report it and exit.
package app

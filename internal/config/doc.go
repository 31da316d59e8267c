// Package config provides configuration management for asteroid-report.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later ones winning:
//
//	1. Built-in defaults (Default)
//	2. A YAML file: asteroid-report.yaml or configs/asteroid-report.yaml
//	3. Environment variables prefixed with ASTEROID_
//
// # Environment Variables
//
//	ASTEROID_LOGGING_LEVEL=debug
//	ASTEROID_LOGGING_OUTPUT=both
//	ASTEROID_REPORT_LIST_ROW=6
//	ASTEROID_TELEMETRY_TRACE_EXPORTER=stdout
//	ASTEROID_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/asteroid.prom
//
// These only tune logging, report colours and telemetry. The dataset and
// report paths always come from the command line.
//
// # Validation
//
// Load validates the result with struct tags (go-playground/validator) and
// returns a CONFIG AppError on failure.
package config

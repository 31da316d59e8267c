package config

import "asteroidcli/pkg/contracts"

// Application constants
const (
	AppName    = "asteroid-report"
	AppVersion = contracts.Version

	// DatasetExtension is the only accepted input extension
	DatasetExtension = ".csv"
	// ReportExtension is the only accepted spreadsheet output extension
	ReportExtension = ".xlsx"

	// DefaultListRow is where the name list blocks start in the spreadsheet
	DefaultListRow = 4
)

// Dataset column names as they appear in the CSV header
const (
	ColumnName       = "full_name"
	ColumnNEO        = "neo"
	ColumnPHA        = "pha"
	ColumnDiameter   = "diameter"
	ColumnAlbedo     = "albedo"
	ColumnPerihelion = "q"
	ColumnMOID       = "moid"
)

// RequiredColumns lists every column the loader needs, in report order
var RequiredColumns = []string{
	ColumnName,
	ColumnNEO,
	ColumnPHA,
	ColumnDiameter,
	ColumnAlbedo,
	ColumnPerihelion,
	ColumnMOID,
}

package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"asteroidcli/internal/config"
	apperrors "asteroidcli/internal/errors"
	"asteroidcli/pkg/contracts/domain"
)

// ParseFile reads a small-body CSV export and returns its rows in file order.
// The file is closed on every return path.
func ParseFile(filePath string) ([]domain.Asteroid, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("the dataset file named %q", filePath), err)
		}
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open dataset %s", filePath), err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, err
	}

	slog.Debug("Dataset loaded",
		slog.String("file", filePath),
		slog.Int("records", len(records)))
	return records, nil
}

// Parse decodes CSV data with a header row. Columns are located by name, so
// order and extra columns do not matter. Empty numeric cells stay absent.
func Parse(r io.Reader) ([]domain.Asteroid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewParsingError("dataset is empty: missing header row", nil)
	}
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read header", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Asteroid
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read row", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row, columns, len(records)+1)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				appErr.WithContext("line", line)
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// columnIndex maps each required column to its position in the header
type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx := make(columnIndex, len(config.RequiredColumns))
	for i, col := range header {
		name := strings.TrimSpace(col)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	for _, col := range config.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, apperrors.NewParsingError(fmt.Sprintf("missing required column %q", col), nil).
				WithContext("column", col)
		}
	}
	return idx, nil
}

func parseRow(row []string, columns columnIndex, rowNum int) (domain.Asteroid, error) {
	cell := func(col string) (string, error) {
		i := columns[col]
		if i >= len(row) {
			return "", apperrors.NewParsingError(
				fmt.Sprintf("row %d has %d columns, want at least %d", rowNum, len(row), i+1), nil).
				WithContext("row", rowNum)
		}
		return strings.TrimSpace(row[i]), nil
	}

	rec := domain.Asteroid{Row: rowNum}
	var err error

	if rec.Name, err = cell(config.ColumnName); err != nil {
		return rec, err
	}
	neo, err := cell(config.ColumnNEO)
	if err != nil {
		return rec, err
	}
	pha, err := cell(config.ColumnPHA)
	if err != nil {
		return rec, err
	}
	rec.NearEarth = domain.IsFlagSet(neo)
	rec.Hazardous = domain.IsFlagSet(pha)

	strict := []struct {
		col string
		dst *domain.Measurement
	}{
		{config.ColumnDiameter, &rec.Diameter},
		{config.ColumnAlbedo, &rec.Albedo},
		{config.ColumnPerihelion, &rec.Perihelion},
	}
	for _, f := range strict {
		raw, err := cell(f.col)
		if err != nil {
			return rec, err
		}
		m, perr := domain.ParseMeasurement(raw)
		if perr != nil {
			return rec, apperrors.NewParsingError(
				fmt.Sprintf("row %d (%s): invalid %s value %q", rowNum, rec.Name, f.col, raw), perr).
				WithContext("row", rowNum).
				WithContext("column", f.col)
		}
		*f.dst = m
	}

	// moid only matters for hazardous objects; the summarizer judges it
	raw, err := cell(config.ColumnMOID)
	if err != nil {
		return rec, err
	}
	rec.MOID, _ = domain.ParseMeasurement(raw)

	return rec, nil
}

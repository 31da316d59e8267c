package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"asteroidcli/internal/config"
	"asteroidcli/pkg/contracts/domain"
)

// Header labels of the spreadsheet report
const (
	LabelDiameterMedian   = "diameter_median"
	LabelDiameterAverage  = "diameter_average"
	LabelAlbedoAverage    = "albedo_average"
	LabelPerihelionMedian = "perihelion_median"
	LabelNEOTotal         = "neo_total"
	LabelPHATotal         = "pha_total"
	LabelItemsTotal       = "items_total"
	LabelNEONames         = "neo_names"
	LabelPHANames         = "pha_names"
	LabelPHAMOID          = "pha_moid"
)

const headerFontColor = "000000"

// Columns of the list blocks; column B stays empty as a separator
const (
	neoNamesCol = 1
	phaNamesCol = 3
	phaMOIDCol  = 4
)

// ExcelReporter writes an AsteroidSummary as a styled xlsx workbook
type ExcelReporter struct {
	cfg    config.ReportConfig
	logger *slog.Logger
}

// NewExcelReporter creates a reporter using the given layout settings
func NewExcelReporter(cfg config.ReportConfig, logger *slog.Logger) *ExcelReporter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ListRow == 0 {
		cfg.ListRow = config.DefaultListRow
	}
	return &ExcelReporter{cfg: cfg, logger: logger}
}

// Export renders the summary and saves it to path. Either the whole workbook
// ends up at path or the previous content of path is left untouched.
func (r *ExcelReporter) Export(ctx context.Context, summary *domain.AsteroidSummary, path string) error {
	wb := NewWorkbook()
	defer wb.Close()

	cells := BuildLayout(summary, r.cfg)
	if err := Render(wb, cells); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := wb.SaveAs(path); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Excel report written",
		slog.String("path", path),
		slog.Int("cells", len(cells)))
	return nil
}

// Render writes cells in order to w
func Render(w SheetWriter, cells []Cell) error {
	for _, c := range cells {
		if err := w.WriteCell(c); err != nil {
			return err
		}
	}
	return nil
}

// BuildLayout places the statistics in rows 1-2 and the name lists from
// cfg.ListRow downwards.
func BuildLayout(s *domain.AsteroidSummary, cfg config.ReportConfig) []Cell {
	header := Style{Bold: true, FontColor: headerFontColor, FillColor: cfg.HeaderFill}

	stats := []struct {
		label string
		value interface{}
		style Style
	}{
		{LabelDiameterMedian, s.DiameterMedian, Style{}},
		{LabelDiameterAverage, s.DiameterAverage, Style{}},
		{LabelAlbedoAverage, s.AlbedoAverage, Style{}},
		{LabelPerihelionMedian, s.PerihelionMedian, Style{}},
		{LabelNEOTotal, s.NEOTotal, Style{Bold: true, FontColor: cfg.NEOAccent}},
		{LabelPHATotal, s.PHATotal, Style{Bold: true, FontColor: cfg.PHAAccent}},
		{LabelItemsTotal, s.ItemsTotal, Style{}},
	}

	cells := make([]Cell, 0, 2*len(stats)+3+len(s.NEONames)+2*len(s.PHANames))
	for i, st := range stats {
		cells = append(cells,
			Cell{Col: i + 1, Row: 1, Value: st.label, Style: header},
			Cell{Col: i + 1, Row: 2, Value: st.value, Style: st.style},
		)
	}

	listRow := cfg.ListRow
	neoHeader := Style{Bold: true, FontColor: headerFontColor, FillColor: cfg.NEOAccent}
	phaHeader := Style{Bold: true, FontColor: headerFontColor, FillColor: cfg.PHAAccent}
	neoData := Style{FillColor: cfg.NEOFill}
	phaData := Style{FillColor: cfg.PHAFill}

	cells = append(cells, Cell{Col: neoNamesCol, Row: listRow, Value: LabelNEONames, Style: neoHeader})
	for i, name := range s.NEONames {
		cells = append(cells, Cell{Col: neoNamesCol, Row: listRow + 1 + i, Value: name, Style: neoData})
	}

	cells = append(cells,
		Cell{Col: phaNamesCol, Row: listRow, Value: LabelPHANames, Style: phaHeader},
		Cell{Col: phaMOIDCol, Row: listRow, Value: LabelPHAMOID, Style: phaHeader},
	)
	for i, name := range s.PHANames {
		cells = append(cells, Cell{Col: phaNamesCol, Row: listRow + 1 + i, Value: name, Style: phaData})
	}
	for i, moid := range s.PHAMOIDs {
		cells = append(cells, Cell{Col: phaMOIDCol, Row: listRow + 1 + i, Value: moid, Style: phaData})
	}

	return cells
}

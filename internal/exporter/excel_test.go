package exporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"asteroidcli/internal/config"
	apperrors "asteroidcli/internal/errors"
	"asteroidcli/pkg/contracts/domain"
)

func sampleSummary() *domain.AsteroidSummary {
	return &domain.AsteroidSummary{
		DiameterMedian:   2,
		DiameterAverage:  2.5,
		AlbedoAverage:    0.17,
		PerihelionMedian: 1.015,
		ItemsTotal:       4,
		NEOTotal:         3,
		PHATotal:         2,
		NEONames:         []string{"433 Eros", "99942 Apophis", "(2020 AB)"},
		PHANames:         []string{"99942 Apophis", "(2021 XY)"},
		PHAMOIDs:         []float64{0.000104, 0.05},
	}
}

// recordingWriter captures cells without any spreadsheet library
type recordingWriter struct {
	cells map[[2]int]Cell
}

func (w *recordingWriter) WriteCell(c Cell) error {
	if w.cells == nil {
		w.cells = make(map[[2]int]Cell)
	}
	w.cells[[2]int{c.Col, c.Row}] = c
	return nil
}

func (w *recordingWriter) at(col, row int) Cell {
	return w.cells[[2]int{col, row}]
}

func TestBuildLayout(t *testing.T) {
	cfg := config.Default().Report
	rec := &recordingWriter{}
	require.NoError(t, Render(rec, BuildLayout(sampleSummary(), cfg)))

	headers := []string{
		LabelDiameterMedian, LabelDiameterAverage, LabelAlbedoAverage, LabelPerihelionMedian,
		LabelNEOTotal, LabelPHATotal, LabelItemsTotal,
	}
	for i, h := range headers {
		c := rec.at(i+1, 1)
		assert.Equal(t, h, c.Value)
		assert.True(t, c.Style.Bold)
		assert.Equal(t, "3DACFF", c.Style.FillColor)
	}

	assert.Equal(t, 2.0, rec.at(1, 2).Value)
	assert.Equal(t, 2.5, rec.at(2, 2).Value)
	assert.Equal(t, 0.17, rec.at(3, 2).Value)
	assert.Equal(t, 1.015, rec.at(4, 2).Value)
	assert.Equal(t, 3, rec.at(5, 2).Value)
	assert.Equal(t, 2, rec.at(6, 2).Value)
	assert.Equal(t, 4, rec.at(7, 2).Value)
	assert.True(t, rec.at(1, 2).Style.IsZero())
	assert.Equal(t, Style{Bold: true, FontColor: "FF9F3D"}, rec.at(5, 2).Style)
	assert.Equal(t, Style{Bold: true, FontColor: "FF0000"}, rec.at(6, 2).Style)

	assert.Equal(t, LabelNEONames, rec.at(1, 4).Value)
	assert.Equal(t, "FF9F3D", rec.at(1, 4).Style.FillColor)
	assert.Equal(t, "433 Eros", rec.at(1, 5).Value)
	assert.Equal(t, "(2020 AB)", rec.at(1, 7).Value)
	assert.Equal(t, "FFD2A5", rec.at(1, 7).Style.FillColor)

	assert.Equal(t, LabelPHANames, rec.at(3, 4).Value)
	assert.Equal(t, LabelPHAMOID, rec.at(4, 4).Value)
	assert.Equal(t, "FF0000", rec.at(4, 4).Style.FillColor)
	assert.Equal(t, "99942 Apophis", rec.at(3, 5).Value)
	assert.Equal(t, 0.000104, rec.at(4, 5).Value)
	assert.Equal(t, "(2021 XY)", rec.at(3, 6).Value)
	assert.Equal(t, 0.05, rec.at(4, 6).Value)
	assert.Equal(t, "FFA5A5", rec.at(4, 6).Style.FillColor)

	_, used := rec.cells[[2]int{2, 5}]
	assert.False(t, used, "column B separates the list blocks")
}

func TestBuildLayout_CustomListRow(t *testing.T) {
	cfg := config.Default().Report
	cfg.ListRow = 7

	rec := &recordingWriter{}
	require.NoError(t, Render(rec, BuildLayout(sampleSummary(), cfg)))

	assert.Equal(t, LabelNEONames, rec.at(1, 7).Value)
	assert.Equal(t, "433 Eros", rec.at(1, 8).Value)
	assert.Equal(t, LabelPHANames, rec.at(3, 7).Value)
}

func TestBuildLayout_EmptyLists(t *testing.T) {
	s := sampleSummary()
	s.NEONames, s.PHANames, s.PHAMOIDs = nil, nil, nil

	cells := BuildLayout(s, config.Default().Report)
	// 7 header/value pairs plus three list headers
	assert.Len(t, cells, 17)
}

func cellFill(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	id, err := f.GetCellStyle("Sheet1", ref)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color, "cell %s has no fill", ref)
	return strings.ToUpper(style.Fill.Color[0])
}

func TestExcelReporter_Export(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	reporter := NewExcelReporter(config.Default().Report, nil)
	require.NoError(t, reporter.Export(context.Background(), sampleSummary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		ref  string
		want string
	}{
		{"A1", LabelDiameterMedian},
		{"G1", LabelItemsTotal},
		{"A2", "2"},
		{"B2", "2.5"},
		{"E2", "3"},
		{"F2", "2"},
		{"G2", "4"},
		{"A4", LabelNEONames},
		{"A5", "433 Eros"},
		{"A7", "(2020 AB)"},
		{"C4", LabelPHANames},
		{"D4", LabelPHAMOID},
		{"C6", "(2021 XY)"},
		{"D6", "0.05"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Sheet1", tt.ref)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.ref)
	}

	assert.Contains(t, cellFill(t, f, "A1"), "3DACFF")
	assert.Contains(t, cellFill(t, f, "A4"), "FF9F3D")
	assert.Contains(t, cellFill(t, f, "A5"), "FFD2A5")
	assert.Contains(t, cellFill(t, f, "D4"), "FF0000")
	assert.Contains(t, cellFill(t, f, "C5"), "FFA5A5")

	id, err := f.GetCellStyle("Sheet1", "F2")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
	assert.Equal(t, "report.xlsx", entries[0].Name())
}

func TestExcelReporter_ExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, NewExcelReporter(config.Default().Report, nil).Export(context.Background(), sampleSummary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, LabelDiameterMedian, v)
}

func TestExcelReporter_ExportMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "report.xlsx")

	err := NewExcelReporter(config.Default().Report, nil).Export(context.Background(), sampleSummary(), path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkbook_StyleCache(t *testing.T) {
	wb := NewWorkbook()
	defer wb.Close()

	s := Style{Bold: true, FillColor: "3DACFF"}
	require.NoError(t, wb.WriteCell(Cell{Col: 1, Row: 1, Value: "a", Style: s}))
	require.NoError(t, wb.WriteCell(Cell{Col: 2, Row: 1, Value: "b", Style: s}))
	require.NoError(t, wb.WriteCell(Cell{Col: 3, Row: 1, Value: "c"}))

	assert.Len(t, wb.styles, 1)
}

func TestWorkbook_InvalidCoordinates(t *testing.T) {
	wb := NewWorkbook()
	defer wb.Close()

	err := wb.WriteCell(Cell{Col: 0, Row: 1, Value: "x"})
	assert.Error(t, err)
}

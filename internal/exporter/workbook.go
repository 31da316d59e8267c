package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "asteroidcli/internal/errors"
)

// Style describes how a cell looks. Colours are RGB hex without '#'; the zero
// Style leaves the cell unstyled.
type Style struct {
	Bold      bool
	FontColor string
	FillColor string
}

// IsZero reports whether the style has no effect
func (s Style) IsZero() bool {
	return s == Style{}
}

// Cell is one positioned, styled value. Col and Row are 1-based.
type Cell struct {
	Col   int
	Row   int
	Value interface{}
	Style Style
}

// SheetWriter receives report cells. Layout code only talks to this
// interface, never to the spreadsheet library.
type SheetWriter interface {
	WriteCell(c Cell) error
}

// Workbook is a single-sheet excelize workbook implementing SheetWriter
type Workbook struct {
	file   *excelize.File
	sheet  string
	styles map[Style]int
}

// NewWorkbook creates an empty workbook writing to its first sheet
func NewWorkbook() *Workbook {
	f := excelize.NewFile()
	return &Workbook{
		file:   f,
		sheet:  f.GetSheetName(0),
		styles: make(map[Style]int),
	}
}

// WriteCell sets the value and, if styled, the style of one cell
func (w *Workbook) WriteCell(c Cell) error {
	ref, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", c.Col, c.Row, err)
	}
	if err := w.file.SetCellValue(w.sheet, ref, c.Value); err != nil {
		return fmt.Errorf("set %s: %w", ref, err)
	}
	if c.Style.IsZero() {
		return nil
	}

	styleID, err := w.styleID(c.Style)
	if err != nil {
		return fmt.Errorf("style %s: %w", ref, err)
	}
	if err := w.file.SetCellStyle(w.sheet, ref, ref, styleID); err != nil {
		return fmt.Errorf("apply style %s: %w", ref, err)
	}
	return nil
}

// styleID registers each distinct Style once
func (w *Workbook) styleID(s Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}

	xs := &excelize.Style{
		Font: &excelize.Font{Bold: s.Bold, Color: s.FontColor},
	}
	if s.FillColor != "" {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.FillColor}}
	}

	id, err := w.file.NewStyle(xs)
	if err != nil {
		return 0, err
	}
	w.styles[s] = id
	return id, nil
}

// SaveAs writes the workbook to path atomically: the data goes to a temporary
// file in the same directory which is renamed over path only once complete.
func (w *Workbook) SaveAs(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".asteroid-report-*.xlsx")
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create report %s", path), err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := w.file.Write(tmp); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write report %s", path), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to set permissions on report %s", path), err)
	}
	if err := tmp.Sync(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to flush report %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to close report %s", path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to move report into place at %s", path), err)
	}

	committed = true
	return nil
}

// Close releases the workbook's resources
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Package exporter renders an AsteroidSummary for people.
//
// WriteSummary prints the three totals to any io.Writer.
//
// ExcelReporter produces the spreadsheet report. The layout is computed by
// BuildLayout as a flat list of positioned, styled cells and handed to a
// SheetWriter, so the layout code never depends on the spreadsheet library.
// Workbook is the excelize-backed SheetWriter; its SaveAs writes to a
// temporary file next to the target and renames it into place.
//
// Example usage:
//
//	reporter := exporter.NewExcelReporter(cfg.Report, logger)
//	if err := reporter.Export(ctx, summary, "report.xlsx"); err != nil {
//	    return err
//	}
package exporter

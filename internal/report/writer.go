// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// WriteCSV serializes aggregated hour rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []HoursRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "project_id", "person_id", "hours"}); err != nil {
		return fmt.Errorf("report: writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Month,
			row.ProjectID,
			row.PersonID,
			strconv.FormatFloat(row.Hours, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePDF renders aggregated hour rows as a single-table PDF document.
func WritePDF(path, title string, rows []HoursRow) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	widths := []float64{30, 55, 55, 30}
	headers := []string{"Month", "Project", "Person", "Hours"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, row.Month, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, row.ProjectID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.PersonID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, strconv.FormatFloat(row.Hours, 'f', 2, 64), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: writing pdf: %w", err)
	}
	return nil
}

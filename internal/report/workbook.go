package report

import (
	"io"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/voyage"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetBreakdown = "Breakdown"
	SheetScenarios = "Scenarios"

	// number format 2 is "0.00"
	numFmtTwoDecimals = 2
	// number format 3 is "#,##0"
	numFmtThousands = 3
)

type sheetWriter struct {
	f       *excelize.File
	bold    int
	hours   int
	rupiahs int
}

func newSheetWriter(first string) (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		return nil, errors.Wrap(err, "rename default sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "bold style")
	}
	hours, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, errors.Wrap(err, "hours style")
	}
	rupiahs, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return nil, errors.Wrap(err, "rupiah style")
	}
	return &sheetWriter{f: f, bold: bold, hours: hours, rupiahs: rupiahs}, nil
}

func (s *sheetWriter) addSheet(name string) error {
	_, err := s.f.NewSheet(name)
	return errors.Wrapf(err, "add sheet %s", name)
}

// row writes values starting at column A of the given 1-based row.
func (s *sheetWriter) row(sheet string, n int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return s.f.SetSheetRow(sheet, cell, &values)
}

func (s *sheetWriter) header(sheet string, values ...any) error {
	if err := s.row(sheet, 1, values...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheet, "A1", last, s.bold)
}

func (s *sheetWriter) styleColumn(sheet string, col, fromRow, toRow, style int) error {
	if toRow < fromRow {
		return nil
	}
	top, err := excelize.CoordinatesToCellName(col, fromRow)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col, toRow)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheet, top, bottom, style)
}

func (s *sheetWriter) lines(sheet string, start int, lines []Line) (int, error) {
	n := start
	for _, l := range lines {
		if err := s.row(sheet, n, l.Label, l.Value); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *sheetWriter) flush(w io.Writer) error {
	defer s.f.Close()
	_, err := s.f.WriteTo(w)
	return errors.Wrap(err, "write workbook")
}

// WriteLaytimeWorkbook writes the laytime report as an XLSX workbook with a
// summary sheet and one activity sheet per location.
func WriteLaytimeWorkbook(w io.Writer, meta Meta, r *laytime.Result) error {
	s, err := newSheetWriter(SheetSummary)
	if err != nil {
		return err
	}

	if err := s.header(SheetSummary, "Informasi Umum", ""); err != nil {
		return err
	}
	n, err := s.lines(SheetSummary, 2, InfoLines(meta, r))
	if err != nil {
		return err
	}
	n++
	if err := s.row(SheetSummary, n, "Perhitungan Akhir", ""); err != nil {
		return err
	}
	if _, err := s.lines(SheetSummary, n+1, LaytimeSummary(r)); err != nil {
		return err
	}

	for _, loc := range []model.Location{model.LocationPOL, model.LocationPOD} {
		sheet := string(loc)
		if err := s.addSheet(sheet); err != nil {
			return err
		}
		if err := s.header(sheet, "No", "Date", "From", "To", "Status", "Durasi (Jam)"); err != nil {
			return err
		}
		rows := r.LedgerFor(loc)
		for i, lr := range rows {
			if err := s.row(sheet, i+2, lr.Index+1, lr.Date.String(), lr.From.String(), lr.To.String(), lr.Note, lr.Hours); err != nil {
				return err
			}
		}
		if err := s.styleColumn(sheet, 6, 2, len(rows)+1, s.hours); err != nil {
			return err
		}
	}

	return s.flush(w)
}

// WriteVoyageWorkbook writes the voyage estimate with its cost breakdown and
// profit scenarios.
func WriteVoyageWorkbook(w io.Writer, meta Meta, r *voyage.Result) error {
	s, err := newSheetWriter(SheetSummary)
	if err != nil {
		return err
	}

	if err := s.header(SheetSummary, "Voyage Estimate", ""); err != nil {
		return err
	}
	head := []Line{
		{"Tug Boat", meta.TugBoat},
		{"Barge", meta.Barge},
		{"Port of Loading (POL)", meta.POL},
		{"Port of Discharge (POD)", meta.POD},
	}
	n, err := s.lines(SheetSummary, 2, head)
	if err != nil {
		return err
	}
	if _, err := s.lines(SheetSummary, n, VoyageSummary(r)); err != nil {
		return err
	}

	if err := s.addSheet(SheetBreakdown); err != nil {
		return err
	}
	if err := s.header(SheetBreakdown, "Item", "Amount (Rp)"); err != nil {
		return err
	}
	for i, l := range r.Breakdown {
		if err := s.row(SheetBreakdown, i+2, l.Label, l.Amount); err != nil {
			return err
		}
	}
	total := len(r.Breakdown) + 2
	if err := s.row(SheetBreakdown, total, "Total", r.TotalCost); err != nil {
		return err
	}
	if err := s.styleColumn(SheetBreakdown, 2, 2, total, s.rupiahs); err != nil {
		return err
	}

	if err := s.addSheet(SheetScenarios); err != nil {
		return err
	}
	if err := s.header(SheetScenarios, "Profit %", "Freight / Ton", "Revenue", "Tax (1.2%)", "Net Profit"); err != nil {
		return err
	}
	for i, sc := range r.Scenarios {
		if err := s.row(SheetScenarios, i+2, sc.ProfitPct, sc.FreightPerTon, sc.Revenue, sc.Tax, sc.NetProfit); err != nil {
			return err
		}
	}
	for col := 2; col <= 5; col++ {
		if err := s.styleColumn(SheetScenarios, col, 2, len(r.Scenarios)+1, s.rupiahs); err != nil {
			return err
		}
	}

	return s.flush(w)
}

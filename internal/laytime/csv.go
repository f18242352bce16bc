package laytime

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

func WriteLedgerCSVFile(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := WriteLedgerCSV(f, ledger); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func WriteLedgerCSV(out io.Writer, ledger []LedgerRow) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"location",
		"date",
		"from",
		"to",
		"start",
		"end",
		"note",
		"hours",
		"cum_hours",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index + 1),
			string(r.Location),
			r.Date.String(),
			r.From.String(),
			r.To.String(),
			fmtTime(r.Start),
			fmtTime(r.End),
			r.Note,
			fmtFloat(r.Hours),
			fmtFloat(r.CumHours),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

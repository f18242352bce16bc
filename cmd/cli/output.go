package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"

	"github.com/pkg/errors"
)

func printLines(w io.Writer, title string, lines []report.Line) {
	fmt.Fprintf(w, "%s\n", title)
	for _, l := range lines {
		fmt.Fprintf(w, "  %-30s %s\n", l.Label, l.Value)
	}
	fmt.Fprintln(w)
}

// printActivity prints the ledger rows of one port, one line per entry.
func printActivity(w io.Writer, title string, rows []laytime.LedgerRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "  %-4s %-10s %-5s %-5s %-10s %-10s %s\n", "no", "date", "from", "to", "jam", "kumulatif", "status")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-4d %-10s %-5s %-5s %-10s %-10s %s\n",
			r.Index+1, r.Date, r.From, r.To, report.FormatHours(r.Hours), report.FormatHours(r.CumHours), r.Note)
	}
	fmt.Fprintln(w)
}

func printPortActivity(w io.Writer, res *laytime.Result) {
	printActivity(w, "Aktivitas POL", res.LedgerFor(model.LocationPOL))
	printActivity(w, "Aktivitas POD", res.LedgerFor(model.LocationPOD))
}

// writeFile creates path (and its directory) and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

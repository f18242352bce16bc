package report

import (
	"bytes"
	"testing"
	"time"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func laytimeResult() *laytime.Result {
	d := model.NewDate(2025, time.October, 20)
	return &laytime.Result{
		Policy:        laytime.PolicyIntervalSum,
		Terms:         model.FreeTimeTerms{FreeTimeDays: 3, RatePerDay: 10_000_000},
		PolHours:      6.5,
		PodHours:      137.5,
		TotalHours:    144,
		TotalDays:     6,
		DetentionDays: 3,
		TotalCost:     30_000_000,
		Ledger: []laytime.LedgerRow{
			{Index: 0, Location: model.LocationPOL, Date: d, From: model.NewClock(8, 0), To: model.NewClock(14, 30), Note: "Loading", Hours: 6.5, CumHours: 6.5},
			{Index: 0, Location: model.LocationPOD, Date: d, From: model.NewClock(0, 0), To: model.NewClock(0, 0), Note: "Discharge", Hours: 137.5, CumHours: 137.5},
		},
	}
}

func voyageResult() *voyage.Result {
	return &voyage.Result{
		Vessel:       "TB Sinar 01",
		Mode:         model.CostModeCharter,
		CargoTons:    1000,
		SailingHours: 200,
		VoyageDays:   10,
		Breakdown: voyage.Breakdown{
			{Label: voyage.LabelBunker, Amount: 1_000_000},
			{Label: voyage.LabelCharterHire, Amount: 2_000_000},
		},
		TotalCost:  3_000_000,
		CostPerTon: 3000,
		Scenarios:  voyage.ProfitScenarios(3000, 1000, 3_000_000),
	}
}

func TestLaytimeSummary(t *testing.T) {
	lines := LaytimeSummary(laytimeResult())
	require.Len(t, lines, 6)
	assert.Equal(t, Line{"Total Durasi (POL+POD)", "144.00 jam (6.00 hari)"}, lines[2])
	assert.Equal(t, Line{"Detention / Demurrage Days", "3.00 hari"}, lines[4])
	assert.Equal(t, Line{"Total Biaya Demurrage", "Rp 30.000.000"}, lines[5])
}

func TestInfoLines(t *testing.T) {
	lines := InfoLines(Meta{TugBoat: "TB Sinar 01", Laycan: "20-25 Oct"}, laytimeResult())
	assert.Equal(t, "TB Sinar 01", lines[0].Value)
	assert.Equal(t, "20-25 Oct", lines[5].Value)
	assert.Equal(t, "Rp 10.000.000 / Hari", lines[7].Value)
}

func TestVoyageSummary(t *testing.T) {
	lines := VoyageSummary(voyageResult())
	last := lines[len(lines)-1]
	assert.Equal(t, Line{"Cost per Ton", "Rp 3.000"}, last)
	assert.Contains(t, lines, Line{voyage.LabelCharterHire, "Rp 2.000.000"})
	assert.Contains(t, lines, Line{"Voyage Days", "10.00 hari"})
}

func TestScenarioRows(t *testing.T) {
	rows := ScenarioRows(voyageResult().Scenarios)
	require.Len(t, rows, 11)
	assert.Equal(t, "0%", rows[0].Profit)
	assert.Equal(t, "Rp 3.000", rows[0].Freight)
	assert.Equal(t, "50%", rows[10].Profit)
	assert.Equal(t, "Rp 4.500", rows[10].Freight)
}

func TestWriteLaytimeWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLaytimeWorkbook(&buf, Meta{TugBoat: "TB Sinar 01"}, laytimeResult()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, "POL", "POD"}, f.GetSheetList())

	rows, err := f.GetRows("POL", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"No", "Date", "From", "To", "Status", "Durasi (Jam)"}, rows[0])
	assert.Equal(t, []string{"1", "2025-10-20", "08:00", "14:30", "Loading", "6.5"}, rows[1])

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	var found bool
	for _, r := range summary {
		if len(r) == 2 && r[0] == "Total Biaya Demurrage" {
			assert.Equal(t, "Rp 30.000.000", r[1])
			found = true
		}
	}
	assert.True(t, found, "summary sheet has the demurrage total")
}

func TestWriteVoyageWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVoyageWorkbook(&buf, Meta{}, voyageResult()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetBreakdown, SheetScenarios}, f.GetSheetList())

	rows, err := f.GetRows(SheetBreakdown, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Total", "3000000"}, rows[3])

	scen, err := f.GetRows(SheetScenarios, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Len(t, scen, 12)
}

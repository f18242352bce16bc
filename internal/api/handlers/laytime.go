package handlers

import (
	"net/http"
	"time"

	"laytime-calculator/internal/api/models"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/metrics"
	"laytime-calculator/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LaytimeEntry is a cached laytime result together with its report header.
type LaytimeEntry struct {
	Meta   report.Meta
	Result *laytime.Result
}

// LaytimeHandler handles laytime/demurrage requests
type LaytimeHandler struct {
	engine  *laytime.Engine
	results *data.ResultCache[LaytimeEntry]
	metrics *metrics.Metrics
}

func NewLaytimeHandler(results *data.ResultCache[LaytimeEntry], m *metrics.Metrics) *LaytimeHandler {
	return &LaytimeHandler{engine: laytime.New(), results: results, metrics: m}
}

// Calculate handles POST /api/v1/laytime
func (h *LaytimeHandler) Calculate(c *gin.Context) {
	var req models.LaytimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := req.LaytimeConfig.ToModel()
	if err != nil {
		h.metrics.Failed(metrics.KindLaytime)
		respondError(c, err)
		return
	}

	result, err := h.engine.Compute(job.POL, job.POD, job.Terms, job.Policy)
	if err != nil {
		h.metrics.Failed(metrics.KindLaytime)
		respondError(c, err)
		return
	}
	h.metrics.Calculated(metrics.KindLaytime, string(job.Policy))

	id := uuid.NewString()
	h.results.Put(id, LaytimeEntry{Meta: job.Meta, Result: result})

	response := models.LaytimeResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildLaytimeSummary(result),
		Formatted: models.Formatted{
			Info:    report.InfoLines(job.Meta, result),
			Summary: report.LaytimeSummary(result),
		},
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, response)
}

// GetLedger handles GET /api/v1/laytime/:id/ledger. ?format=csv returns the
// ledger as CSV instead of JSON.
func (h *LaytimeHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.results.Get(id)
	if !ok {
		notFound(c, "laytime result "+id+" not found or expired")
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="ledger-`+id+`.csv"`)
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := laytime.WriteLedgerCSV(c.Writer, entry.Result.Ledger); err != nil {
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, models.LedgerResponse{ID: id, Ledger: convertLedger(entry.Result.Ledger)})
}

// GetWorkbook handles GET /api/v1/laytime/:id/workbook
func (h *LaytimeHandler) GetWorkbook(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.results.Get(id)
	if !ok {
		notFound(c, "laytime result "+id+" not found or expired")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+entry.Meta.FileStem()+`.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := report.WriteLaytimeWorkbook(c.Writer, entry.Meta, entry.Result); err != nil {
		_ = c.Error(err)
	}
}

func buildLaytimeSummary(r *laytime.Result) models.LaytimeSummary {
	return models.LaytimeSummary{
		Policy:        string(r.Policy),
		PolHours:      r.PolHours,
		PodHours:      r.PodHours,
		TotalHours:    r.TotalHours,
		TotalDays:     r.TotalDays,
		FreeTimeDays:  r.Terms.FreeTimeDays,
		DetentionDays: r.DetentionDays,
		RatePerDay:    r.Terms.RatePerDay,
		TotalCost:     r.TotalCost,
	}
}

func convertLedger(rows []laytime.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, 0, len(rows))
	for _, r := range rows {
		row := models.LedgerRow{
			Index:    r.Index,
			Location: string(r.Location),
			From:     r.From.String(),
			To:       r.To.String(),
			Note:     r.Note,
			Hours:    r.Hours,
			CumHours: r.CumHours,
		}
		if !r.Date.IsZero() {
			row.Date = r.Date.String()
		}
		if !r.Start.IsZero() {
			row.Start = r.Start.Format(time.DateTime)
		}
		if !r.End.IsZero() {
			row.End = r.End.Format(time.DateTime)
		}
		out = append(out, row)
	}
	return out
}

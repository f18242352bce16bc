package handlers

import (
	"net/http"
	"path/filepath"

	"laytime-calculator/internal/api/models"
	"laytime-calculator/internal/config"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/metrics"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"
	"laytime-calculator/internal/voyage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoyageEntry is a cached voyage estimate together with its report header.
type VoyageEntry struct {
	Meta   report.Meta
	Result *voyage.Result
}

// VoyageHandler handles voyage cost requests
type VoyageHandler struct {
	estimator *voyage.Estimator
	store     *data.VesselStore
	results   *data.ResultCache[VoyageEntry]
	metrics   *metrics.Metrics
}

func NewVoyageHandler(store *data.VesselStore, results *data.ResultCache[VoyageEntry], m *metrics.Metrics) *VoyageHandler {
	return &VoyageHandler{
		estimator: voyage.NewEstimator(),
		store:     store,
		results:   results,
		metrics:   m,
	}
}

// Estimate handles POST /api/v1/voyage-cost
func (h *VoyageHandler) Estimate(c *gin.Context) {
	var req models.VoyageCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cfg := req.VoyageConfig
	// vessel_file names a stored profile; request fields override it
	if cfg.VesselFile != "" {
		id := stripExt(cfg.VesselFile)
		base, err := h.store.Get(id)
		if err != nil {
			respondError(c, err)
			return
		}
		merged, err := config.MergeVessel(base, cfg.Vessel)
		if err != nil {
			h.metrics.Failed(metrics.KindVoyage)
			respondError(c, err)
			return
		}
		cfg.Vessel = merged
	}
	if err := cfg.Validate(); err != nil {
		h.metrics.Failed(metrics.KindVoyage)
		respondError(c, err)
		return
	}
	vessel, err := cfg.Vessel.ToModel()
	if err != nil {
		h.metrics.Failed(metrics.KindVoyage)
		respondError(c, err)
		return
	}

	result, err := h.estimator.Estimate(vessel, cfg.Route.ToModel(), cfg.CargoTons)
	if err != nil {
		h.metrics.Failed(metrics.KindVoyage)
		respondError(c, err)
		return
	}
	h.metrics.Calculated(metrics.KindVoyage, string(result.Mode))

	id := uuid.NewString()
	h.results.Put(id, VoyageEntry{Meta: cfg.Meta, Result: result})

	c.JSON(http.StatusOK, buildVoyageResponse(id, result))
}

// GetWorkbook handles GET /api/v1/voyage-cost/:id/workbook
func (h *VoyageHandler) GetWorkbook(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.results.Get(id)
	if !ok {
		notFound(c, "voyage estimate "+id+" not found or expired")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+entry.Meta.FileStem()+`.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := report.WriteVoyageWorkbook(c.Writer, entry.Meta, entry.Result); err != nil {
		_ = c.Error(err)
	}
}

// GetScenarios handles GET /api/v1/voyage-cost/:id/scenarios. ?format=csv
// returns the freight table as CSV instead of JSON.
func (h *VoyageHandler) GetScenarios(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.results.Get(id)
	if !ok {
		notFound(c, "voyage estimate "+id+" not found or expired")
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="scenarios-`+id+`.csv"`)
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := voyage.WriteScenariosCSV(c.Writer, entry.Result.Scenarios); err != nil {
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, models.ScenariosResponse{ID: id, Scenarios: convertScenarios(entry.Result.Scenarios)})
}

// Compare handles POST /api/v1/voyage-cost/compare
func (h *VoyageHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	route := req.Route.ToModel()
	if err := route.Validate(); err != nil {
		h.metrics.Failed(metrics.KindCompare)
		respondError(c, err)
		return
	}
	if err := model.ValidateCargo(req.CargoTons); err != nil {
		h.metrics.Failed(metrics.KindCompare)
		respondError(c, err)
		return
	}

	profiles := make([]model.VesselProfile, 0, len(req.Vessels))
	var missing []models.Ranking
	for _, id := range req.Vessels {
		p, err := h.store.Profile(stripExt(id))
		if err != nil {
			missing = append(missing, models.Ranking{VesselID: id, Error: err.Error()})
			continue
		}
		profiles = append(profiles, p)
	}

	ranked := h.estimator.Compare(profiles, route, req.CargoTons)
	rankings := make([]models.Ranking, 0, len(ranked)+len(missing))
	for _, r := range ranked {
		if r.Err != nil {
			rankings = append(rankings, models.Ranking{VesselID: r.ProfileID, Error: r.Err.Error()})
			continue
		}
		rankings = append(rankings, models.Ranking{
			Rank:       len(rankings) + 1,
			VesselID:   r.ProfileID,
			Vessel:     r.Result.Vessel,
			Mode:       string(r.Result.Mode),
			VoyageDays: r.Result.VoyageDays,
			TotalCost:  r.Result.TotalCost,
			CostPerTon: r.Result.CostPerTon,
			BunkerCost: r.Result.Breakdown.Amount(voyage.LabelBunker),
		})
	}
	rankings = append(rankings, missing...)
	h.metrics.Calculated(metrics.KindCompare, "profiles")

	c.JSON(http.StatusOK, models.CompareResponse{Rankings: rankings})
}

func stripExt(id string) string {
	return id[:len(id)-len(filepath.Ext(id))]
}

func buildVoyageResponse(id string, r *voyage.Result) models.VoyageCostResponse {
	breakdown := make([]models.CostLine, 0, len(r.Breakdown))
	for _, l := range r.Breakdown {
		group := "general"
		if !l.General {
			group = string(r.Mode)
		}
		breakdown = append(breakdown, models.CostLine{Label: l.Label, Group: group, Amount: l.Amount})
	}

	scenarios := convertScenarios(r.Scenarios)

	return models.VoyageCostResponse{
		ID:     id,
		Status: "completed",
		Summary: models.VoyageSummary{
			Vessel:           r.Vessel,
			Mode:             string(r.Mode),
			CargoTons:        r.CargoTons,
			LadenHours:       r.Sailing.LadenHours,
			BallastHours:     r.Sailing.BallastHours,
			SailingHours:     r.SailingHours,
			VoyageDays:       r.VoyageDays,
			TotalConsumption: r.TotalConsumption,
			TotalCost:        r.TotalCost,
			CostPerTon:       r.CostPerTon,
		},
		Breakdown: breakdown,
		Scenarios: scenarios,
		Formatted: models.VoyageFormatted{
			Summary:   report.VoyageSummary(r),
			Scenarios: report.ScenarioRows(r.Scenarios),
		},
	}
}

func convertScenarios(in []voyage.ProfitScenario) []models.ProfitScenario {
	out := make([]models.ProfitScenario, 0, len(in))
	for _, s := range in {
		out = append(out, models.ProfitScenario{
			ProfitPct:     s.ProfitPct,
			FreightPerTon: s.FreightPerTon,
			Revenue:       s.Revenue,
			Tax:           s.Tax,
			NetProfit:     s.NetProfit,
		})
	}
	return out
}

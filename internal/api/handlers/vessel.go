package handlers

import (
	"net/http"

	"laytime-calculator/internal/api/models"
	"laytime-calculator/internal/config"
	"laytime-calculator/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VesselHandler serves the vessel profile directory
type VesselHandler struct {
	store *data.VesselStore
}

func NewVesselHandler(store *data.VesselStore) *VesselHandler {
	zap.S().Named("api").Infow("using vessel directory", "dir", store.Dir())
	return &VesselHandler{store: store}
}

// ListVessels handles GET /api/v1/vessels
func (h *VesselHandler) ListVessels(c *gin.Context) {
	profiles, err := h.store.List()
	if err != nil {
		respondError(c, err)
		return
	}
	vessels := make([]models.VesselInfo, 0, len(profiles))
	for _, p := range profiles {
		vessels = append(vessels, models.VesselInfo{
			ID:                p.ID,
			Name:              p.Vessel.Name,
			Mode:              p.Vessel.Mode,
			File:              p.ID + ".yaml",
			LadenSpeedKnots:   p.Vessel.LadenSpeedKnots,
			BallastSpeedKnots: p.Vessel.BallastSpeedKnots,
		})
	}
	c.JSON(http.StatusOK, gin.H{"vessels": vessels})
}

// GetVessel handles GET /api/v1/vessels/:id
func (h *VesselHandler) GetVessel(c *gin.Context) {
	id := c.Param("id")
	v, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VesselResponse{ID: id, Vessel: v})
}

// PutVessel handles PUT /api/v1/vessels/:id
func (h *VesselHandler) PutVessel(c *gin.Context) {
	id := c.Param("id")
	var v config.VesselConfig
	if err := c.ShouldBindJSON(&v); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.store.Save(id, v); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VesselResponse{ID: id, Vessel: v})
}

package handlers

import (
	"net/http"

	"laytime-calculator/internal/api/models"
	"laytime-calculator/internal/laytime"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles duration policy listings
type PolicyHandler struct{}

func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// ListPolicies handles GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	infos := laytime.Policies()
	policies := make([]models.PolicyInfo, 0, len(infos))
	for _, p := range infos {
		policies = append(policies, models.PolicyInfo{
			Name:        string(p.Policy),
			Description: p.Description,
			RowShape:    p.RowShape,
			Default:     p.Policy == laytime.PolicyIntervalSum,
		})
	}
	c.JSON(http.StatusOK, gin.H{"policies": policies})
}

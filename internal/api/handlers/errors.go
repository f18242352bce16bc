package handlers

import (
	"net/http"

	"laytime-calculator/internal/api/models"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

func abortJSON(c *gin.Context, status int, code, message string, details map[string]any) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// badRequest reports a body that could not be bound at all.
func badRequest(c *gin.Context, err error) {
	abortJSON(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
}

func notFound(c *gin.Context, message string) {
	abortJSON(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// respondError maps calculator and store errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var inv *model.InvalidInputError
	switch {
	case errors.As(err, &inv):
		abortJSON(c, http.StatusBadRequest, CodeInvalidInput, inv.Error(), map[string]any{
			"field":  inv.Field,
			"reason": inv.Reason,
		})
	case errors.Is(err, data.ErrVesselNotFound):
		notFound(c, err.Error())
	default:
		zap.S().Named("api").Errorw("request failed", "path", c.FullPath(), "error", err)
		abortJSON(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred", nil)
	}
}

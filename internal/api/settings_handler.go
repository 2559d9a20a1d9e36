package api

import (
	"net/http"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the user's measurement unit preferences.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

type UpdateSettingsRequest struct {
	WeightUnit   domain.UnitSystem `json:"weightUnit" binding:"required,oneof=metric imperial"`
	DistanceUnit domain.UnitSystem `json:"distanceUnit" binding:"required,oneof=metric imperial"`
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.MeasurementSettings())
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.SetMeasurementSettings(domain.MeasurementSettings{
		WeightUnit:   req.WeightUnit,
		DistanceUnit: req.DistanceUnit,
	})
	c.JSON(http.StatusOK, h.store.MeasurementSettings())
}

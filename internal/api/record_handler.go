package api

import (
	"net/http"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// RecordHandler exposes personal records. Records are normally created
// by the workout-logging flow through the record engine; this surface
// only lists, corrects and deletes them.
type RecordHandler struct {
	store *store.Store
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(s *store.Store) *RecordHandler {
	return &RecordHandler{store: s}
}

type UpdateRecordRequest struct {
	Value    *float64 `json:"value"`
	VideoRef *string  `json:"videoRef"`
}

func (h *RecordHandler) ListRecords(c *gin.Context) {
	records := h.store.PersonalRecords()

	// Optional filtering by client and/or exercise.
	clientID := c.Query("clientId")
	exerciseID := c.Query("exerciseId")
	if clientID == "" && exerciseID == "" {
		c.JSON(http.StatusOK, records)
		return
	}
	filtered := make([]domain.PersonalRecord, 0, len(records))
	for _, r := range records {
		if clientID != "" && r.ClientID != clientID {
			continue
		}
		if exerciseID != "" && r.ExerciseID != exerciseID {
			continue
		}
		filtered = append(filtered, r)
	}
	c.JSON(http.StatusOK, filtered)
}

func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.UpdatePersonalRecord(c.Param("id"), store.PersonalRecordUpdate{
		Value:    req.Value,
		VideoRef: req.VideoRef,
	})
	c.Status(http.StatusNoContent)
}

func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	h.store.DeletePersonalRecord(c.Param("id"))
	c.Status(http.StatusNoContent)
}

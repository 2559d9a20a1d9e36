package api

import (
	"errors"
	"net/http"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/service"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// VideoHandler exposes the recorded-set video flow: presigned upload
// URL request, upload confirmation, presigned playback URL, listing
// and deletion.
type VideoHandler struct {
	videos *service.VideoService
	store  *store.Store
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videos *service.VideoService, s *store.Store) *VideoHandler {
	return &VideoHandler{videos: videos, store: s}
}

type UploadURLRequest struct {
	ClientID    string `json:"clientId" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ClientID   string    `json:"clientId" binding:"required"`
	ExerciseID string    `json:"exerciseId" binding:"required"`
	WorkoutID  string    `json:"workoutId"`
	SetID      string    `json:"setId"`
	ObjectKey  string    `json:"objectKey" binding:"required"`
	CapturedAt time.Time `json:"capturedAt"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	Notes      string    `json:"notes"`
}

type UpdateVideoNotesRequest struct {
	Notes *string `json:"notes" binding:"required"`
}

// RequestUploadURL handles POST /videos/upload-url.
func (h *VideoHandler) RequestUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.videos.RequestUploadURL(c.Request.Context(), req.ClientID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContentType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to generate upload URL")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmUpload handles POST /videos. The measurement is immutable once
// recorded; only the notes may be edited afterwards.
func (h *VideoHandler) ConfirmUpload(c *gin.Context) {
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, _ := h.videos.ConfirmUpload(c.Request.Context(), domain.VideoRecord{
		ClientID:   req.ClientID,
		ExerciseID: req.ExerciseID,
		WorkoutID:  req.WorkoutID,
		SetID:      req.SetID,
		VideoRef:   req.ObjectKey,
		CapturedAt: req.CapturedAt,
		Weight:     req.Weight,
		Reps:       req.Reps,
		Notes:      req.Notes,
	})
	c.JSON(http.StatusCreated, record)
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos := h.store.VideoRecords()

	clientID := c.Query("clientId")
	if clientID == "" {
		c.JSON(http.StatusOK, videos)
		return
	}
	filtered := make([]domain.VideoRecord, 0, len(videos))
	for _, v := range videos {
		if v.ClientID == clientID {
			filtered = append(filtered, v)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

// DownloadURL handles GET /videos/:id/download-url.
func (h *VideoHandler) DownloadURL(c *gin.Context) {
	url, err := h.videos.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "failed to generate download URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

func (h *VideoHandler) UpdateVideoNotes(c *gin.Context) {
	var req UpdateVideoNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.UpdateVideoRecord(c.Param("id"), store.VideoRecordUpdate{Notes: req.Notes})
	c.Status(http.StatusNoContent)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	h.videos.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

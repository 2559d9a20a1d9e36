package api

import (
	"net/http"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes the client collection and its nested photo and
// body-weight lists. Mutations are fire-and-forget at the persistence
// boundary, so handlers answer from the already-updated in-memory state
// without waiting for the write.
type ClientHandler struct {
	store *store.Store
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(s *store.Store) *ClientHandler {
	return &ClientHandler{store: s}
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

type AddPhotoRequest struct {
	ImageRef string               `json:"imageRef" binding:"required"`
	Category domain.PhotoCategory `json:"category" binding:"required,oneof=before after progress"`
	TakenAt  *time.Time           `json:"takenAt"`
}

type AddBodyWeightRequest struct {
	Weight     float64    `json:"weight" binding:"required"`
	BodyFatPct *float64   `json:"bodyFatPct"`
	MeasuredAt *time.Time `json:"measuredAt"`
	Notes      string     `json:"notes"`
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Clients())
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, ok := h.store.ClientByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Client not found.")
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, _ := h.store.AddClient(domain.Client{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Unknown ids are a silent no-op by design; the response is 204
	// either way so the UI doesn't need to care.
	h.store.UpdateClient(c.Param("id"), store.ClientUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	h.store.DeleteClient(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) AddPhoto(c *gin.Context) {
	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	photo := domain.ClientPhoto{ImageRef: req.ImageRef, Category: req.Category}
	if req.TakenAt != nil {
		photo.TakenAt = *req.TakenAt
	}
	added, _ := h.store.AddClientPhoto(c.Param("id"), photo)
	if added.ID == "" {
		abortWithError(c, http.StatusNotFound, "Client not found.")
		return
	}
	c.JSON(http.StatusCreated, added)
}

func (h *ClientHandler) DeletePhoto(c *gin.Context) {
	h.store.DeleteClientPhoto(c.Param("id"), c.Param("photoId"))
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) AddBodyWeight(c *gin.Context) {
	var req AddBodyWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	bw := domain.BodyWeight{Weight: req.Weight, BodyFatPct: req.BodyFatPct, Notes: req.Notes}
	if req.MeasuredAt != nil {
		bw.MeasuredAt = *req.MeasuredAt
	}
	added, _ := h.store.AddBodyWeight(c.Param("id"), bw)
	if added.ID == "" {
		abortWithError(c, http.StatusNotFound, "Client not found.")
		return
	}
	c.JSON(http.StatusCreated, added)
}

func (h *ClientHandler) DeleteBodyWeight(c *gin.Context) {
	h.store.DeleteBodyWeight(c.Param("id"), c.Param("bodyWeightId"))
	c.Status(http.StatusNoContent)
}

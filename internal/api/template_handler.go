package api

import (
	"net/http"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// TemplateHandler exposes CRUD over workout templates.
type TemplateHandler struct {
	store *store.Store
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(s *store.Store) *TemplateHandler {
	return &TemplateHandler{store: s}
}

type CreateTemplateRequest struct {
	Name      string                    `json:"name" binding:"required"`
	Notes     string                    `json:"notes"`
	Exercises []domain.TemplateExercise `json:"exercises"`
}

type UpdateTemplateRequest struct {
	Name      *string                    `json:"name"`
	Notes     *string                    `json:"notes"`
	Exercises *[]domain.TemplateExercise `json:"exercises"`
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Templates())
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, ok := h.store.TemplateByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "template not found")
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	tpl, _ := h.store.AddTemplate(domain.WorkoutTemplate{
		Name:      req.Name,
		Notes:     req.Notes,
		Exercises: req.Exercises,
	})
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.UpdateTemplate(c.Param("id"), store.TemplateUpdate{
		Name:      req.Name,
		Notes:     req.Notes,
		Exercises: req.Exercises,
	})
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	h.store.DeleteTemplate(c.Param("id"))
	c.Status(http.StatusNoContent)
}

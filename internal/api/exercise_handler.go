package api

import (
	"net/http"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler exposes the exercise library.
type ExerciseHandler struct {
	store *store.Store
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(s *store.Store) *ExerciseHandler {
	return &ExerciseHandler{store: s}
}

type CreateExerciseRequest struct {
	Name         string                  `json:"name" binding:"required"`
	Category     domain.ExerciseCategory `json:"category" binding:"required,oneof=chest back shoulders arms legs core cardio full-body"`
	MuscleGroups []string                `json:"muscleGroups"`
	Equipment    string                  `json:"equipment"`
	Instructions string                  `json:"instructions"`
}

type UpdateExerciseRequest struct {
	Name         *string                  `json:"name"`
	Category     *domain.ExerciseCategory `json:"category"`
	MuscleGroups *[]string                `json:"muscleGroups"`
	Equipment    *string                  `json:"equipment"`
	Instructions *string                  `json:"instructions"`
}

func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Exercises())
}

// CreateExercise adds a user-authored exercise; entries created here are
// always marked custom, distinguishing them from the built-in catalog.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, _ := h.store.AddExercise(domain.Exercise{
		Name:         req.Name,
		Category:     req.Category,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Instructions: req.Instructions,
		Custom:       true,
	})
	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.UpdateExercise(c.Param("id"), store.ExerciseUpdate{
		Name:         req.Name,
		Category:     req.Category,
		MuscleGroups: req.MuscleGroups,
		Equipment:    req.Equipment,
		Instructions: req.Instructions,
	})
	c.Status(http.StatusNoContent)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	h.store.DeleteExercise(c.Param("id"))
	c.Status(http.StatusNoContent)
}

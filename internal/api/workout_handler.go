package api

import (
	"encoding/json"
	"net/http"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/service"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes workout history plus the two logging flows: a
// single-client workout and a multi-client session that gets decomposed
// into per-client workouts. Both flows run the record engine.
type WorkoutHandler struct {
	store    *store.Store
	workouts *service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(s *store.Store, workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{store: s, workouts: workouts}
}

type LogWorkoutRequest struct {
	ClientID        string                   `json:"clientId" binding:"required"`
	Name            string                   `json:"name" binding:"required"`
	Date            *time.Time               `json:"date"`
	Exercises       []domain.WorkoutExercise `json:"exercises" binding:"required"`
	DurationMinutes *int                     `json:"durationMinutes"`
	Notes           string                   `json:"notes"`
}

type LogWorkoutResponse struct {
	Workout   domain.Workout `json:"workout"`
	RecordSet bool           `json:"recordSet"`
}

type LogSessionRequest struct {
	Name            string                   `json:"name" binding:"required"`
	Date            *time.Time               `json:"date"`
	ParticipantIDs  []string                 `json:"participantIds" binding:"required,min=1"`
	Exercises       []domain.WorkoutExercise `json:"exercises" binding:"required"`
	DurationMinutes *int                     `json:"durationMinutes"`
	Notes           string                   `json:"notes"`
}

type LogSessionResponse struct {
	Workouts  []domain.Workout `json:"workouts"`
	RecordSet bool             `json:"recordSet"`
}

// optionalInt tells an absent field apart from an explicit null, which
// plain pointer fields cannot: encoding/json leaves both nil. An explicit
// null arrives as Set=true, Value=nil and clears the stored duration.
type optionalInt struct {
	Set   bool
	Value *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

type UpdateWorkoutRequest struct {
	Name            *string                   `json:"name"`
	Date            *time.Time                `json:"date"`
	Exercises       *[]domain.WorkoutExercise `json:"exercises"`
	DurationMinutes optionalInt               `json:"durationMinutes"`
	Notes           *string                   `json:"notes"`
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Workouts())
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, ok := h.store.WorkoutByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Workout not found.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// LogWorkout godoc
// @Summary Log a completed single-client workout
// @Description Stores the workout and runs the personal-record check over every set.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body LogWorkoutRequest true "Workout details"
// @Success 201 {object} LogWorkoutResponse
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout := domain.Workout{
		ClientID:        req.ClientID,
		ClientName:      h.store.ClientDisplayName(req.ClientID),
		Name:            req.Name,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.Date != nil {
		workout.Date = *req.Date
	}

	added, _, recordSet := h.workouts.LogWorkout(workout)
	c.JSON(http.StatusCreated, LogWorkoutResponse{Workout: added, RecordSet: recordSet})
}

// LogSession godoc
// @Summary Log a multi-client session
// @Description Splits the session into one independent workout per participant; the derivations are not atomic across the batch.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body LogSessionRequest true "Session details"
// @Success 201 {object} LogSessionResponse
// @Router /workouts/sessions [post]
func (h *WorkoutHandler) LogSession(c *gin.Context) {
	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Resolve the roster; a participant the store no longer knows keeps
	// their id with the fallback display name.
	participants := make([]domain.Client, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		if client, ok := h.store.ClientByID(id); ok {
			participants = append(participants, client)
		} else {
			participants = append(participants, domain.Client{ID: id, Name: domain.UnknownClientName})
		}
	}

	session := domain.Workout{
		Name:            req.Name,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		MultiClient:     true,
		Participants:    participants,
	}
	if req.Date != nil {
		session.Date = *req.Date
	}

	result, recordSet := h.workouts.LogMultiClientSession(session)
	derived := make([]domain.Workout, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		derived = append(derived, o.Workout)
	}
	c.JSON(http.StatusCreated, LogSessionResponse{Workouts: derived, RecordSet: recordSet})
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	update := store.WorkoutUpdate{
		Name:      req.Name,
		Date:      req.Date,
		Exercises: req.Exercises,
		Notes:     req.Notes,
	}
	if req.DurationMinutes.Set {
		update.DurationMinutes = &req.DurationMinutes.Value
	}

	h.store.UpdateWorkout(c.Param("id"), update)
	c.Status(http.StatusNoContent)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	h.store.DeleteWorkout(c.Param("id"))
	c.Status(http.StatusNoContent)
}

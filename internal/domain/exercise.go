package domain

import "time"

// ExerciseCategory is the closed set of exercise categories.
type ExerciseCategory string

const (
	CategoryChest     ExerciseCategory = "chest"
	CategoryBack      ExerciseCategory = "back"
	CategoryShoulders ExerciseCategory = "shoulders"
	CategoryArms      ExerciseCategory = "arms"
	CategoryLegs      ExerciseCategory = "legs"
	CategoryCore      ExerciseCategory = "core"
	CategoryCardio    ExerciseCategory = "cardio"
	CategoryFullBody  ExerciseCategory = "full-body"
)

// Exercise is a single exercise definition in the library.
// Custom marks user-authored entries, as opposed to the built-in catalog.
type Exercise struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     ExerciseCategory `json:"category"`
	MuscleGroups []string         `json:"muscleGroups,omitempty"`
	Equipment    string           `json:"equipment,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Custom       bool             `json:"custom,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// UnknownExerciseName is the display fallback for a dangling exercise id.
const UnknownExerciseName = "Unknown Exercise"

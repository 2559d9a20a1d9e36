package domain

import "time"

// TemplateSet is a set blueprint. Weight and reps are suggested defaults,
// not performed history.
type TemplateSet struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// TemplateExercise is one exercise entry in a template.
type TemplateExercise struct {
	ID           string        `json:"id"`
	ExerciseID   string        `json:"exerciseId"`
	ExerciseName string        `json:"exerciseName,omitempty"`
	Sets         []TemplateSet `json:"sets"`
}

// WorkoutTemplate is a reusable workout blueprint, independent of any client.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Notes     string             `json:"notes,omitempty"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
}

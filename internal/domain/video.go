package domain

import "time"

// VideoRecord is an immutable, timestamped measurement tied to one
// recorded set: which client lifted what, for how many reps, with a
// reference to the captured video. Client/exercise/workout are weak
// references by id; the record survives their deletion.
type VideoRecord struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	ExerciseID string    `json:"exerciseId"`
	WorkoutID  string    `json:"workoutId"`
	SetID      string    `json:"setId,omitempty"`
	VideoRef   string    `json:"videoRef"`
	CapturedAt time.Time `json:"capturedAt"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	Notes      string    `json:"notes,omitempty"`
}

package domain

import "time"

// WorkoutSet is one performed set. Reps and weight are what the client
// actually did; VideoRef optionally points at a recorded set video.
type WorkoutSet struct {
	ID          string  `json:"id"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	RestSeconds *int    `json:"restSeconds,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	VideoRef    string  `json:"videoRef,omitempty"`
}

// Volume is weight × reps for this set.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutExercise is one exercise entry inside a workout. For a normal
// workout Sets holds the performed sets; for a multi-client session
// SetsByClient holds each participant's own sets keyed by client id and
// Sets stays empty until the session is split.
type WorkoutExercise struct {
	ID           string                  `json:"id"`
	ExerciseID   string                  `json:"exerciseId"`
	ExerciseName string                  `json:"exerciseName,omitempty"` // denormalized for display
	Sets         []WorkoutSet            `json:"sets,omitempty"`
	SetsByClient map[string][]WorkoutSet `json:"setsByClient,omitempty"`
}

// Workout is one logged training session for a single client.
type Workout struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"clientId"`
	ClientName      string            `json:"clientName,omitempty"` // denormalized snapshot
	Name            string            `json:"name"`
	Date            time.Time         `json:"date"`
	Exercises       []WorkoutExercise `json:"exercises"`
	DurationMinutes *int              `json:"durationMinutes,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	TotalVolume     float64           `json:"totalVolume"`

	// Multi-client session bookkeeping. FromMultiClient marks a workout
	// derived by splitting a shared session; Participants carries the full
	// roster for display.
	MultiClient     bool     `json:"multiClient,omitempty"`
	FromMultiClient bool     `json:"fromMultiClient,omitempty"`
	Participants    []Client `json:"participants,omitempty"`
}

// ComputeTotalVolume sums weight×reps over all flat set lists. Per-client
// set maps are intentionally excluded; a shared session's volume only
// becomes meaningful once split per client.
func (w Workout) ComputeTotalVolume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			total += set.Volume()
		}
	}
	return total
}

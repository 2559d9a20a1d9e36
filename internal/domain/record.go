package domain

import "time"

// RecordType distinguishes the two independent personal-record metrics.
type RecordType string

const (
	RecordMaxWeight RecordType = "max_weight"
	RecordMaxVolume RecordType = "max_volume"
)

// PersonalRecord is the current best value of one metric for a
// (client, exercise) pair. At most one active record exists per
// (client, exercise, type); a new best supersedes the old record
// rather than being kept alongside it.
type PersonalRecord struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"clientId"`
	ExerciseID string     `json:"exerciseId"`
	Type       RecordType `json:"type"`
	Value      float64    `json:"value"`
	AchievedAt time.Time  `json:"achievedAt"`
	WorkoutID  string     `json:"workoutId"`
	VideoRef   string     `json:"videoRef,omitempty"`
}

package domain

import "time"

// PhotoCategory classifies a client progress photo.
type PhotoCategory string

const (
	PhotoBefore   PhotoCategory = "before"
	PhotoAfter    PhotoCategory = "after"
	PhotoProgress PhotoCategory = "progress"
)

// Client is a person being trained. A client owns its photos and
// body-weight history by value; workouts, records and videos only
// reference the client by id.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Photos      []ClientPhoto `json:"photos,omitempty"`
	BodyWeights []BodyWeight  `json:"bodyWeights,omitempty"`
}

// ClientPhoto references an image captured for a client.
// The image bytes live in object storage; this is metadata only.
type ClientPhoto struct {
	ID       string        `json:"id"`
	ImageRef string        `json:"imageRef"`
	Category PhotoCategory `json:"category"`
	TakenAt  time.Time     `json:"takenAt"`
}

// BodyWeight is one body-weight measurement for a client.
type BodyWeight struct {
	ID         string    `json:"id"`
	Weight     float64   `json:"weight"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	MeasuredAt time.Time `json:"measuredAt"`
	Notes      string    `json:"notes,omitempty"`
}

// UnknownClientName is the display fallback for a dangling client id,
// e.g. a workout whose client was deleted. Deletes do not cascade.
const UnknownClientName = "Unknown Client"

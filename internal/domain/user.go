package domain

import "time"

// User is an account of the app itself (the trainer running it), not a
// trained client. The user id namespaces every persisted collection key.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // unique
	PasswordHash string    `json:"passwordHash,omitempty"` // stripped by API DTOs, never returned
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

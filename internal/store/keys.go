package store

import "fmt"

// Logical collection names. One persisted key per collection; the value
// is always the JSON serialization of the full collection.
const (
	CollectionClients   = "fitness_clients"
	CollectionExercises = "fitness_exercises"
	CollectionWorkouts  = "fitness_workouts"
	CollectionRecords   = "fitness_personal_records"
	CollectionTemplates = "fitness_workout_templates"
	CollectionVideos    = "fitness_video_records"
	CollectionSettings  = "fitness_measurement_settings"

	// CollectionUsers holds app accounts. It is global, never namespaced:
	// the accounts are what the namespaces are derived from.
	CollectionUsers = "fitness_users"
)

// Key returns the persisted key for a collection, namespaced by the
// active user when one is signed in.
func Key(userID, collection string) string {
	if userID == "" {
		return collection
	}
	return fmt.Sprintf("user_%s_%s", userID, collection)
}

// UserKeyPrefix is the prefix shared by all of a user's namespaced keys,
// used to clear them on logout.
func UserKeyPrefix(userID string) string {
	return fmt.Sprintf("user_%s_fitness_", userID)
}

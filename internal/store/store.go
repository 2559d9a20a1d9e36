// Package store is the entity repository at the heart of the data layer.
// It owns the in-memory state of all collections for the active user,
// persists every mutation as a full-collection JSON write to the local
// key-value store, and mirrors each write to the remote sink through the
// sync dispatcher.
//
// Mutators serialize against each other on the store's mutex; the
// persistence writes they trigger run asynchronously, so two rapid
// mutations of the same collection can race at the storage layer and
// the last write to complete wins. That weak-consistency window is a
// deliberate property of the design, made observable via Commit.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/storage"
	"coachdata/internal/syncer"

	log "github.com/sirupsen/logrus"
)

const persistTimeout = 30 * time.Second

// Store holds all collections for the active user.
type Store struct {
	mu         sync.Mutex
	kv         storage.KV
	dispatcher *syncer.Dispatcher

	userID    string
	clients   []domain.Client
	exercises []domain.Exercise
	workouts  []domain.Workout
	records   []domain.PersonalRecord
	templates []domain.WorkoutTemplate
	videos    []domain.VideoRecord
	settings  domain.MeasurementSettings
}

// New creates an empty store over the given local KV and sync dispatcher.
// Call Load (or SetCurrentUser) to populate it.
func New(kv storage.KV, dispatcher *syncer.Dispatcher) *Store {
	return &Store{
		kv:         kv,
		dispatcher: dispatcher,
		exercises:  domain.DefaultExercises(),
		settings:   domain.DefaultMeasurementSettings(),
	}
}

// CurrentUserID returns the id of the signed-in user, empty when signed out.
func (s *Store) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Clients returns a copy of the client collection.
func (s *Store) Clients() []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Client(nil), s.clients...)
}

// Exercises returns a copy of the exercise collection.
func (s *Store) Exercises() []domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Exercise(nil), s.exercises...)
}

// Workouts returns a copy of the workout collection.
func (s *Store) Workouts() []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Workout(nil), s.workouts...)
}

// PersonalRecords returns a copy of the personal-record collection.
func (s *Store) PersonalRecords() []domain.PersonalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PersonalRecord(nil), s.records...)
}

// Templates returns a copy of the workout-template collection.
func (s *Store) Templates() []domain.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WorkoutTemplate(nil), s.templates...)
}

// VideoRecords returns a copy of the video-record collection.
func (s *Store) VideoRecords() []domain.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.VideoRecord(nil), s.videos...)
}

// MeasurementSettings returns the active unit settings.
func (s *Store) MeasurementSettings() domain.MeasurementSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// persist snapshots the payload now (under the caller's lock) and writes
// it to the local KV and the sync sink in the background. The returned
// Commit reports the local write's outcome; the sync push stays
// fire-and-forget. Marshal failures are logged and reported the same way
// storage failures are: through the Commit, never as a mutator error.
func (s *Store) persist(collection string, payload any) *Commit {
	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).WithField("collection", collection).Error("failed to marshal collection")
		c := newCommit()
		c.complete(err)
		return c
	}

	key := Key(s.userID, collection)
	userID := s.userID
	c := newCommit()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.kv.Set(ctx, key, data); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"collection": collection,
				"key":        key,
			}).Error("failed to persist collection")
			c.complete(err)
		} else {
			c.complete(nil)
		}
		s.dispatcher.Dispatch(userID, collection, data)
	}()
	return c
}

package store

import (
	"context"
	"encoding/json"
	"errors"

	"coachdata/internal/domain"
	"coachdata/internal/storage"
	"coachdata/internal/syncer"

	log "github.com/sirupsen/logrus"
)

// Load populates all collections for the given user. For each collection
// it prefers the remote snapshot, falls back to the local one, and seeds
// empty (or, for exercises, the default catalog) when both are absent.
// Read and parse failures never propagate: the collection falls back to
// its empty/default state and the failure is logged.
//
// An empty userID is the signed-out baseline: all collections reset to
// empty, exercises to the default catalog, settings to defaults.
func (s *Store) Load(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
	if userID == "" {
		s.clients = nil
		s.exercises = domain.DefaultExercises()
		s.workouts = nil
		s.records = nil
		s.templates = nil
		s.videos = nil
		s.settings = domain.DefaultMeasurementSettings()
		return
	}

	loadSlice(s, ctx, CollectionClients, &s.clients, nil)
	loadSlice(s, ctx, CollectionExercises, &s.exercises, domain.DefaultExercises)
	loadSlice(s, ctx, CollectionWorkouts, &s.workouts, nil)
	loadSlice(s, ctx, CollectionRecords, &s.records, nil)
	loadSlice(s, ctx, CollectionTemplates, &s.templates, nil)
	loadSlice(s, ctx, CollectionVideos, &s.videos, nil)

	// Duplicate identities can survive in a snapshot that was written by
	// an older app version or merged remotely; fold them out of every
	// collection, later entries winning.
	s.clients = dedupeByID(s.clients, func(c domain.Client) string { return c.ID })
	s.exercises = dedupeByID(s.exercises, func(e domain.Exercise) string { return e.ID })
	s.workouts = dedupeByID(s.workouts, func(w domain.Workout) string { return w.ID })
	s.records = dedupeByID(s.records, func(r domain.PersonalRecord) string { return r.ID })
	s.templates = dedupeByID(s.templates, func(t domain.WorkoutTemplate) string { return t.ID })
	s.videos = dedupeByID(s.videos, func(v domain.VideoRecord) string { return v.ID })

	s.settings = domain.DefaultMeasurementSettings()
	if data := s.readSnapshot(ctx, CollectionSettings); data != nil {
		var settings domain.MeasurementSettings
		if err := json.Unmarshal(data, &settings); err != nil {
			log.WithError(err).WithField("collection", CollectionSettings).
				Warn("failed to parse settings snapshot, using defaults")
		} else if settings.WeightUnit != "" && settings.DistanceUnit != "" {
			s.settings = settings
		}
	}
}

// SetCurrentUser switches the active user and triggers a full Load.
// Pass an empty id when the user signs out.
func (s *Store) SetCurrentUser(ctx context.Context, userID string) {
	s.Load(ctx, userID)
}

// ClearUserData deletes the departing user's namespaced keys from local
// storage; the logout collaborator calls this after SetCurrentUser("").
func (s *Store) ClearUserData(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	keys, err := s.kv.Keys(ctx, UserKeyPrefix(userID))
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// readSnapshot fetches one collection's raw JSON: remote first, local
// fallback, nil when neither has it. Failures are logged, not returned;
// a failed read behaves like an absent snapshot.
func (s *Store) readSnapshot(ctx context.Context, collection string) []byte {
	data, err := s.dispatcher.Pull(ctx, s.userID, collection)
	if err == nil {
		return data
	}
	if !errors.Is(err, syncer.ErrNoSnapshot) {
		log.WithError(err).WithField("collection", collection).Warn("remote pull failed, trying local")
	}

	data, err = s.kv.Get(ctx, Key(s.userID, collection))
	if err == nil {
		return data
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.WithError(err).WithField("collection", collection).Warn("local read failed, seeding default")
	}
	return nil
}

// loadSlice fills one slice collection from its snapshot, seeding with
// fallback() when the snapshot is absent or unparseable.
func loadSlice[T any](s *Store, ctx context.Context, collection string, dst *[]T, fallback func() []T) {
	seed := func() []T {
		if fallback != nil {
			return fallback()
		}
		return nil
	}

	data := s.readSnapshot(ctx, collection)
	if data == nil {
		*dst = seed()
		return
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.WithError(err).WithField("collection", collection).Warn("failed to parse snapshot, seeding default")
		*dst = seed()
		return
	}
	// An empty but present snapshot stays empty; only a missing or
	// unreadable one seeds the fallback.
	*dst = items
}

// dedupeByID folds the list into an identity-keyed map in list order,
// so a later entry with the same id replaces an earlier one (last write
// wins). The surviving entries keep the position of their first
// occurrence, which keeps the result deterministic.
func dedupeByID[T any](items []T, id func(T) string) []T {
	if len(items) == 0 {
		return items
	}
	index := make(map[string]int, len(items))
	out := items[:0:0]
	for _, item := range items {
		if at, seen := index[id(item)]; seen {
			out[at] = item
			continue
		}
		index[id(item)] = len(out)
		out = append(out, item)
	}
	return out
}

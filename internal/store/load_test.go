package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"coachdata/internal/domain"
	"coachdata/internal/storage"
	"coachdata/internal/store"
	"coachdata/internal/syncer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededSink serves canned remote snapshots keyed by (userID, collection).
type seededSink struct {
	snapshots map[string][]byte
}

func (s *seededSink) Push(_ context.Context, userID, collection string, data []byte) error {
	return nil
}

func (s *seededSink) Pull(_ context.Context, userID, collection string) ([]byte, error) {
	if data, ok := s.snapshots[userID+"/"+collection]; ok {
		return data, nil
	}
	return nil, syncer.ErrNoSnapshot
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestLoad_SeedsDefaultsWhenNothingStored(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))

	s.Load(context.Background(), "u1")

	assert.Empty(t, s.Clients())
	assert.Empty(t, s.Workouts())
	assert.Empty(t, s.PersonalRecords())
	assert.Empty(t, s.Templates())
	assert.Empty(t, s.VideoRecords())
	assert.NotEmpty(t, s.Exercises(), "exercises seed with the built-in catalog")
	assert.Equal(t, domain.DefaultMeasurementSettings(), s.MeasurementSettings())
}

func TestLoad_FallsBackToLocalSnapshot(t *testing.T) {
	kv := storage.NewMemoryKV()
	clients := []domain.Client{{ID: "c1", Name: "Ana"}}
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_clients", mustJSON(t, clients)))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(context.Background(), "u1")

	got := s.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestLoad_PrefersRemoteSnapshot(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_clients",
		mustJSON(t, []domain.Client{{ID: "c1", Name: "Local Ana"}})))

	sink := &seededSink{snapshots: map[string][]byte{
		"u1/fitness_clients": mustJSON(t, []domain.Client{{ID: "c1", Name: "Remote Ana"}}),
	}}
	s := store.New(kv, syncer.NewDispatcher(sink))
	s.Load(context.Background(), "u1")

	got := s.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "Remote Ana", got[0].Name)
}

func TestLoad_DeduplicatesWorkoutsLastWriteWins(t *testing.T) {
	kv := storage.NewMemoryKV()
	workouts := []domain.Workout{
		{ID: "w1", Name: "Old Name", TotalVolume: 100},
		{ID: "w2", Name: "Keep Me", TotalVolume: 50},
		{ID: "w1", Name: "New Name", TotalVolume: 120},
	}
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_workouts", mustJSON(t, workouts)))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(context.Background(), "u1")

	got := s.Workouts()
	require.Len(t, got, 2)

	seen := map[string]domain.Workout{}
	for _, w := range got {
		_, dup := seen[w.ID]
		require.False(t, dup, "no two workouts may share an identity after load")
		seen[w.ID] = w
	}
	assert.Equal(t, "New Name", seen["w1"].Name, "later entry's fields win")
	assert.Equal(t, 120.0, seen["w1"].TotalVolume)
	assert.Equal(t, "Keep Me", seen["w2"].Name)
}

func TestLoad_DeduplicatesEveryCollection(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "user_u1_fitness_clients", mustJSON(t, []domain.Client{
		{ID: "c1", Name: "Old Ana"},
		{ID: "c1", Name: "New Ana"},
	})))
	require.NoError(t, kv.Set(ctx, "user_u1_fitness_personal_records", mustJSON(t, []domain.PersonalRecord{
		{ID: "r1", Value: 100},
		{ID: "r1", Value: 110},
	})))
	require.NoError(t, kv.Set(ctx, "user_u1_fitness_workout_templates", mustJSON(t, []domain.WorkoutTemplate{
		{ID: "t1", Name: "Old Plan"},
		{ID: "t1", Name: "New Plan"},
	})))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(ctx, "u1")

	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "New Ana", clients[0].Name)

	records := s.PersonalRecords()
	require.Len(t, records, 1)
	assert.Equal(t, 110.0, records[0].Value)

	templates := s.Templates()
	require.Len(t, templates, 1)
	assert.Equal(t, "New Plan", templates[0].Name)
}

func TestLoad_ParseFailureFallsBackToDefault(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_workouts", []byte("{not json")))
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_exercises", []byte("{not json")))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(context.Background(), "u1")

	assert.Empty(t, s.Workouts())
	assert.NotEmpty(t, s.Exercises(), "unparseable exercises fall back to the catalog")
}

func TestLoad_SignedOutBaseline(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(context.Background(), "u1")
	_, commit := s.AddClient(domain.Client{Name: "Ana"})
	require.NoError(t, commit.Wait())

	s.SetCurrentUser(context.Background(), "")

	assert.Equal(t, "", s.CurrentUserID())
	assert.Empty(t, s.Clients())
	assert.Empty(t, s.Workouts())
	assert.NotEmpty(t, s.Exercises())
	assert.Equal(t, domain.DefaultMeasurementSettings(), s.MeasurementSettings())
}

func TestLoad_Settings(t *testing.T) {
	kv := storage.NewMemoryKV()
	settings := domain.MeasurementSettings{WeightUnit: domain.UnitImperial, DistanceUnit: domain.UnitImperial}
	require.NoError(t, kv.Set(context.Background(), "user_u1_fitness_measurement_settings", mustJSON(t, settings)))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	s.Load(context.Background(), "u1")

	assert.Equal(t, settings, s.MeasurementSettings())
}

func TestClearUserData(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "user_u1_fitness_clients", []byte("[]")))
	require.NoError(t, kv.Set(ctx, "user_u1_fitness_workouts", []byte("[]")))
	require.NoError(t, kv.Set(ctx, "user_u2_fitness_clients", []byte("[]")))

	s := store.New(kv, syncer.NewDispatcher(syncer.NoopSink{}))
	require.NoError(t, s.ClearUserData(ctx, "u1"))

	_, err := kv.Get(ctx, "user_u1_fitness_clients")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = kv.Get(ctx, "user_u1_fitness_workouts")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = kv.Get(ctx, "user_u2_fitness_clients")
	assert.NoError(t, err, "another user's keys are untouched")
}

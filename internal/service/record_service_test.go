package service_test

import (
	"testing"

	"coachdata/internal/domain"
	"coachdata/internal/service"
	"coachdata/internal/storage"
	"coachdata/internal/store"
	"coachdata/internal/syncer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(storage.NewMemoryKV(), syncer.NewDispatcher(syncer.NoopSink{}))
}

func recordsByType(records []domain.PersonalRecord) map[domain.RecordType]domain.PersonalRecord {
	out := make(map[domain.RecordType]domain.PersonalRecord)
	for _, r := range records {
		out[r.Type] = r
	}
	return out
}

func TestCheckAndAddRecord_FirstSetCreatesBothRecords(t *testing.T) {
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	improved, commit := engine.CheckAndAddRecord("c1", "e1", 50, 250, "w1", "")
	require.NoError(t, commit.Wait())
	assert.True(t, improved)

	records := s.RecordsFor("c1", "e1")
	require.Len(t, records, 2)
	byType := recordsByType(records)
	assert.Equal(t, 50.0, byType[domain.RecordMaxWeight].Value)
	assert.Equal(t, 250.0, byType[domain.RecordMaxVolume].Value)
	assert.Equal(t, "w1", byType[domain.RecordMaxWeight].WorkoutID)
}

func TestCheckAndAddRecord_IndependentMetrics(t *testing.T) {
	// The two-set scenario: set1 (50kg x5 = 250), then set2 (55kg x4 = 220).
	// Weight improves, volume does not; the volume record must survive.
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	improved, c1 := engine.CheckAndAddRecord("c1", "e1", 50, 250, "w1", "")
	require.NoError(t, c1.Wait())
	require.True(t, improved)

	improved, c2 := engine.CheckAndAddRecord("c1", "e1", 55, 220, "w1", "")
	require.NoError(t, c2.Wait())
	assert.True(t, improved)

	records := s.RecordsFor("c1", "e1")
	require.Len(t, records, 2, "exactly one active record per type")
	byType := recordsByType(records)
	assert.Equal(t, 55.0, byType[domain.RecordMaxWeight].Value)
	assert.Equal(t, 250.0, byType[domain.RecordMaxVolume].Value)
}

func TestCheckAndAddRecord_StrictGreaterThan(t *testing.T) {
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	_, c := engine.CheckAndAddRecord("c1", "e1", 100, 500, "w1", "")
	require.NoError(t, c.Wait())
	before := recordsByType(s.RecordsFor("c1", "e1"))

	// A tie on both metrics is not a new record.
	improved, c2 := engine.CheckAndAddRecord("c1", "e1", 100, 500, "w2", "")
	require.NoError(t, c2.Wait())
	assert.False(t, improved)

	after := recordsByType(s.RecordsFor("c1", "e1"))
	assert.Equal(t, before[domain.RecordMaxWeight].ID, after[domain.RecordMaxWeight].ID)
	assert.Equal(t, before[domain.RecordMaxVolume].ID, after[domain.RecordMaxVolume].ID)
}

func TestCheckAndAddRecord_IdempotentUnderNonImprovingInput(t *testing.T) {
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	_, c := engine.CheckAndAddRecord("c1", "e1", 100, 500, "w1", "")
	require.NoError(t, c.Wait())

	for i := 0; i < 2; i++ {
		improved, c := engine.CheckAndAddRecord("c1", "e1", 90, 450, "w2", "")
		require.NoError(t, c.Wait())
		assert.False(t, improved)
	}

	records := s.RecordsFor("c1", "e1")
	assert.Len(t, records, 2, "still exactly one active record per type")
}

func TestCheckAndAddRecord_SimultaneousWeightAndVolumeRecord(t *testing.T) {
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	_, c := engine.CheckAndAddRecord("c1", "e1", 50, 250, "w1", "")
	require.NoError(t, c.Wait())

	improved, c2 := engine.CheckAndAddRecord("c1", "e1", 60, 300, "w2", "video/key.mp4")
	require.NoError(t, c2.Wait())
	assert.True(t, improved)

	byType := recordsByType(s.RecordsFor("c1", "e1"))
	assert.Equal(t, 60.0, byType[domain.RecordMaxWeight].Value)
	assert.Equal(t, 300.0, byType[domain.RecordMaxVolume].Value)
	assert.Equal(t, "video/key.mp4", byType[domain.RecordMaxWeight].VideoRef)
	assert.Equal(t, "w2", byType[domain.RecordMaxVolume].WorkoutID)
}

func TestCheckAndAddRecord_PairsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	engine := service.NewRecordService(s)

	_, c1 := engine.CheckAndAddRecord("c1", "e1", 100, 500, "w1", "")
	require.NoError(t, c1.Wait())
	_, c2 := engine.CheckAndAddRecord("c1", "e2", 40, 200, "w1", "")
	require.NoError(t, c2.Wait())
	_, c3 := engine.CheckAndAddRecord("c2", "e1", 60, 300, "w2", "")
	require.NoError(t, c3.Wait())

	assert.Len(t, s.RecordsFor("c1", "e1"), 2)
	assert.Len(t, s.RecordsFor("c1", "e2"), 2)
	assert.Len(t, s.RecordsFor("c2", "e1"), 2)
}

package service

import (
	"coachdata/internal/domain"
	"coachdata/internal/store"
)

// WorkoutService is the workout-logging flow: it adds workouts to the
// store and feeds every completed set through the record engine. The
// engine is only ever invoked from here (and from multi-client session
// logging), never spontaneously.
type WorkoutService struct {
	store    *store.Store
	records  *RecordService
	sessions *SessionService
}

// NewWorkoutService creates a new instance of WorkoutService.
func NewWorkoutService(s *store.Store, records *RecordService, sessions *SessionService) *WorkoutService {
	return &WorkoutService{store: s, records: records, sessions: sessions}
}

// LogWorkout records a completed single-client workout and runs the
// record check for each performed set. Returns the stored workout, the
// workout collection's Commit, and whether any personal record was set.
func (ws *WorkoutService) LogWorkout(w domain.Workout) (domain.Workout, *store.Commit, bool) {
	added, commit := ws.store.AddWorkout(w)
	recordSet := ws.checkRecords(added)
	return added, commit, recordSet
}

// LogMultiClientSession splits a shared session into per-client workouts
// and runs the record check over each derived workout's sets. Returns
// the batch result and whether any participant set a record.
func (ws *WorkoutService) LogMultiClientSession(session domain.Workout) (*SplitResult, bool) {
	result := ws.sessions.SplitSession(session)
	recordSet := false
	for _, outcome := range result.Outcomes {
		if ws.checkRecords(outcome.Workout) {
			recordSet = true
		}
	}
	return result, recordSet
}

func (ws *WorkoutService) checkRecords(w domain.Workout) bool {
	recordSet := false
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			improved, _ := ws.records.CheckAndAddRecord(
				w.ClientID, ex.ExerciseID, set.Weight, set.Volume(), w.ID, set.VideoRef)
			if improved {
				recordSet = true
			}
		}
	}
	return recordSet
}

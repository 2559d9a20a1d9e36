package service

import (
	"fmt"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	log "github.com/sirupsen/logrus"
)

// SessionService decomposes one authored multi-client session into
// independent per-client workouts.
type SessionService struct {
	store *store.Store
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(s *store.Store) *SessionService {
	return &SessionService{store: s}
}

// SplitOutcome is the result of deriving one participant's workout.
type SplitOutcome struct {
	ClientID string
	Workout  domain.Workout
	Commit   *store.Commit
}

// SplitResult reports the whole batch. The derivations are independent,
// non-atomic operations: one participant's persistence failure does not
// roll back the others.
type SplitResult struct {
	SessionName string
	Outcomes    []SplitOutcome
}

// Wait blocks until every derived workout's persistence has finished and
// returns the per-client errors, index-aligned with Outcomes.
func (r *SplitResult) Wait() []error {
	errs := make([]error, len(r.Outcomes))
	for i, o := range r.Outcomes {
		errs[i] = o.Commit.Wait()
	}
	return errs
}

// SplitSession derives one workout per participating client from a
// multi-client session. For each client, each exercise contributes that
// client's own sublist of sets; an exercise the client has no sets for
// is dropped from their workout entirely. The derived workout's volume
// counts only the client's own sets, its name is the client's display
// name prefixed to the session name, and it carries the full roster of
// co-participants for display. Each derived workout is added, persisted
// and synced independently.
func (ss *SessionService) SplitSession(session domain.Workout) *SplitResult {
	result := &SplitResult{SessionName: session.Name}

	for _, participant := range session.Participants {
		var exercises []domain.WorkoutExercise
		for _, ex := range session.Exercises {
			sets := ex.SetsByClient[participant.ID]
			if len(sets) == 0 {
				continue
			}
			exercises = append(exercises, domain.WorkoutExercise{
				ID:           domain.NewID(),
				ExerciseID:   ex.ExerciseID,
				ExerciseName: ex.ExerciseName,
				Sets:         sets,
			})
		}

		derived := domain.Workout{
			ClientID:        participant.ID,
			ClientName:      participant.Name,
			Name:            fmt.Sprintf("%s - %s", participant.Name, session.Name),
			Date:            session.Date,
			Exercises:       exercises,
			DurationMinutes: session.DurationMinutes,
			Notes:           session.Notes,
			FromMultiClient: true,
			Participants:    session.Participants,
		}
		derived.TotalVolume = derived.ComputeTotalVolume()

		added, commit := ss.store.AddWorkout(derived)
		result.Outcomes = append(result.Outcomes, SplitOutcome{
			ClientID: participant.ID,
			Workout:  added,
			Commit:   commit,
		})
	}

	log.WithFields(log.Fields{
		"session":      session.Name,
		"participants": len(session.Participants),
		"derived":      len(result.Outcomes),
	}).Info("multi-client session split")

	return result
}

package service

import (
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/store"

	log "github.com/sirupsen/logrus"
)

// RecordService is the personal-record engine: it decides, per completed
// set, whether the client just achieved a new max-weight or max-volume
// record for an exercise.
type RecordService struct {
	store *store.Store
}

// NewRecordService creates a new instance of RecordService.
func NewRecordService(s *store.Store) *RecordService {
	return &RecordService{store: s}
}

// CheckAndAddRecord evaluates a candidate set against the client's
// current records for the exercise. Each of the two metrics is compared
// independently with strict greater-than: a tie never creates a record.
// When at least one metric improves, the pair's previous holders are
// replaced by the new record set in a single persist+sync, and the
// returned bool is true. The Commit reports that one write; when nothing
// improved it is an already-completed no-op.
func (rs *RecordService) CheckAndAddRecord(clientID, exerciseID string, weight, volume float64, workoutID, videoRef string) (bool, *store.Commit) {
	existing := rs.store.RecordsFor(clientID, exerciseID)

	var currentWeight, currentVolume *domain.PersonalRecord
	for i := range existing {
		switch existing[i].Type {
		case domain.RecordMaxWeight:
			currentWeight = &existing[i]
		case domain.RecordMaxVolume:
			currentVolume = &existing[i]
		}
	}

	now := time.Now().UTC()
	improved := false
	var replacement []domain.PersonalRecord

	if currentWeight == nil || weight > currentWeight.Value {
		improved = true
		replacement = append(replacement, domain.PersonalRecord{
			ID:         domain.NewID(),
			ClientID:   clientID,
			ExerciseID: exerciseID,
			Type:       domain.RecordMaxWeight,
			Value:      weight,
			AchievedAt: now,
			WorkoutID:  workoutID,
			VideoRef:   videoRef,
		})
	} else {
		replacement = append(replacement, *currentWeight)
	}

	if currentVolume == nil || volume > currentVolume.Value {
		improved = true
		replacement = append(replacement, domain.PersonalRecord{
			ID:         domain.NewID(),
			ClientID:   clientID,
			ExerciseID: exerciseID,
			Type:       domain.RecordMaxVolume,
			Value:      volume,
			AchievedAt: now,
			WorkoutID:  workoutID,
			VideoRef:   videoRef,
		})
	} else {
		replacement = append(replacement, *currentVolume)
	}

	if !improved {
		return false, store.CompletedCommit()
	}

	log.WithFields(log.Fields{
		"clientID":   clientID,
		"exerciseID": exerciseID,
		"weight":     weight,
		"volume":     volume,
	}).Debug("new personal record")

	return true, rs.store.ReplaceRecordsFor(clientID, exerciseID, replacement)
}

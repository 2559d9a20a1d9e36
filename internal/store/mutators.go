package store

import (
	"sort"
	"time"

	"coachdata/internal/domain"
)

// Mutators follow one contract across all collections: add assigns the
// identity and timestamp fields the caller left empty, appends, persists
// the full collection and dispatches sync; update shallow-merges the set
// fields and is a silent no-op on an unknown id; delete removes by id,
// silently ignoring unknown ids, and never cascades into other
// collections. No mutator validates input; that is the caller's job.

// --- Clients ---

// ClientUpdate holds the partial fields of a client update. Nil fields
// are left untouched.
type ClientUpdate struct {
	Name  *string
	Email *string
	Phone *string
	Notes *string
}

func (s *Store) AddClient(c domain.Client) (domain.Client, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = domain.NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	s.clients = append(s.clients, c)
	return c, s.persist(CollectionClients, s.clients)
}

func (s *Store) UpdateClient(id string, update ClientUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.clients[i].Name = *update.Name
		}
		if update.Email != nil {
			s.clients[i].Email = *update.Email
		}
		if update.Phone != nil {
			s.clients[i].Phone = *update.Phone
		}
		if update.Notes != nil {
			s.clients[i].Notes = *update.Notes
		}
		return s.persist(CollectionClients, s.clients)
	}
	return noopCommit()
}

// DeleteClient removes the client only. Workouts, records and videos
// referencing the client keep their now-dangling client id; display
// lookups resolve it to the documented fallback.
func (s *Store) DeleteClient(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return s.persist(CollectionClients, s.clients)
		}
	}
	return noopCommit()
}

// AddClientPhoto appends a photo to the client's list.
func (s *Store) AddClientPhoto(clientID string, photo domain.ClientPhoto) (domain.ClientPhoto, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != clientID {
			continue
		}
		if photo.ID == "" {
			photo.ID = domain.NewID()
		}
		if photo.TakenAt.IsZero() {
			photo.TakenAt = time.Now().UTC()
		}
		s.clients[i].Photos = append(s.clients[i].Photos, photo)
		return photo, s.persist(CollectionClients, s.clients)
	}
	return domain.ClientPhoto{}, noopCommit()
}

func (s *Store) DeleteClientPhoto(clientID, photoID string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != clientID {
			continue
		}
		photos := s.clients[i].Photos
		for j := range photos {
			if photos[j].ID == photoID {
				s.clients[i].Photos = append(photos[:j], photos[j+1:]...)
				return s.persist(CollectionClients, s.clients)
			}
		}
		return noopCommit()
	}
	return noopCommit()
}

// AddBodyWeight inserts a measurement keeping the list ordered by
// measurement time.
func (s *Store) AddBodyWeight(clientID string, bw domain.BodyWeight) (domain.BodyWeight, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != clientID {
			continue
		}
		if bw.ID == "" {
			bw.ID = domain.NewID()
		}
		if bw.MeasuredAt.IsZero() {
			bw.MeasuredAt = time.Now().UTC()
		}
		weights := append(s.clients[i].BodyWeights, bw)
		sort.SliceStable(weights, func(a, b int) bool {
			return weights[a].MeasuredAt.Before(weights[b].MeasuredAt)
		})
		s.clients[i].BodyWeights = weights
		return bw, s.persist(CollectionClients, s.clients)
	}
	return domain.BodyWeight{}, noopCommit()
}

func (s *Store) DeleteBodyWeight(clientID, bodyWeightID string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != clientID {
			continue
		}
		weights := s.clients[i].BodyWeights
		for j := range weights {
			if weights[j].ID == bodyWeightID {
				s.clients[i].BodyWeights = append(weights[:j], weights[j+1:]...)
				return s.persist(CollectionClients, s.clients)
			}
		}
		return noopCommit()
	}
	return noopCommit()
}

// --- Exercises ---

// ExerciseUpdate holds the partial fields of an exercise update.
type ExerciseUpdate struct {
	Name         *string
	Category     *domain.ExerciseCategory
	MuscleGroups *[]string
	Equipment    *string
	Instructions *string
}

func (s *Store) AddExercise(e domain.Exercise) (domain.Exercise, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.exercises = append(s.exercises, e)
	return e, s.persist(CollectionExercises, s.exercises)
}

func (s *Store) UpdateExercise(id string, update ExerciseUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.exercises[i].Name = *update.Name
		}
		if update.Category != nil {
			s.exercises[i].Category = *update.Category
		}
		if update.MuscleGroups != nil {
			s.exercises[i].MuscleGroups = *update.MuscleGroups
		}
		if update.Equipment != nil {
			s.exercises[i].Equipment = *update.Equipment
		}
		if update.Instructions != nil {
			s.exercises[i].Instructions = *update.Instructions
		}
		return s.persist(CollectionExercises, s.exercises)
	}
	return noopCommit()
}

func (s *Store) DeleteExercise(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			return s.persist(CollectionExercises, s.exercises)
		}
	}
	return noopCommit()
}

// --- Workouts ---

// WorkoutUpdate holds the partial fields of a workout update. Setting
// Exercises recomputes the stored total volume.
type WorkoutUpdate struct {
	Name            *string
	Date            *time.Time
	Exercises       *[]domain.WorkoutExercise
	DurationMinutes **int
	Notes           *string
}

func (s *Store) AddWorkout(w domain.Workout) (domain.Workout, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.ID == "" {
		w.ID = domain.NewID()
	}
	if w.Date.IsZero() {
		w.Date = time.Now().UTC()
	}
	if w.TotalVolume == 0 {
		w.TotalVolume = w.ComputeTotalVolume()
	}
	s.workouts = append(s.workouts, w)
	return w, s.persist(CollectionWorkouts, s.workouts)
}

func (s *Store) UpdateWorkout(id string, update WorkoutUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workouts {
		if s.workouts[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.workouts[i].Name = *update.Name
		}
		if update.Date != nil {
			s.workouts[i].Date = *update.Date
		}
		if update.Exercises != nil {
			s.workouts[i].Exercises = *update.Exercises
			s.workouts[i].TotalVolume = s.workouts[i].ComputeTotalVolume()
		}
		if update.DurationMinutes != nil {
			s.workouts[i].DurationMinutes = *update.DurationMinutes
		}
		if update.Notes != nil {
			s.workouts[i].Notes = *update.Notes
		}
		return s.persist(CollectionWorkouts, s.workouts)
	}
	return noopCommit()
}

func (s *Store) DeleteWorkout(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			return s.persist(CollectionWorkouts, s.workouts)
		}
	}
	return noopCommit()
}

// --- Personal records ---

func (s *Store) AddPersonalRecord(r domain.PersonalRecord) (domain.PersonalRecord, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = domain.NewID()
	}
	if r.AchievedAt.IsZero() {
		r.AchievedAt = time.Now().UTC()
	}
	s.records = append(s.records, r)
	return r, s.persist(CollectionRecords, s.records)
}

// PersonalRecordUpdate holds the partial fields of a record update.
// Normal supersession goes through the record engine; this exists for
// manual corrections.
type PersonalRecordUpdate struct {
	Value    *float64
	VideoRef *string
}

func (s *Store) UpdatePersonalRecord(id string, update PersonalRecordUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if update.Value != nil {
			s.records[i].Value = *update.Value
		}
		if update.VideoRef != nil {
			s.records[i].VideoRef = *update.VideoRef
		}
		return s.persist(CollectionRecords, s.records)
	}
	return noopCommit()
}

func (s *Store) DeletePersonalRecord(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist(CollectionRecords, s.records)
		}
	}
	return noopCommit()
}

// RecordsFor returns the active records for a (client, exercise) pair.
func (s *Store) RecordsFor(clientID, exerciseID string) []domain.PersonalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PersonalRecord
	for _, r := range s.records {
		if r.ClientID == clientID && r.ExerciseID == exerciseID {
			out = append(out, r)
		}
	}
	return out
}

// ReplaceRecordsFor swaps all records of a (client, exercise) pair for the
// given replacement set in one mutation: the previous holders are removed,
// the new records appended, and the collection is persisted and synced
// exactly once. The record engine uses this so a set that improves both
// metrics still causes a single write.
func (s *Store) ReplaceRecordsFor(clientID, exerciseID string, replacement []domain.PersonalRecord) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ClientID == clientID && r.ExerciseID == exerciseID {
			continue
		}
		kept = append(kept, r)
	}
	s.records = append(kept, replacement...)
	return s.persist(CollectionRecords, s.records)
}

// --- Templates ---

// TemplateUpdate holds the partial fields of a template update.
type TemplateUpdate struct {
	Name      *string
	Notes     *string
	Exercises *[]domain.TemplateExercise
}

func (s *Store) AddTemplate(t domain.WorkoutTemplate) (domain.WorkoutTemplate, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.templates = append(s.templates, t)
	return t, s.persist(CollectionTemplates, s.templates)
}

func (s *Store) UpdateTemplate(id string, update TemplateUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.templates[i].Name = *update.Name
		}
		if update.Notes != nil {
			s.templates[i].Notes = *update.Notes
		}
		if update.Exercises != nil {
			s.templates[i].Exercises = *update.Exercises
		}
		return s.persist(CollectionTemplates, s.templates)
	}
	return noopCommit()
}

func (s *Store) DeleteTemplate(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return s.persist(CollectionTemplates, s.templates)
		}
	}
	return noopCommit()
}

// --- Video records ---

func (s *Store) AddVideoRecord(v domain.VideoRecord) (domain.VideoRecord, *Commit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = domain.NewID()
	}
	if v.CapturedAt.IsZero() {
		v.CapturedAt = time.Now().UTC()
	}
	s.videos = append(s.videos, v)
	return v, s.persist(CollectionVideos, s.videos)
}

// VideoRecordUpdate holds the partial fields of a video-record update.
// The measurement itself (weight, reps, capture time) is immutable; only
// the free-text notes may change.
type VideoRecordUpdate struct {
	Notes *string
}

func (s *Store) UpdateVideoRecord(id string, update VideoRecordUpdate) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID != id {
			continue
		}
		if update.Notes != nil {
			s.videos[i].Notes = *update.Notes
		}
		return s.persist(CollectionVideos, s.videos)
	}
	return noopCommit()
}

func (s *Store) DeleteVideoRecord(id string) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			return s.persist(CollectionVideos, s.videos)
		}
	}
	return noopCommit()
}

// --- Measurement settings ---

func (s *Store) SetMeasurementSettings(settings domain.MeasurementSettings) *Commit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.persist(CollectionSettings, s.settings)
}

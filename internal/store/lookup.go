package store

import "coachdata/internal/domain"

// Lookups return (zero, false) for unknown ids so callers can tell "not
// found" apart from a real entity. The DisplayName helpers layer the
// documented fallback labels on top for rendering dangling references.

func (s *Store) ClientByID(id string) (domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

func (s *Store) ExerciseByID(id string) (domain.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Exercise{}, false
}

func (s *Store) WorkoutByID(id string) (domain.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Workout{}, false
}

func (s *Store) TemplateByID(id string) (domain.WorkoutTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.WorkoutTemplate{}, false
}

// ClientDisplayName resolves a client id for display, falling back to
// the documented label when the id dangles (e.g. the client was deleted
// but their workouts remain).
func (s *Store) ClientDisplayName(id string) string {
	if c, ok := s.ClientByID(id); ok {
		return c.Name
	}
	return domain.UnknownClientName
}

// ExerciseDisplayName resolves an exercise id for display with the same
// dangling-reference policy.
func (s *Store) ExerciseDisplayName(id string) string {
	if e, ok := s.ExerciseByID(id); ok {
		return e.Name
	}
	return domain.UnknownExerciseName
}

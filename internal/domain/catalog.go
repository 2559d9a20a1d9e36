package domain

import "time"

// DefaultExercises returns the built-in starter catalog, used when a user
// has no stored exercise collection (fresh install or signed-out baseline).
func DefaultExercises() []Exercise {
	now := time.Now().UTC()
	mk := func(name string, cat ExerciseCategory, muscles []string, equipment string) Exercise {
		return Exercise{
			ID:           NewID(),
			Name:         name,
			Category:     cat,
			MuscleGroups: muscles,
			Equipment:    equipment,
			CreatedAt:    now,
		}
	}
	return []Exercise{
		mk("Bench Press", CategoryChest, []string{"chest", "triceps", "front delts"}, "barbell"),
		mk("Incline Dumbbell Press", CategoryChest, []string{"upper chest", "front delts"}, "dumbbells"),
		mk("Deadlift", CategoryBack, []string{"erectors", "glutes", "hamstrings", "traps"}, "barbell"),
		mk("Barbell Row", CategoryBack, []string{"lats", "rhomboids", "biceps"}, "barbell"),
		mk("Pull-Up", CategoryBack, []string{"lats", "biceps"}, "bodyweight"),
		mk("Overhead Press", CategoryShoulders, []string{"delts", "triceps"}, "barbell"),
		mk("Lateral Raise", CategoryShoulders, []string{"side delts"}, "dumbbells"),
		mk("Barbell Curl", CategoryArms, []string{"biceps"}, "barbell"),
		mk("Triceps Pushdown", CategoryArms, []string{"triceps"}, "cable"),
		mk("Back Squat", CategoryLegs, []string{"quads", "glutes", "hamstrings"}, "barbell"),
		mk("Romanian Deadlift", CategoryLegs, []string{"hamstrings", "glutes"}, "barbell"),
		mk("Leg Press", CategoryLegs, []string{"quads", "glutes"}, "machine"),
		mk("Plank", CategoryCore, []string{"abs", "obliques"}, "bodyweight"),
		mk("Hanging Leg Raise", CategoryCore, []string{"abs", "hip flexors"}, "bodyweight"),
		mk("Rowing Machine", CategoryCardio, []string{"full body"}, "machine"),
		mk("Treadmill Run", CategoryCardio, []string{"legs"}, "machine"),
		mk("Burpee", CategoryFullBody, []string{"full body"}, "bodyweight"),
		mk("Clean and Press", CategoryFullBody, []string{"full body"}, "barbell"),
	}
}

package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
)

// DefaultCategory labels workouts saved without a chosen category.
const DefaultCategory = "Personalizado"

// ErrIncompleteWorkout blocks a save until the draft has a name and at
// least one exercise.
var ErrIncompleteWorkout = errors.New("Preencha o nome do treino e adicione pelo menos um exercício.")

// minutesPerExercise drives the derived duration of a saved workout.
const minutesPerExercise = 3

// AddExercise appends a draft exercise. Drafts missing a name, reps or
// sets are rejected silently, leaving the list unchanged. Ids are
// timestamps, so the list stays in insertion order.
func AddExercise(d store.WorkoutDraft, name, reps, sets, rest string, now func() time.Time) store.WorkoutDraft {
	if name == "" || reps == "" || sets == "" {
		return d
	}
	d.Entries = append(d.Entries, models.ExerciseEntry{
		ID:      now().UnixNano(),
		Name:    name,
		Reps:    reps,
		Sets:    sets,
		RestSec: rest,
	})
	return d
}

// RemoveExercise filters out the entry with the given id. Unknown ids
// are a no-op.
func RemoveExercise(d store.WorkoutDraft, id int64) store.WorkoutDraft {
	entries := d.Entries[:0:0]
	for _, e := range d.Entries {
		if e.ID != id {
			entries = append(entries, e)
		}
	}
	d.Entries = entries
	return d
}

// Build turns a complete draft into a Workout with its derived fields.
func Build(d store.WorkoutDraft) (models.Workout, error) {
	if d.Name == "" || len(d.Entries) == 0 {
		return models.Workout{}, ErrIncompleteWorkout
	}

	category := d.Category
	if category == "" {
		category = DefaultCategory
	}

	return models.Workout{
		ID:         uuid.NewString(),
		Title:      d.Name,
		Category:   category,
		Exercises:  len(d.Entries),
		Duration:   fmt.Sprintf("%d min", len(d.Entries)*minutesPerExercise),
		Difficulty: DefaultCategory,
		Status:     models.StatusAvailable,
		Entries:    d.Entries,
	}, nil
}

package workout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

// PageHandler renders the builder with the user's current draft.
func PageHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		draft := st.Draft(user.ID)

		renderBuilder(ctx, draft, "")
	}
}

// AddExerciseHandler appends one exercise to the draft. Malformed
// entries are dropped without an error, per the builder contract.
func AddExerciseHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		draft := draftFromForm(ctx, st.Draft(user.ID))
		draft = AddExercise(
			draft,
			ctx.PostForm("exercise_name"),
			ctx.PostForm("exercise_reps"),
			ctx.PostForm("exercise_sets"),
			ctx.PostForm("exercise_rest"),
			time.Now,
		)
		st.SetDraft(user.ID, draft)

		ctx.Redirect(http.StatusSeeOther, view.NewWorkout.Path())
	}
}

// RemoveExerciseHandler drops one draft entry by id, idempotently.
func RemoveExerciseHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
		if err != nil {
			ctx.String(http.StatusBadRequest, "invalid exercise id")
			return
		}

		draft := draftFromForm(ctx, st.Draft(user.ID))
		st.SetDraft(user.ID, RemoveExercise(draft, id))

		ctx.Redirect(http.StatusSeeOther, view.NewWorkout.Path())
	}
}

// SaveHandler validates and saves the draft. A blocking validation
// message keeps the user on the builder; success navigates home.
func SaveHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		draft := draftFromForm(ctx, st.Draft(user.ID))
		st.SetDraft(user.ID, draft)

		saved, err := Build(draft)
		if err != nil {
			if errors.Is(err, ErrIncompleteWorkout) {
				renderBuilder(ctx, draft, err.Error())
				return
			}
			ctx.String(http.StatusInternalServerError, err.Error())
			return
		}

		st.AddWorkout(user.ID, saved)
		st.ClearDraft(user.ID)

		ctx.Redirect(http.StatusSeeOther, view.Home.Path()+"?saved=1")
	}
}

// draftFromForm folds the name and category fields that ride along on
// every builder form, so typed values survive the round trip.
func draftFromForm(ctx *gin.Context, draft store.WorkoutDraft) store.WorkoutDraft {
	if name, ok := ctx.GetPostForm("workout_name"); ok {
		draft.Name = name
	}
	if category, ok := ctx.GetPostForm("workout_category"); ok {
		draft.Category = category
	}
	return draft
}

func renderBuilder(ctx *gin.Context, draft store.WorkoutDraft, errMsg string) {
	ctx.HTML(http.StatusOK, "new-workout.html", gin.H{
		"User":        middleware.SessionUser(ctx),
		"Draft":       draft,
		"Categories":  Categories,
		"Suggestions": SuggestedExercises(draft.Category),
		"Error":       errMsg,
	})
}

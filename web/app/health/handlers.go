package health

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

// Tips shown on the goals tab.
var goalTips = []string{
	"Mantenha consistência nos treinos (pelo menos 3x por semana)",
	"Combine exercícios cardio com musculação",
	"Acompanhe sua alimentação e hidratação",
	"Durma pelo menos 7-8 horas por noite",
	"Seja paciente - resultados duradouros levam tempo",
}

// PageHandler renders the health screen on the requested tab.
func PageHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		renderHealth(ctx, st, ctx.Query("tab"), ctx.Query("saved") == "1")
	}
}

// UpdateCurrentHandler stores the current metrics. Numeric fields take
// any parsed float with no range check; garbage becomes NaN and shows
// up in the derived BMI untouched.
func UpdateCurrentHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		profile, _ := st.Health(user.ID)

		profile.WeightKG = floatField(ctx, "weight")
		profile.HeightCM = floatField(ctx, "height")
		profile.BodyFat = floatField(ctx, "body_fat")
		profile.MuscleKG = floatField(ctx, "muscle")
		profile.Energy = intField(ctx, "energy", profile.Energy)
		profile.Sleep = intField(ctx, "sleep", profile.Sleep)
		profile.Stress = intField(ctx, "stress", profile.Stress)

		st.SetHealthProfile(user.ID, profile)

		ctx.Redirect(http.StatusSeeOther, view.Health.Path()+"?tab=current&saved=1")
	}
}

// UpdateGoalsHandler stores the target metrics.
func UpdateGoalsHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		_, goals := st.Health(user.ID)

		goals.TargetWeightKG = floatField(ctx, "target_weight")
		goals.TargetBodyFat = floatField(ctx, "target_body_fat")
		goals.TargetMuscleKG = floatField(ctx, "target_muscle")
		goals.TimeFrameMonths = intField(ctx, "time_frame", goals.TimeFrameMonths)

		st.SetHealthGoals(user.ID, goals)

		ctx.Redirect(http.StatusSeeOther, view.Health.Path()+"?tab=goals&saved=1")
	}
}

func renderHealth(ctx *gin.Context, st *store.MemoryStore, tab string, saved bool) {
	user := middleware.SessionUser(ctx)
	profile, goals := st.Health(user.ID)

	if tab != "goals" {
		tab = "current"
	}

	currentBMI := BMI(profile.WeightKG, profile.HeightCM)
	// Height is not a goal field, so the goal BMI reuses the current height.
	goalBMI := BMI(goals.TargetWeightKG, profile.HeightCM)

	ctx.HTML(http.StatusOK, "health.html", gin.H{
		"User":            user,
		"Tab":             tab,
		"Saved":           saved,
		"Profile":         profile,
		"Goals":           goals,
		"CurrentBMI":      FormatBMI(currentBMI),
		"CurrentCategory": CategoryFor(currentBMI),
		"GoalBMI":         FormatBMI(goalBMI),
		"GoalCategory":    CategoryFor(goalBMI),
		"WeightLoss":      formatDelta(profile.WeightKG - goals.TargetWeightKG),
		"BodyFatDrop":     formatDelta(profile.BodyFat - goals.TargetBodyFat),
		"MuscleGain":      formatDelta(goals.TargetMuscleKG - profile.MuscleKG),
		"Tips":            goalTips,
	})
}

func formatDelta(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func floatField(ctx *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(ctx.PostForm(name), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func intField(ctx *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(ctx.PostForm(name))
	if err != nil {
		return fallback
	}
	return v
}

package home

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/schedule"
)

var motivationalQuotes = []string{
	"Seu único limite é você mesmo! 💪",
	"Cada treino te aproxima do seu objetivo! 🎯",
	"A consistência é a chave do sucesso! 🔑",
	"Transforme suor em conquista! 🏆",
	"Seu corpo pode fazer isso. É sua mente que você precisa convencer! 🧠",
	"Não pare quando estiver cansado, pare quando terminar! ⚡",
	"O progresso, não a perfeição! 📈",
}

// QuickAction is one dashboard navigation tile.
type QuickAction struct {
	ID    string
	Title string
}

// Path resolves the tile's target screen.
func (a QuickAction) Path() string {
	return view.FromAction(a.ID).Path()
}

var quickActions = []QuickAction{
	{ID: "workout", Title: "Novo Treino"},
	{ID: "schedule", Title: "Agenda"},
	{ID: "health", Title: "Saúde"},
	{ID: "settings", Title: "Config"},
}

// defaultWorkouts is the static catalog every account starts with.
// User-created workouts are appended after these.
var defaultWorkouts = []models.Workout{
	{
		ID:         "default-1",
		Title:      "Treino HIIT Iniciante",
		Duration:   "20 min",
		Exercises:  8,
		Difficulty: "Fácil",
		Category:   "Queima de Gordura",
		Status:     models.StatusInProgress,
	},
	{
		ID:         "default-2",
		Title:      "Força para Membros Superiores",
		Duration:   "35 min",
		Exercises:  12,
		Difficulty: "Médio",
		Category:   "Ganho de Massa",
		Status:     models.StatusAvailable,
	},
	{
		ID:         "default-3",
		Title:      "Treino de Resistência",
		Duration:   "40 min",
		Exercises:  15,
		Difficulty: "Difícil",
		Category:   "Condicionamento",
		Status:     models.StatusCompleted,
	},
}

// Handler renders the dashboard: quote, quick actions, stats cards and
// the combined workout list.
func Handler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		now := time.Now()

		settings := st.Settings(user.ID)
		profile, _ := st.Health(user.ID)

		workouts := append(append([]models.Workout{}, defaultWorkouts...), st.CustomWorkouts(user.ID)...)

		data := gin.H{
			"User":       user,
			"Actions":    quickActions,
			"Workouts":   workouts,
			"WeightKG":   profile.WeightKG,
			"MonthCount": schedule.MonthCount(st.MarkedDays(user.ID), now.Year(), now.Month()),
			"Saved":      ctx.Query("saved") == "1",
		}
		if settings.MotivationalQuotes {
			data["Quote"] = motivationalQuotes[rand.Intn(len(motivationalQuotes))]
		}

		ctx.HTML(http.StatusOK, "home.html", data)
	}
}

package router

import (
	"encoding/gob"
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/config"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/zeniapi"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/auth"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/chat"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/health"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/home"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/logout"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/password"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/schedule"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/settings"
	"github.com/pedrovoltarelli/Zeni-Workout-app/web/app/workout"
)

type Handler struct {
	Router *gin.Engine
	Store  *store.MemoryStore
	API    *zeniapi.Client
}

// New creates the master handler with all dependencies.
func New(cfg config.Config) (*Handler, error) {
	engine := gin.Default()

	engine.SetFuncMap(template.FuncMap{
		"title": cases.Title(language.BrazilianPortuguese).String,
	})

	engine.LoadHTMLGlob("web/template/*.html")

	handler := &Handler{
		Router: engine,
		Store:  store.NewMemoryStore(),
		API:    zeniapi.New(cfg.APIBaseURL),
	}

	handler.registerRoutes(cfg)

	return handler, nil
}

// registerRoutes sets up all the application's routes.
func (h *Handler) registerRoutes(cfg config.Config) {
	gob.Register(models.User{})

	sessionStore := cookie.NewStore([]byte(cfg.CookieSecret))
	sessionStore.Options(sessions.Options{
		HttpOnly: true,
		Path:     "/",
	})
	h.Router.Use(sessions.Sessions("zeni-session", sessionStore))

	// The deep-link check runs ahead of every route: a reset token in
	// the URL always wins.
	h.Router.Use(middleware.ResetTokenGate)

	// Each screen's GET is registered off the view table; the session
	// gate follows view.Authenticated instead of being repeated per route.
	screens := map[view.View]gin.HandlerFunc{
		view.Login:          auth.LoginGetHandler(),
		view.Register:       auth.RegisterGetHandler(),
		view.ForgotPassword: password.ForgotGetHandler(),
		view.ResetPassword:  password.ResetGetHandler(h.API),
		view.Home:           home.Handler(h.Store),
		view.NewWorkout:     workout.PageHandler(h.Store),
		view.Schedule:       schedule.PageHandler(h.Store),
		view.Health:         health.PageHandler(h.Store),
		view.Settings:       settings.PageHandler(h.Store),
		view.Chat:           chat.PageHandler(h.Store),
	}
	for v, handler := range screens {
		if v.Authenticated() {
			h.Router.GET(v.Path(), middleware.IsAuthenticated, handler)
		} else {
			h.Router.GET(v.Path(), handler)
		}
	}

	h.Router.POST("/login", auth.LoginPostHandler(h.API))
	h.Router.POST("/register", auth.RegisterPostHandler(h.API))
	h.Router.GET("/logout", logout.Handler)

	h.Router.POST("/forgot-password", password.ForgotPostHandler(h.API))
	h.Router.POST("/reset-password", password.ResetPostHandler(h.API))

	h.Router.POST("/workouts/new/exercises", middleware.IsAuthenticated, workout.AddExerciseHandler(h.Store))
	h.Router.POST("/workouts/new/exercises/:id/remove", middleware.IsAuthenticated, workout.RemoveExerciseHandler(h.Store))
	h.Router.POST("/workouts/new/save", middleware.IsAuthenticated, workout.SaveHandler(h.Store))

	h.Router.POST("/schedule/toggle", middleware.IsAuthenticated, schedule.ToggleHandler(h.Store))

	h.Router.POST("/health/current", middleware.IsAuthenticated, health.UpdateCurrentHandler(h.Store))
	h.Router.POST("/health/goals", middleware.IsAuthenticated, health.UpdateGoalsHandler(h.Store))

	h.Router.POST("/settings", middleware.IsAuthenticated, settings.SaveHandler(h.Store))
	h.Router.POST("/settings/reset", middleware.IsAuthenticated, settings.ResetHandler(h.Store))

	h.Router.POST("/chat", middleware.IsAuthenticated, chat.SendHandler(h.Store, h.API))
}

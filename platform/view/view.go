// Package view models the application's screens as a closed set. The
// router serves exactly one view per request; navigation is always an
// explicit redirect to a view's path, never inferred.
package view

// View is one named, mutually exclusive screen.
type View string

const (
	Home           View = "home"
	NewWorkout     View = "new-workout"
	Schedule       View = "schedule"
	Health         View = "health"
	Settings       View = "settings"
	Chat           View = "chat"
	Login          View = "login"
	Register       View = "register"
	ForgotPassword View = "forgot-password"
	ResetPassword  View = "reset-password"
)

var paths = map[View]string{
	Home:           "/",
	NewWorkout:     "/workouts/new",
	Schedule:       "/schedule",
	Health:         "/health",
	Settings:       "/settings",
	Chat:           "/chat",
	Login:          "/login",
	Register:       "/register",
	ForgotPassword: "/forgot-password",
	ResetPassword:  "/reset-password",
}

// Path returns the route serving the view. Unknown views fall back to
// the home screen rather than producing a dead redirect.
func (v View) Path() string {
	if p, ok := paths[v]; ok {
		return p
	}
	return paths[Home]
}

// Authenticated reports whether the view sits behind the session gate.
// The reset-password deep link is reachable without a session.
func (v View) Authenticated() bool {
	switch v {
	case Login, Register, ForgotPassword, ResetPassword:
		return false
	}
	return true
}

// FromAction maps a dashboard quick-action id to its view. Unknown ids
// stay on home.
func FromAction(id string) View {
	switch id {
	case "workout":
		return NewWorkout
	case "schedule":
		return Schedule
	case "health":
		return Health
	case "settings":
		return Settings
	case "chat":
		return Chat
	}
	return Home
}

package models

import "html/template"

// User is the authenticated account as returned by the Zeni API.
// It is stored whole in the session cookie, so it must stay gob-friendly.
type User struct {
	ID    int64  `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Workout statuses shown on the dashboard cards.
const (
	StatusAvailable  = "available"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Workout is a named collection of exercises with a derived duration.
type Workout struct {
	ID         string
	Title      string
	Category   string
	Duration   string
	Exercises  int
	Difficulty string
	Status     string
	Entries    []ExerciseEntry
}

// ExerciseEntry is one manually entered exercise inside a workout draft.
// Reps, sets and rest are kept as the raw strings the user typed.
type ExerciseEntry struct {
	ID      int64
	Name    string
	Reps    string
	Sets    string
	RestSec string
}

// HealthProfile holds the current physical metrics and 1-10 wellbeing scales.
type HealthProfile struct {
	WeightKG float64
	HeightCM float64
	BodyFat  float64
	MuscleKG float64
	Energy   int
	Sleep    int
	Stress   int
}

// HealthGoals mirrors the profile's target values. Height is not a goal
// field; goal BMI is computed against the current height.
type HealthGoals struct {
	TargetWeightKG  float64
	TargetBodyFat   float64
	TargetMuscleKG  float64
	TimeFrameMonths int
}

// Settings is the flat preferences record behind the settings screen.
type Settings struct {
	Notifications      bool
	WorkoutReminders   bool
	WeeklyGoals        bool
	SoundEffects       bool
	DarkMode           bool
	MotivationalQuotes bool
	RestDayReminder    bool
	Units              string
	ReminderTime       string
	WeeklyGoal         int
}

// DefaultSettings returns the hardcoded defaults restored by the reset action.
func DefaultSettings() Settings {
	return Settings{
		Notifications:      true,
		WorkoutReminders:   true,
		WeeklyGoals:        true,
		SoundEffects:       true,
		DarkMode:           true,
		MotivationalQuotes: true,
		RestDayReminder:    true,
		Units:              "metric",
		ReminderTime:       "07:00",
		WeeklyGoal:         3,
	}
}

// DefaultHealthProfile seeds the health screen the first time it is opened.
func DefaultHealthProfile() HealthProfile {
	return HealthProfile{
		WeightKG: 73,
		HeightCM: 175,
		BodyFat:  18,
		MuscleKG: 65,
		Energy:   7,
		Sleep:    7,
		Stress:   4,
	}
}

// DefaultHealthGoals seeds the goals tab.
func DefaultHealthGoals() HealthGoals {
	return HealthGoals{
		TargetWeightKG:  70,
		TargetBodyFat:   12,
		TargetMuscleKG:  70,
		TimeFrameMonths: 3,
	}
}

// Chat message roles.
const (
	ChatRoleUser = "user"
	ChatRoleAI   = "ai"
)

// ChatMessage is one entry of the (stubbed) AI chat transcript.
type ChatMessage struct {
	ID   int64
	Role string
	Text string
	HTML template.HTML
}

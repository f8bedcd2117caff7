// Package store keeps all per-user view state in process memory. Custom
// workouts, calendar marks, health metrics, settings and the chat
// transcript are volatile by design: a restart loses them, only the
// session cookie survives.
package store

import (
	"sync"
	"time"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/models"
)

// DayKey identifies one calendar day. A structured key avoids the
// string-concatenation parsing the old client did.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// WorkoutDraft is the builder's work in progress for one user.
type WorkoutDraft struct {
	Name     string
	Category string
	Entries  []models.ExerciseEntry
}

type healthState struct {
	profile models.HealthProfile
	goals   models.HealthGoals
}

type chatState struct {
	sessionID string
	messages  []models.ChatMessage
}

type MemoryStore struct {
	mu       sync.RWMutex
	workouts map[int64][]models.Workout
	drafts   map[int64]WorkoutDraft
	marks    map[int64]map[DayKey]bool
	health   map[int64]*healthState
	settings map[int64]models.Settings
	chats    map[int64]*chatState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		workouts: make(map[int64][]models.Workout),
		drafts:   make(map[int64]WorkoutDraft),
		marks:    make(map[int64]map[DayKey]bool),
		health:   make(map[int64]*healthState),
		settings: make(map[int64]models.Settings),
		chats:    make(map[int64]*chatState),
	}
}

// CustomWorkouts returns the user-created workouts in insertion order.
func (s *MemoryStore) CustomWorkouts(userID int64) []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Workout, len(s.workouts[userID]))
	copy(out, s.workouts[userID])
	return out
}

// AddWorkout appends a saved workout to the user's list.
func (s *MemoryStore) AddWorkout(userID int64, w models.Workout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[userID] = append(s.workouts[userID], w)
}

// Draft returns a copy of the user's builder draft.
func (s *MemoryStore) Draft(userID int64) WorkoutDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.drafts[userID]
	entries := make([]models.ExerciseEntry, len(d.Entries))
	copy(entries, d.Entries)
	d.Entries = entries
	return d
}

// SetDraft replaces the user's builder draft.
func (s *MemoryStore) SetDraft(userID int64, d WorkoutDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
}

// ClearDraft drops the builder draft after a save or discard.
func (s *MemoryStore) ClearDraft(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}

// ToggleDay flips the completed flag for one calendar day and returns
// the new value. Absent keys read as false.
func (s *MemoryStore) ToggleDay(userID int64, key DayKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := s.marks[userID]
	if days == nil {
		days = make(map[DayKey]bool)
		s.marks[userID] = days
	}
	days[key] = !days[key]
	return days[key]
}

// MarkedDays returns a copy of the user's calendar marks.
func (s *MemoryStore) MarkedDays(userID int64) map[DayKey]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[DayKey]bool, len(s.marks[userID]))
	for k, v := range s.marks[userID] {
		out[k] = v
	}
	return out
}

// Health returns the user's current profile and goals, seeding defaults
// on first access.
func (s *MemoryStore) Health(userID int64) (models.HealthProfile, models.HealthGoals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.ensureHealth(userID)
	return h.profile, h.goals
}

func (s *MemoryStore) SetHealthProfile(userID int64, p models.HealthProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureHealth(userID).profile = p
}

func (s *MemoryStore) SetHealthGoals(userID int64, g models.HealthGoals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureHealth(userID).goals = g
}

func (s *MemoryStore) ensureHealth(userID int64) *healthState {
	h, ok := s.health[userID]
	if !ok {
		h = &healthState{
			profile: models.DefaultHealthProfile(),
			goals:   models.DefaultHealthGoals(),
		}
		s.health[userID] = h
	}
	return h
}

// Settings returns the user's preferences, seeding defaults on first access.
func (s *MemoryStore) Settings(userID int64) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settings[userID]; !ok {
		s.settings[userID] = models.DefaultSettings()
	}
	return s.settings[userID]
}

func (s *MemoryStore) SetSettings(userID int64, cfg models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[userID] = cfg
}

// ResetSettings restores the hardcoded defaults.
func (s *MemoryStore) ResetSettings(userID int64) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[userID] = models.DefaultSettings()
	return s.settings[userID]
}

// ChatSessionID returns the user's chat session id, creating one with
// newID on first use.
func (s *MemoryStore) ChatSessionID(userID int64, newID func() string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensureChat(userID)
	if c.sessionID == "" {
		c.sessionID = newID()
	}
	return c.sessionID
}

// ChatHistory returns the transcript in order.
func (s *MemoryStore) ChatHistory(userID int64) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.chats[userID]
	if !ok {
		return nil
	}
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// AppendChat adds a message to the transcript.
func (s *MemoryStore) AppendChat(userID int64, msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.ensureChat(userID)
	c.messages = append(c.messages, msg)
}

func (s *MemoryStore) ensureChat(userID int64) *chatState {
	c, ok := s.chats[userID]
	if !ok {
		c = &chatState{}
		s.chats[userID] = c
	}
	return c
}

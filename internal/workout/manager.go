package workout

import (
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
)

// Manager holds the active session per user. Sessions live in memory
// only; a restart discards them (the diary is the persistent part of
// the app, workouts are ephemeral by design of the domain).
//
// All session mutations go through the manager mutex, so the Session
// state machine itself stays lock free.
type Manager struct {
	mutex    sync.Mutex
	sessions map[string]*Session

	config      Config
	now         func() time.Time
	onRestTimer RestTimerFunc
}

type NewManagerParams struct {
	Config Config
	// Now is the clock; nil means time.Now
	Now func() time.Time
	// OnRestTimer receives rest timer triggers from all sessions
	OnRestTimer RestTimerFunc
}

func NewManager(params NewManagerParams) *Manager {
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		config:      params.Config,
		now:         params.Now,
		onRestTimer: params.OnRestTimer,
	}
}

// session returns the user's session, creating an empty one when
// needed. Callers must hold the mutex.
func (m *Manager) session(userID string) *Session {
	if session, ok := m.sessions[userID]; ok {
		return session
	}
	session := NewSession(NewSessionParams{
		UserID:      userID,
		Config:      m.config,
		Now:         m.now,
		OnRestTimer: m.onRestTimer,
	})
	m.sessions[userID] = session
	return session
}

func (m *Manager) AddExercise(userID string, exercise catalog.Exercise) *ActiveExercise {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.session(userID).AddExercise(exercise)
}

func (m *Manager) AddSet(userID string, exerciseIndex int) (*Set, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session.AddSet(exerciseIndex)
}

func (m *Manager) ToggleSet(userID string, exerciseIndex, setIndex int) (*RestTimerTrigger, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session.ToggleSet(exerciseIndex, setIndex)
}

func (m *Manager) UpdateSet(userID string, exerciseIndex, setIndex, reps int, weightKilos float64) (*Set, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session.UpdateSet(exerciseIndex, setIndex, reps, weightKilos)
}

// Progress returns the derived numbers for the user's session. A user
// without a session gets the zero progress (idle state), not an error.
func (m *Manager) Progress(userID string) Progress {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		return Progress{}
	}
	return session.Progress()
}

// Discard drops the user's session, if any, and reports whether one
// existed.
func (m *Manager) Discard(userID string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.sessions[userID]; !ok {
		return false
	}
	delete(m.sessions, userID)
	return true
}

// ActiveCount reports the number of sessions currently held, for the
// active workouts gauge.
func (m *Manager) ActiveCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sessions)
}

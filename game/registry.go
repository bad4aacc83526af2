package game

import (
	"math/rand"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"president.com/server/util"
)

var registryLogger = log.With().Str("logger_name", "game::registry").Logger()

var codeLetters = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

const sessionCodeLength = 5

// Manager owns every live session on this server. Sessions are held in
// a concurrent map keyed by session ID; the human-friendly join codes
// resolve through an LRU cache so stale codes age out on their own.
type Manager struct {
	activeSessions cmap.ConcurrentMap
	codeToID       *lru.Cache
	tracker        SessionTracker
	codeRand       *rand.Rand
}

func NewSessionManager(tracker SessionTracker) (*Manager, error) {
	codeToID, err := lru.New(100000)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize session code cache")
	}
	return &Manager{
		activeSessions: cmap.New(),
		codeToID:       codeToID,
		tracker:        tracker,
		codeRand:       rand.New(rand.NewSource(util.NewSeed())),
	}, nil
}

// ReceiverFactory builds the outbound adapter for a session once its
// ID and join code are known.
type ReceiverFactory func(sessionID string, code string) (MessageReceiver, error)

// CreateSession mints a session with a fresh ID and an unclaimed join
// code and registers it.
func (m *Manager) CreateSession(o Options, makeReceiver ReceiverFactory) (*Session, error) {
	sessionID := uuid.New().String()
	code := m.randomCode(sessionCodeLength)
	for attempts := 0; m.codeInUse(code); attempts++ {
		if attempts > 25 {
			return nil, errors.New("Unable to find a free session code")
		}
		code = m.randomCode(sessionCodeLength)
	}

	var receiver MessageReceiver
	if makeReceiver != nil {
		var err error
		receiver, err = makeReceiver(sessionID, code)
		if err != nil {
			return nil, err
		}
	}
	session, err := NewSession(sessionID, code, o, receiver, m.tracker, nil)
	if err != nil {
		return nil, err
	}
	m.activeSessions.Set(sessionID, session)
	m.codeToID.Add(code, sessionID)
	util.Metrics.SessionCreated()
	util.Metrics.SetActiveSessions(m.activeSessions.Count())

	registryLogger.Info().
		Str("sessionID", sessionID).
		Str("sessionCode", code).
		Msg("Session created")
	return session, nil
}

// SessionByCode resolves a join code to its live session.
func (m *Manager) SessionByCode(code string) (*Session, error) {
	v, ok := m.codeToID.Get(code)
	if !ok {
		return nil, newValidationError(ErrCodeNoSuchSession, "no session with code %s", code)
	}
	return m.SessionByID(v.(string))
}

func (m *Manager) SessionByID(sessionID string) (*Session, error) {
	v, ok := m.activeSessions.Get(sessionID)
	if !ok {
		return nil, newValidationError(ErrCodeNoSuchSession, "no session with id %s", sessionID)
	}
	return v.(*Session), nil
}

// RemoveSession drops a session from the registry and its persisted
// record.
func (m *Manager) RemoveSession(session *Session) {
	m.activeSessions.Remove(session.ID())
	m.codeToID.Remove(session.Code())
	if m.tracker != nil {
		_ = m.tracker.Remove(session.Code())
	}
	util.Metrics.SetActiveSessions(m.activeSessions.Count())
	registryLogger.Info().
		Str("sessionID", session.ID()).
		Str("sessionCode", session.Code()).
		Msg("Session removed")
}

func (m *Manager) SessionCount() int {
	return m.activeSessions.Count()
}

func (m *Manager) codeInUse(code string) bool {
	_, ok := m.codeToID.Get(code)
	return ok
}

func (m *Manager) randomCode(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = codeLetters[m.codeRand.Intn(len(codeLetters))]
	}
	return string(b)
}

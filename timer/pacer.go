package timer

import (
	"sync"
	"time"

	"president.com/server/logging"
)

var pacerLogger = logging.GetZeroLogger("timer::pacer", nil)

// Drivable is the slice of a session the pacer needs: advance pending
// automation one step.
type Drivable interface {
	Code() string
	Drive()
	Halted() bool
}

// Pacer spaces out automated rounds so spectators can follow bot-only
// tables. The engine stays correct with zero delay; this is purely a
// presentation concern.
type Pacer struct {
	interval time.Duration

	mu       sync.Mutex
	sessions map[string]Drivable
	end      bool
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		interval: interval,
		sessions: make(map[string]Drivable),
	}
}

// Start runs the pacing loop in its own goroutine.
func (p *Pacer) Start() {
	p.mu.Lock()
	p.end = false
	p.mu.Unlock()
	go p.runMainLoop()
}

func (p *Pacer) Stop() {
	p.mu.Lock()
	p.end = true
	p.mu.Unlock()
}

// Track registers a session for periodic driving. Halted sessions drop
// out on the next tick.
func (p *Pacer) Track(session Drivable) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions[session.Code()] = session
	pacerLogger.Info().Msgf("Pacing session [%s]", session.Code())
}

func (p *Pacer) Untrack(code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, code)
}

func (p *Pacer) runMainLoop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		if p.end {
			p.mu.Unlock()
			return
		}
		due := make([]Drivable, 0, len(p.sessions))
		for code, session := range p.sessions {
			if session.Halted() {
				delete(p.sessions, code)
				continue
			}
			due = append(due, session)
		}
		p.mu.Unlock()

		// Drive outside the pacer lock; each session serializes itself.
		for _, session := range due {
			session.Drive()
		}
	}
}

package game

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/level"
	"github.com/tomz197/herojump/internal/timer"
)

// Options configures a Session.
type Options struct {
	Logger *log.Logger // Lifecycle events at debug level; discarded when nil
}

// Session orchestrates one hero's run: setup, running, grace after a hit,
// ended, and back to setup. All methods must be called from the goroutine
// that drives the scheduler.
type Session struct {
	tuning    config.Tuning
	sched     Scheduler
	view      Presenter
	bounds    BoundsSource
	obstacles *ObstacleController
	log       *log.Logger

	state    *State
	phase    Phase
	tick     *timer.Timer // Periodic collision check, owned by the running session
	grace    *timer.Timer // End of the invincibility window
	controls bool         // Jump requests are accepted
}

// NewSession creates a session waiting in the setup phase.
func NewSession(t config.Tuning, sched Scheduler, view Presenter, bounds BoundsSource, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		tuning:    t,
		sched:     sched,
		view:      view,
		bounds:    bounds,
		obstacles: NewObstacleController(t, sched, view),
		log:       logger,
		state:     Reset("", t),
		phase:     PhaseSetup,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// State returns a copy of the session state.
func (s *Session) State() State {
	return *s.state
}

// Obstacles exposes the obstacle controller.
func (s *Session) Obstacles() *ObstacleController {
	return s.obstacles
}

// TickActive reports whether the periodic check is scheduled.
func (s *Session) TickActive() bool {
	return s.tick.Active()
}

// Snapshot builds the render view of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:        s.phase,
		HeroName:     s.state.HeroName,
		Experience:   s.state.Experience,
		Rank:         level.RankOf(s.state.Experience),
		Lives:        s.state.Lives,
		MaxLives:     s.state.MaxLives(),
		LastLife:     s.state.LastLife(),
		Jumping:      s.state.Jumping,
		Invincible:   s.state.Invincible,
		CycleSeconds: s.state.ObstacleCycle,
	}
}

// Start begins a run for name. Surrounding whitespace is ignored; a blank name
// is rejected without touching any state.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyHeroName
	}
	if s.phase != PhaseSetup {
		return ErrSessionActive
	}

	// A previous run's timers must be gone before the new tick exists.
	s.stopTimers()

	s.state = Reset(name, s.tuning)
	s.state.Running = true
	s.phase = PhaseRunning
	s.controls = true

	s.render()
	s.heroVisual()
	s.tick = s.sched.Every(s.tuning.TickInterval(), s.onTick)
	s.obstacles.Arm(s.state)

	s.log.Debug("session started", "hero", name, "lives", s.state.Lives, "tick", s.tuning.TickInterval())
	return nil
}

// Restart abandons the current run, ended or not, and returns to setup.
// The state becomes a fresh reset for the same hero name.
func (s *Session) Restart() {
	if s.phase == PhaseSetup {
		return
	}
	s.state.Running = false
	s.stopTimers()
	s.controls = false
	s.obstacles.Halt()

	s.log.Debug("session restarted", "hero", s.state.HeroName, "from", s.phase)
	s.state = Reset(s.state.HeroName, s.tuning)
	s.phase = PhaseSetup
	s.heroVisual()
	s.render()
}

// Jump starts a jump unless one is in flight or the run is not accepting input.
func (s *Session) Jump() {
	if !s.controls || !s.state.Running || s.state.Jumping {
		return
	}
	s.state.SetJumping(true)
	s.heroVisual()
}

// JumpCompleted ends the jump arc.
func (s *Session) JumpCompleted() {
	if !s.state.Jumping {
		return
	}
	s.state.SetJumping(false)
	s.heroVisual()
}

// ObstacleCycleCompleted handles the host reporting the end of a traversal.
func (s *Session) ObstacleCycleCompleted() {
	if !s.state.Running {
		return
	}
	s.obstacles.OnCycleComplete(s.state)
}

func (s *Session) onTick() {
	if !s.state.Running || !s.obstacles.Armed() {
		return
	}

	switch Evaluate(s.bounds.CurrentBounds(), s.state, s.tuning.Hitbox) {
	case OutcomeScored:
		s.scored()
	case OutcomeCollided:
		s.collided()
	}
}

func (s *Session) scored() {
	if !s.state.MarkObstaclePassed() {
		return
	}
	if err := s.state.AddExperience(s.tuning.XPPerObstacle); err != nil {
		s.log.Error("award experience", "err", err)
	}
	s.obstacles.OnScored(s.state)
	s.render()
}

func (s *Session) collided() {
	lives := s.state.LoseLife()
	s.log.Debug("hero hit", "hero", s.state.HeroName, "lives", lives)

	if lives <= 0 {
		s.end()
		return
	}

	s.state.SetInvincible(true)
	s.phase = PhaseGrace
	s.heroVisual()
	// Scheduled before the obstacle respawn so invincibility is over when it re-arms.
	s.grace = s.sched.AfterFunc(s.tuning.InvincibilityWindow(), s.endGrace)
	s.obstacles.OnCollision(s.state)
	s.render()
}

func (s *Session) endGrace() {
	s.grace = nil
	if !s.state.Running {
		return
	}
	s.state.SetInvincible(false)
	s.phase = PhaseRunning
	s.heroVisual()
	s.render()
}

func (s *Session) end() {
	s.state.Running = false
	s.stopTimers()
	s.controls = false
	s.obstacles.Halt()
	s.phase = PhaseEnded

	result := Result{
		HeroName:   s.state.HeroName,
		Rank:       level.RankOf(s.state.Experience),
		Experience: s.state.Experience,
	}
	s.log.Debug("session ended", "hero", result.HeroName, "xp", result.Experience, "rank", result.Rank)
	s.render()
	s.view.SessionEnded(result)
}

func (s *Session) stopTimers() {
	s.tick.Stop()
	s.tick = nil
	s.grace.Stop()
	s.grace = nil
}

func (s *Session) render() {
	s.view.Render(s.Snapshot())
}

func (s *Session) heroVisual() {
	s.view.HeroVisual(HeroCommand{Jumping: s.state.Jumping, Hit: s.state.Invincible})
}

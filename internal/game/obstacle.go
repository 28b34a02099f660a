package game

import (
	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/timer"
)

// ObstacleController owns the obstacle's traversal timing and respawn cadence.
// At most one respawn is pending at any time.
type ObstacleController struct {
	tuning  config.Tuning
	sched   Scheduler
	view    Presenter
	armed   bool
	pending *timer.Timer
}

// NewObstacleController creates a controller with a hidden obstacle.
func NewObstacleController(t config.Tuning, sched Scheduler, view Presenter) *ObstacleController {
	return &ObstacleController{tuning: t, sched: sched, view: view}
}

// Armed reports whether an obstacle is currently traversing.
func (c *ObstacleController) Armed() bool {
	return c.armed
}

// respawnPending reports whether a re-arm is scheduled.
func (c *ObstacleController) respawnPending() bool {
	return c.pending.Active()
}

// Arm shows the obstacle and starts a traversal at the state's current speed.
// It is a no-op once the session has stopped running.
func (c *ObstacleController) Arm(s *State) {
	if !s.Running {
		return
	}
	c.cancelPending()
	s.ClearObstaclePassed()
	c.armed = true
	c.view.ObstacleVisual(ObstacleCommand{
		Visible:      true,
		CycleSeconds: s.ObstacleCycle,
		Restart:      true,
	})
}

// Respawn stops the current traversal and arms a new one after the re-arm delay.
func (c *ObstacleController) Respawn(s *State) {
	c.cancelPending()
	s.ClearObstaclePassed()
	c.armed = false
	c.view.ObstacleVisual(ObstacleCommand{CycleSeconds: s.ObstacleCycle})
	if !s.Running {
		return
	}
	c.pending = c.sched.AfterFunc(c.tuning.RearmDelay(), func() {
		c.pending = nil
		c.Arm(s)
	})
}

// OnCycleComplete handles the end of a traversal reported by the host.
// Completions for an obstacle that is no longer armed are stale and ignored.
func (c *ObstacleController) OnCycleComplete(s *State) {
	if !c.armed || !s.Running {
		return
	}
	c.Respawn(s)
}

// OnScored speeds up the next traversal. The running one keeps its pace.
func (c *ObstacleController) OnScored(s *State) {
	s.SpeedUp(c.tuning.SpeedUpDivisor, c.tuning.MinCycleSeconds)
}

// OnCollision hides the obstacle at once and respawns it, at unchanged speed,
// when the invincibility window closes.
func (c *ObstacleController) OnCollision(s *State) {
	c.cancelPending()
	c.armed = false
	c.view.ObstacleVisual(ObstacleCommand{CycleSeconds: s.ObstacleCycle})
	c.pending = c.sched.AfterFunc(c.tuning.InvincibilityWindow(), func() {
		c.pending = nil
		c.Respawn(s)
	})
}

// Halt cancels any pending respawn and hides the obstacle.
func (c *ObstacleController) Halt() {
	c.cancelPending()
	c.armed = false
	c.view.ObstacleVisual(ObstacleCommand{})
}

func (c *ObstacleController) cancelPending() {
	c.pending.Stop()
	c.pending = nil
}

package game

import (
	"time"

	"github.com/tomz197/herojump/internal/physics"
	"github.com/tomz197/herojump/internal/timer"
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseSetup   Phase = iota // Waiting for a hero name
	PhaseRunning              // Obstacles cycling, hits count
	PhaseGrace                // Invincible after a non-fatal hit
	PhaseEnded                // Out of lives, showing the result
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhaseGrace:
		return "grace"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Bounds is the geometry of one tick, in the host's logical units.
type Bounds struct {
	Hero     physics.Rect
	Obstacle physics.Rect
}

// BoundsSource reports where the hero and obstacle currently are.
type BoundsSource interface {
	CurrentBounds() Bounds
}

// Snapshot is what the host needs to draw the HUD and pick a screen.
type Snapshot struct {
	Phase        Phase
	HeroName     string
	Experience   int
	Rank         string
	Lives        int
	MaxLives     int
	LastLife     bool
	Jumping      bool
	Invincible   bool
	CycleSeconds float64
}

// ObstacleCommand tells the host how to show the obstacle.
// Restart asks for the traversal to begin again from the start position.
type ObstacleCommand struct {
	Visible      bool
	CycleSeconds float64
	Restart      bool
}

// HeroCommand tells the host which hero animations to show.
type HeroCommand struct {
	Jumping bool
	Hit     bool
}

// Result is the final report of a finished session.
type Result struct {
	HeroName   string
	Rank       string
	Experience int
}

// Presenter receives every visible effect of the core.
type Presenter interface {
	Render(Snapshot)
	ObstacleVisual(ObstacleCommand)
	HeroVisual(HeroCommand)
	SessionEnded(Result)
}

// Scheduler runs callbacks later on the caller's goroutine.
// *timer.Scheduler satisfies it.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) *timer.Timer
	Every(d time.Duration, fn func()) *timer.Timer
}

var _ Scheduler = (*timer.Scheduler)(nil)

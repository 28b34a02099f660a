package game

import (
	"time"

	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/physics"
	"github.com/tomz197/herojump/internal/timer"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// recordingView captures every presenter call.
type recordingView struct {
	renders   []Snapshot
	obstacles []ObstacleCommand
	heroes    []HeroCommand
	results   []Result
}

func (v *recordingView) Render(s Snapshot)               { v.renders = append(v.renders, s) }
func (v *recordingView) ObstacleVisual(c ObstacleCommand) { v.obstacles = append(v.obstacles, c) }
func (v *recordingView) HeroVisual(c HeroCommand)         { v.heroes = append(v.heroes, c) }
func (v *recordingView) SessionEnded(r Result)            { v.results = append(v.results, r) }

func (v *recordingView) lastRender() Snapshot {
	return v.renders[len(v.renders)-1]
}

func (v *recordingView) lastObstacle() ObstacleCommand {
	return v.obstacles[len(v.obstacles)-1]
}

func (v *recordingView) lastHero() HeroCommand {
	return v.heroes[len(v.heroes)-1]
}

// fixedBounds returns whatever geometry the test put in it.
type fixedBounds struct {
	b Bounds
}

func (f *fixedBounds) CurrentBounds() Bounds { return f.b }

// Geometry on a 120-wide field: the hero stands at x 20..28, the obstacle is 8x10.
var (
	heroStanding = physics.NewRect(20, 60, 8, 20)
	obstacleFar  = physics.NewRect(100, 70, 8, 10)
	obstacleHit  = physics.NewRect(22, 70, 8, 10)
	obstaclePast = physics.NewRect(5, 70, 8, 10)
)

func farBounds() Bounds  { return Bounds{Hero: heroStanding, Obstacle: obstacleFar} }
func hitBounds() Bounds  { return Bounds{Hero: heroStanding, Obstacle: obstacleHit} }
func pastBounds() Bounds { return Bounds{Hero: heroStanding, Obstacle: obstaclePast} }

// testTuning uses a tolerance that suits the small test geometry.
func testTuning() config.Tuning {
	t := config.Default()
	t.Hitbox.Tolerance = 1
	return t
}

type harness struct {
	tuning  config.Tuning
	clock   time.Time
	sched   *timer.Scheduler
	view    *recordingView
	bounds  *fixedBounds
	session *Session
}

func newHarness(t config.Tuning) *harness {
	h := &harness{
		tuning: t,
		clock:  epoch,
		sched:  timer.New(epoch),
		view:   &recordingView{},
		bounds: &fixedBounds{b: farBounds()},
	}
	h.session = NewSession(t, h.sched, h.view, h.bounds, Options{})
	return h
}

// advance moves the clock forward in tick-sized steps so periodic timers fire
// as they would in a real loop.
func (h *harness) advance(d time.Duration) {
	step := h.tuning.TickInterval()
	end := h.clock.Add(d)
	for h.clock.Before(end) {
		h.clock = h.clock.Add(step)
		if h.clock.After(end) {
			h.clock = end
		}
		h.sched.RunDue(h.clock)
	}
}

// tick runs exactly one periodic check.
func (h *harness) tick() {
	h.advance(h.tuning.TickInterval())
}

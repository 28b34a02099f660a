package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/herojump/internal/timer"
)

func newObstacleFixture() (*ObstacleController, *State, *timer.Scheduler, *recordingView) {
	tuning := testTuning()
	sched := timer.New(epoch)
	view := &recordingView{}
	s := Reset("Ash", tuning)
	s.Running = true
	return NewObstacleController(tuning, sched, view), s, sched, view
}

func TestArmShowsAndRestartsTraversal(t *testing.T) {
	c, s, _, view := newObstacleFixture()
	s.ObstaclePassed = true

	c.Arm(s)
	assert.True(t, c.Armed())
	assert.False(t, s.ObstaclePassed)
	assert.Equal(t, ObstacleCommand{Visible: true, CycleSeconds: 2.5, Restart: true}, view.lastObstacle())
}

func TestArmIsNoopWhenNotRunning(t *testing.T) {
	c, s, _, view := newObstacleFixture()
	s.Running = false

	c.Arm(s)
	assert.False(t, c.Armed())
	assert.Empty(t, view.obstacles)
}

func TestCycleCompleteRearmsAfterDelay(t *testing.T) {
	c, s, sched, view := newObstacleFixture()
	c.Arm(s)
	s.ObstaclePassed = true

	c.OnCycleComplete(s)
	assert.False(t, c.Armed())
	assert.False(t, s.ObstaclePassed)
	assert.False(t, view.lastObstacle().Visible)
	assert.True(t, c.respawnPending())

	sched.RunDue(epoch.Add(9 * time.Millisecond))
	assert.False(t, c.Armed())

	sched.RunDue(epoch.Add(10 * time.Millisecond))
	assert.True(t, c.Armed())
	assert.Equal(t, ObstacleCommand{Visible: true, CycleSeconds: 2.5, Restart: true}, view.lastObstacle())
}

func TestStaleCycleCompleteIgnored(t *testing.T) {
	c, s, _, view := newObstacleFixture()
	c.OnCycleComplete(s)
	assert.Empty(t, view.obstacles)
	assert.False(t, c.respawnPending())
}

func TestRearmSkippedWhenSessionStops(t *testing.T) {
	c, s, sched, _ := newObstacleFixture()
	c.Arm(s)
	c.OnCycleComplete(s)

	s.Running = false
	sched.RunDue(epoch.Add(time.Second))
	assert.False(t, c.Armed())
}

func TestOnScoredSpeedsUpNextCycleOnly(t *testing.T) {
	c, s, sched, view := newObstacleFixture()
	c.Arm(s)
	c.OnScored(s)

	assert.InDelta(t, 2.5/1.01, s.ObstacleCycle, 1e-12)
	// The running traversal keeps the speed it was armed with.
	assert.Equal(t, 2.5, view.lastObstacle().CycleSeconds)

	c.OnCycleComplete(s)
	sched.RunDue(epoch.Add(10 * time.Millisecond))
	assert.InDelta(t, 2.5/1.01, view.lastObstacle().CycleSeconds, 1e-12)
}

func TestOnCollisionHidesThenRespawnsAtSameSpeed(t *testing.T) {
	c, s, sched, view := newObstacleFixture()
	c.Arm(s)
	c.OnScored(s)
	cycle := s.ObstacleCycle

	c.OnCollision(s)
	assert.False(t, c.Armed())
	assert.False(t, view.lastObstacle().Visible)

	sched.RunDue(epoch.Add(1499 * time.Millisecond))
	assert.False(t, c.Armed())

	sched.RunDue(epoch.Add(1500 * time.Millisecond))
	assert.False(t, c.Armed(), "respawn waits for the re-arm delay")

	sched.RunDue(epoch.Add(1510 * time.Millisecond))
	require.True(t, c.Armed())
	assert.Equal(t, cycle, view.lastObstacle().CycleSeconds)
	assert.Equal(t, cycle, s.ObstacleCycle)
}

func TestHaltCancelsPendingRespawn(t *testing.T) {
	c, s, sched, _ := newObstacleFixture()
	c.Arm(s)
	c.OnCollision(s)

	c.Halt()
	assert.False(t, c.respawnPending())
	assert.Equal(t, 0, sched.Pending())

	sched.RunDue(epoch.Add(5 * time.Second))
	assert.False(t, c.Armed())
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/physics"
)

func TestEffectiveHitbox(t *testing.T) {
	obstacle := physics.NewRect(100, 60, 40, 20)

	fixed := EffectiveHitbox(obstacle, config.Hitbox{Mode: config.MarginFixedTolerance, Tolerance: 10})
	assert.Equal(t, physics.Rect{Left: 110, Top: 70, Right: 130, Bottom: 80}, fixed)

	inset := EffectiveHitbox(obstacle, config.Hitbox{Mode: config.MarginFractionalInset, InsetX: 0.25, InsetTop: 0.05})
	assert.InDelta(t, 110.0, inset.Left, 1e-9)
	assert.InDelta(t, 130.0, inset.Right, 1e-9)
	assert.InDelta(t, 61.0, inset.Top, 1e-9)
	assert.Equal(t, 80.0, inset.Bottom)
}

func TestEvaluate(t *testing.T) {
	hitbox := testTuning().Hitbox

	tests := []struct {
		name   string
		bounds Bounds
		setup  func(*State)
		want   Outcome
	}{
		{name: "obstacle ahead", bounds: farBounds(), want: OutcomeNone},
		{name: "overlap collides", bounds: hitBounds(), want: OutcomeCollided},
		{name: "passed scores", bounds: pastBounds(), want: OutcomeScored},
		{
			name:   "already scored",
			bounds: pastBounds(),
			setup:  func(s *State) { s.ObstaclePassed = true },
			want:   OutcomeNone,
		},
		{
			name:   "invincible ignores overlap",
			bounds: hitBounds(),
			setup:  func(s *State) { s.Invincible = true },
			want:   OutcomeNone,
		},
		{
			name: "jumping clears the obstacle",
			bounds: Bounds{
				Hero:     physics.NewRect(20, 30, 8, 20),
				Obstacle: obstacleHit,
			},
			want: OutcomeNone,
		},
		{
			name: "edge just inside tolerance is a miss",
			bounds: Bounds{
				Hero:     heroStanding,
				Obstacle: physics.NewRect(27, 70, 8, 10),
			},
			want: OutcomeNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reset("Ash", testTuning())
			if tt.setup != nil {
				tt.setup(s)
			}
			assert.Equal(t, tt.want, Evaluate(tt.bounds, s, hitbox))
		})
	}
}

func TestEvaluateCollisionBeatsScoring(t *testing.T) {
	// A hero wide enough to overlap an obstacle whose right edge is also left of
	// the hero's left edge cannot exist, so force it with a hitbox that grows
	// the obstacle instead.
	s := Reset("Ash", testTuning())
	hitbox := config.Hitbox{Mode: config.MarginFixedTolerance, Tolerance: -10}
	b := Bounds{Hero: heroStanding, Obstacle: physics.NewRect(8, 70, 8, 10)}

	assert.True(t, physics.LeftOf(b.Obstacle, b.Hero))
	assert.Equal(t, OutcomeCollided, Evaluate(b, s, hitbox))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "scored", OutcomeScored.String())
	assert.Equal(t, "collided", OutcomeCollided.String())
}

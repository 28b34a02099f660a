package game

import (
	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/physics"
)

// Outcome is the result of one collision and scoring check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeScored
	OutcomeCollided
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeScored:
		return "scored"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// EffectiveHitbox shrinks the drawn obstacle to the region that actually hurts.
func EffectiveHitbox(obstacle physics.Rect, h config.Hitbox) physics.Rect {
	switch h.Mode {
	case config.MarginFractionalInset:
		return obstacle.InsetFraction(h.InsetX, h.InsetTop)
	case config.MarginFixedTolerance:
		return obstacle.Shrink(h.Tolerance, h.Tolerance)
	default:
		return obstacle
	}
}

// Evaluate classifies the current geometry. Collision wins over scoring when
// both hold, and nothing is detected while the hero is invincible.
func Evaluate(b Bounds, s *State, h config.Hitbox) Outcome {
	if s.Invincible {
		return OutcomeNone
	}

	if physics.OverlapsFromAbove(b.Hero, EffectiveHitbox(b.Obstacle, h)) {
		return OutcomeCollided
	}

	// Scoring looks at the drawn right edge, not the inset one.
	if physics.LeftOf(b.Obstacle, b.Hero) && !s.ObstaclePassed {
		return OutcomeScored
	}
	return OutcomeNone
}

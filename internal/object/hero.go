package object

import (
	"time"

	"github.com/tomz197/herojump/internal/physics"
)

// BlinkFrequency is how often the hero toggles while hit, in Hz.
const BlinkFrequency = 10.0

// Hero is the runner. It stands on the ground and jumps in a parabolic arc.
type Hero struct {
	X            float64 // Left edge
	GroundY      float64 // Feet rest here
	Width        float64
	Height       float64
	JumpHeight   float64 // Peak lift of the arc
	JumpDuration time.Duration

	// OnLanded runs when a jump arc finishes on its own.
	OnLanded func()

	jumping bool
	elapsed time.Duration
	hit     bool
	hitTime float64 // Seconds since the hit started
	burst   bool    // Hit burst not spawned yet
}

// NewHero creates a hero standing at x on the ground line.
func NewHero(x, groundY float64, jump time.Duration) *Hero {
	return &Hero{
		X:            x,
		GroundY:      groundY,
		Width:        40,
		Height:       60,
		JumpHeight:   150,
		JumpDuration: jump,
	}
}

// Jump starts an arc. It returns false if one is already in flight.
func (h *Hero) Jump() bool {
	if h.jumping {
		return false
	}
	h.jumping = true
	h.elapsed = 0
	return true
}

// Land cancels any arc in flight and puts the hero back on the ground.
// OnLanded is not called.
func (h *Hero) Land() {
	h.jumping = false
	h.elapsed = 0
}

// Jumping reports whether an arc is in flight.
func (h *Hero) Jumping() bool {
	return h.jumping
}

// SetHit starts or stops the hit animation.
func (h *Hero) SetHit(hit bool) {
	if hit && !h.hit {
		h.hitTime = 0
		h.burst = true
	}
	h.hit = hit
}

// Hit reports whether the hit animation is playing.
func (h *Hero) Hit() bool {
	return h.hit
}

// Lift returns the current height above the ground.
func (h *Hero) Lift() float64 {
	if !h.jumping || h.JumpDuration <= 0 {
		return 0
	}
	t := float64(h.elapsed) / float64(h.JumpDuration)
	return 4 * h.JumpHeight * t * (1 - t)
}

// Bounds returns the hero's rectangle in logical units.
func (h *Hero) Bounds() physics.Rect {
	return physics.NewRect(h.X, h.GroundY-h.Height-h.Lift(), h.Width, h.Height)
}

// Update advances the arc and the hit blink.
func (h *Hero) Update(ctx UpdateContext) (bool, error) {
	if h.hit {
		h.hitTime += ctx.Delta.Seconds()
		if h.burst {
			h.burst = false
			b := h.Bounds()
			SpawnBurst(b.Left+b.Width()/2, b.Top+b.Height()/2, 16, 120, 0.5, ctx.Spawner)
		}
	}

	if !h.jumping {
		return false, nil
	}
	h.elapsed += ctx.Delta
	if h.elapsed < h.JumpDuration {
		return false, nil
	}

	h.Land()
	SpawnDust(h.X+h.Width/2, h.GroundY, ctx.Spawner)
	if h.OnLanded != nil {
		h.OnLanded()
	}
	return false, nil
}

// Draw renders a head over a body. While hit the hero blinks.
func (h *Hero) Draw(ctx DrawContext) error {
	if h.hit && !BlinkVisible(h.hitTime, BlinkFrequency) {
		return nil
	}
	b := h.Bounds()
	head := h.Height * 0.3
	ctx.Canvas.FillRect(b.Left+h.Width*0.25, b.Top, h.Width*0.5, head)
	ctx.Canvas.FillRect(b.Left, b.Top+head+h.Height*0.05, h.Width, h.Height*0.4)
	legs := b.Top + head + h.Height*0.45
	ctx.Canvas.FillRect(b.Left+h.Width*0.1, legs, h.Width*0.3, b.Bottom-legs)
	ctx.Canvas.FillRect(b.Left+h.Width*0.6, legs, h.Width*0.3, b.Bottom-legs)
	return nil
}

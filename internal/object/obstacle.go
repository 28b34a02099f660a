package object

import (
	"time"

	"github.com/tomz197/herojump/internal/physics"
)

// Obstacle slides along the ground from StartX to EndX over one cycle.
type Obstacle struct {
	StartX  float64 // Left edge when a traversal begins
	EndX    float64 // Left edge when it is fully past the left border
	GroundY float64
	Width   float64
	Height  float64

	// OnCycleDone runs when a traversal reaches EndX.
	OnCycleDone func()

	x       float64
	cycle   time.Duration
	elapsed time.Duration
	visible bool
	moving  bool
}

// NewObstacle creates a hidden obstacle that enters at the right edge of a
// field viewWidth wide and leaves fully past the left edge.
func NewObstacle(viewWidth, groundY, size float64) *Obstacle {
	return &Obstacle{
		StartX:  viewWidth,
		EndX:    -size,
		GroundY: groundY,
		Width:   size,
		Height:  size,
		x:       viewWidth,
	}
}

// Launch shows the obstacle at StartX and starts a traversal lasting cycleSeconds.
func (o *Obstacle) Launch(cycleSeconds float64) {
	o.cycle = time.Duration(cycleSeconds * float64(time.Second))
	o.elapsed = 0
	o.x = o.StartX
	o.visible = true
	o.moving = true
}

// Hide stops the traversal and takes the obstacle off the field.
func (o *Obstacle) Hide() {
	o.visible = false
	o.moving = false
	o.elapsed = 0
	o.x = o.StartX
}

// Visible reports whether the obstacle is shown.
func (o *Obstacle) Visible() bool {
	return o.visible
}

// Moving reports whether a traversal is in progress.
func (o *Obstacle) Moving() bool {
	return o.moving
}

// X returns the current left edge.
func (o *Obstacle) X() float64 {
	return o.x
}

// Bounds returns the drawn rectangle in logical units.
func (o *Obstacle) Bounds() physics.Rect {
	return physics.NewRect(o.x, o.GroundY-o.Height, o.Width, o.Height)
}

// Update moves the obstacle along its traversal.
func (o *Obstacle) Update(ctx UpdateContext) (bool, error) {
	if !o.moving {
		return false, nil
	}
	o.elapsed += ctx.Delta
	if o.cycle <= 0 || o.elapsed >= o.cycle {
		o.x = o.EndX
		o.moving = false
		if o.OnCycleDone != nil {
			o.OnCycleDone()
		}
		return false, nil
	}
	t := float64(o.elapsed) / float64(o.cycle)
	o.x = o.StartX + (o.EndX-o.StartX)*t
	return false, nil
}

// Draw renders a stepped block: a wide base with a narrower cap.
func (o *Obstacle) Draw(ctx DrawContext) error {
	if !o.visible {
		return nil
	}
	b := o.Bounds()
	capH := o.Height * 0.3
	ctx.Canvas.FillRect(b.Left+o.Width*0.2, b.Top, o.Width*0.6, capH)
	ctx.Canvas.FillRect(b.Left, b.Top+capH, o.Width, o.Height-capH)
	return nil
}

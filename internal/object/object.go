// Package object holds the animated sprites of the playfield. Sprites live in
// logical units and know nothing about game rules: the host tells them what to
// show and they report back when an animation completes.
package object

import (
	"time"

	"github.com/tomz197/herojump/internal/draw"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Canvas.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// BlinkVisible reports whether a blinking sprite is shown elapsed seconds into
// its blink, toggling frequency times per second and starting hidden.
func BlinkVisible(elapsed, frequency float64) bool {
	if elapsed < 0 {
		return true
	}
	phase := int(elapsed * frequency)
	return phase%2 != 0
}

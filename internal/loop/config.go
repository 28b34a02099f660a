package loop

import "time"

// Playfield in logical units. Actual rendering scales to fit terminal size;
// the height is in sub-pixels, so 400 maps to 40 terminal rows at 10 units per pixel.
const (
	ViewWidth    = 600
	ViewHeight   = 400
	GroundY      = 340 // Feet of the hero, base of the obstacle
	HeroX        = 90  // Left edge of the hero
	ObstacleSize = 40
)

// Largest render area; bigger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Setup
const (
	MaxNameLength = 16 // Runes accepted in the hero name field
)

// Inactivity defaults used by the SSH server.
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Package game implements the hero jump minigame core: session state, the
// obstacle cycle, per-tick collision and scoring, and the session lifecycle.
//
// The core never draws or reads input itself. A host supplies geometry through
// BoundsSource, receives effects through Presenter, and drives time through a
// Scheduler running on the host's goroutine.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/herojump/internal/config"
)

var (
	// ErrEmptyHeroName is returned by Start when the name is blank.
	ErrEmptyHeroName = errors.New("hero name is required")
	// ErrSessionActive is returned by Start when a session is already in progress.
	ErrSessionActive = errors.New("session already active")
	// ErrNegativeExperience is returned when an experience award is negative.
	ErrNegativeExperience = errors.New("experience delta must not be negative")
)

// State is the mutable record of one session.
type State struct {
	HeroName       string
	Experience     int
	Lives          int
	Jumping        bool    // Jump arc in flight
	Running        bool    // Between start and end of session
	Invincible     bool    // Post-collision grace window
	ObstaclePassed bool    // Active obstacle already scored
	ObstacleCycle  float64 // Obstacle traversal time in seconds

	maxLives int
}

// Reset returns a fresh state for heroName: full lives, no experience,
// every flag cleared and the initial obstacle speed.
func Reset(heroName string, t config.Tuning) *State {
	return &State{
		HeroName:      heroName,
		Lives:         t.InitialLives,
		ObstacleCycle: t.InitialCycleSeconds,
		maxLives:      t.InitialLives,
	}
}

// AddExperience awards delta experience points.
func (s *State) AddExperience(delta int) error {
	if delta < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeExperience, delta)
	}
	s.Experience += delta
	return nil
}

// LoseLife removes one life, never going below zero, and returns what is left.
func (s *State) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// SetJumping marks the jump arc as started or finished.
func (s *State) SetJumping(jumping bool) {
	s.Jumping = jumping
}

// SetInvincible opens or closes the grace window.
func (s *State) SetInvincible(invincible bool) {
	s.Invincible = invincible
}

// MarkObstaclePassed latches the scored flag for the active obstacle.
// It returns false if the obstacle had already been scored.
func (s *State) MarkObstaclePassed() bool {
	if s.ObstaclePassed {
		return false
	}
	s.ObstaclePassed = true
	return true
}

// ClearObstaclePassed resets the scored flag for a freshly spawned obstacle.
func (s *State) ClearObstaclePassed() {
	s.ObstaclePassed = false
}

// SpeedUp shortens the obstacle cycle by divisor. A positive floor clamps the result.
func (s *State) SpeedUp(divisor, floor float64) {
	if divisor <= 0 {
		return
	}
	s.ObstacleCycle /= divisor
	if floor > 0 {
		s.ObstacleCycle = math.Max(s.ObstacleCycle, floor)
	}
}

// LastLife reports whether the hero is down to a single life.
func (s *State) LastLife() bool {
	return s.Lives == 1
}

// MaxLives returns the life count the session started with.
func (s *State) MaxLives() int {
	return s.maxLives
}

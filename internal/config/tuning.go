package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// MarginMode selects how the obstacle hitbox is derived from its drawn bounds.
type MarginMode string

const (
	// MarginFixedTolerance shrinks the obstacle by a fixed number of units
	// on the left, right and top edges.
	MarginFixedTolerance MarginMode = "fixed-tolerance"
	// MarginFractionalInset shrinks the obstacle by fractions of its size.
	MarginFractionalInset MarginMode = "fractional-inset"
)

// Hitbox configures the obstacle's effective collision region.
type Hitbox struct {
	Mode      MarginMode `yaml:"mode"`
	Tolerance float64    `yaml:"tolerance"` // Units per edge (fixed-tolerance)
	InsetX    float64    `yaml:"inset_x"`   // Fraction of width per side (fractional-inset)
	InsetTop  float64    `yaml:"inset_top"` // Fraction of height from the top (fractional-inset)
}

// Tuning holds every gameplay constant. Durations are in milliseconds so the
// YAML file stays readable.
type Tuning struct {
	InitialLives        int     `yaml:"initial_lives"`
	XPPerObstacle       int     `yaml:"xp_per_obstacle"`
	TickMs              int     `yaml:"tick_ms"`
	InvincibilityMs     int     `yaml:"invincibility_ms"`
	RearmDelayMs        int     `yaml:"rearm_delay_ms"`
	JumpMs              int     `yaml:"jump_ms"`
	InitialCycleSeconds float64 `yaml:"initial_cycle_seconds"`
	SpeedUpDivisor      float64 `yaml:"speed_up_divisor"`
	MinCycleSeconds     float64 `yaml:"min_cycle_seconds"` // 0 disables the floor
	Hitbox              Hitbox  `yaml:"hitbox"`
}

// Default returns the desktop tuning.
func Default() Tuning {
	return Tuning{
		InitialLives:        3,
		XPPerObstacle:       100,
		TickMs:              16,
		InvincibilityMs:     1500,
		RearmDelayMs:        10,
		JumpMs:              300,
		InitialCycleSeconds: 2.5,
		SpeedUpDivisor:      1.01,
		MinCycleSeconds:     0,
		Hitbox: Hitbox{
			Mode:      MarginFixedTolerance,
			Tolerance: 10,
			InsetX:    0.25,
			InsetTop:  0.05,
		},
	}
}

// Variant names a preset of control and hitbox tuning.
type Variant string

const (
	VariantDesktop Variant = "desktop"
	VariantMobile  Variant = "mobile"
	VariantCompact Variant = "compact"
)

// ForVariant returns the preset tuning for a variant.
func ForVariant(v Variant) (Tuning, error) {
	t := Default()
	switch Variant(strings.ToLower(string(v))) {
	case VariantDesktop, "":
	case VariantMobile:
		t.Hitbox.Mode = MarginFractionalInset
	case VariantCompact:
		t.Hitbox.Mode = MarginFractionalInset
		t.TickMs = 10
	default:
		return Tuning{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidTuning, v)
	}
	return t, nil
}

// Validate checks that every value is usable.
func (t Tuning) Validate() error {
	switch {
	case t.InitialLives <= 0:
		return fmt.Errorf("%w: initial_lives must be positive, got %d", ErrInvalidTuning, t.InitialLives)
	case t.XPPerObstacle < 0:
		return fmt.Errorf("%w: xp_per_obstacle must not be negative, got %d", ErrInvalidTuning, t.XPPerObstacle)
	case t.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidTuning, t.TickMs)
	case t.InvincibilityMs < 0 || t.RearmDelayMs < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidTuning)
	case t.JumpMs <= 0:
		return fmt.Errorf("%w: jump_ms must be positive, got %d", ErrInvalidTuning, t.JumpMs)
	case t.InitialCycleSeconds <= 0:
		return fmt.Errorf("%w: initial_cycle_seconds must be positive, got %g", ErrInvalidTuning, t.InitialCycleSeconds)
	case t.SpeedUpDivisor < 1:
		return fmt.Errorf("%w: speed_up_divisor must be at least 1, got %g", ErrInvalidTuning, t.SpeedUpDivisor)
	case t.MinCycleSeconds < 0 || t.MinCycleSeconds > t.InitialCycleSeconds:
		return fmt.Errorf("%w: min_cycle_seconds must be within [0, initial_cycle_seconds]", ErrInvalidTuning)
	}

	switch t.Hitbox.Mode {
	case MarginFixedTolerance:
		if t.Hitbox.Tolerance < 0 {
			return fmt.Errorf("%w: hitbox tolerance must not be negative", ErrInvalidTuning)
		}
	case MarginFractionalInset:
		if t.Hitbox.InsetX < 0 || t.Hitbox.InsetX >= 0.5 || t.Hitbox.InsetTop < 0 || t.Hitbox.InsetTop >= 1 {
			return fmt.Errorf("%w: hitbox insets out of range", ErrInvalidTuning)
		}
	default:
		return fmt.Errorf("%w: unknown hitbox mode %q", ErrInvalidTuning, t.Hitbox.Mode)
	}
	return nil
}

// Parse overlays YAML data onto base. Keys missing from data keep base's values.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadFile reads a YAML tuning file and overlays it onto base.
func LoadFile(path string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	return Parse(data, base)
}

// FromEnv builds the tuning from HERO_VARIANT, HERO_CONFIG and HERO_TICK_MS.
func FromEnv() (Tuning, error) {
	t, err := ForVariant(Variant(GetEnv("HERO_VARIANT", string(VariantDesktop))))
	if err != nil {
		return Tuning{}, err
	}
	if path := GetEnv("HERO_CONFIG", ""); path != "" {
		if t, err = LoadFile(path, t); err != nil {
			return Tuning{}, err
		}
	}
	t.TickMs = GetEnvInt("HERO_TICK_MS", t.TickMs)
	return t, t.Validate()
}

// TickInterval is the period of the collision and scoring check.
func (t Tuning) TickInterval() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// InvincibilityWindow is the grace period after a non-fatal hit.
func (t Tuning) InvincibilityWindow() time.Duration {
	return time.Duration(t.InvincibilityMs) * time.Millisecond
}

// RearmDelay is the pause between an obstacle reset and its next traversal.
func (t Tuning) RearmDelay() time.Duration {
	return time.Duration(t.RearmDelayMs) * time.Millisecond
}

// JumpDuration is the length of the hero's jump arc.
func (t Tuning) JumpDuration() time.Duration {
	return time.Duration(t.JumpMs) * time.Millisecond
}

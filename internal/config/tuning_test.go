package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesReferenceConstants(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 3, d.InitialLives)
	assert.Equal(t, 100, d.XPPerObstacle)
	assert.Equal(t, 16, d.TickMs)
	assert.Equal(t, 1500, d.InvincibilityMs)
	assert.Equal(t, 2.5, d.InitialCycleSeconds)
	assert.Equal(t, 1.01, d.SpeedUpDivisor)
	assert.Equal(t, MarginFixedTolerance, d.Hitbox.Mode)
	assert.Equal(t, 10.0, d.Hitbox.Tolerance)
}

func TestForVariant(t *testing.T) {
	tests := []struct {
		variant Variant
		mode    MarginMode
		tickMs  int
		wantErr bool
	}{
		{VariantDesktop, MarginFixedTolerance, 16, false},
		{VariantMobile, MarginFractionalInset, 16, false},
		{VariantCompact, MarginFractionalInset, 10, false},
		{"MOBILE", MarginFractionalInset, 16, false},
		{"arcade", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			got, err := ForVariant(tt.variant)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTuning)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, got.Hitbox.Mode)
			assert.Equal(t, tt.tickMs, got.TickMs)
		})
	}
}

func TestParseOverlaysBase(t *testing.T) {
	data := []byte(`
tick_ms: 10
min_cycle_seconds: 0.8
hitbox:
  mode: fractional-inset
  inset_x: 0.2
`)
	got, err := Parse(data, Default())
	require.NoError(t, err)
	assert.Equal(t, 10, got.TickMs)
	assert.Equal(t, 0.8, got.MinCycleSeconds)
	assert.Equal(t, MarginFractionalInset, got.Hitbox.Mode)
	assert.Equal(t, 0.2, got.Hitbox.InsetX)
	// Untouched keys keep the base value.
	assert.Equal(t, 0.05, got.Hitbox.InsetTop)
	assert.Equal(t, 3, got.InitialLives)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero lives", "initial_lives: 0"},
		{"negative tick", "tick_ms: -1"},
		{"slowing divisor", "speed_up_divisor: 0.9"},
		{"floor above start", "min_cycle_seconds: 3"},
		{"unknown mode", "hitbox: {mode: circle}"},
		{"inset too wide", "hitbox: {mode: fractional-inset, inset_x: 0.5}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), Default())
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}

	_, err := Parse([]byte("tick_ms: [oops"), Default())
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("xp_per_obstacle: 250\n"), 0o600))

	got, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 250, got.XPPerObstacle)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HERO_VARIANT", "compact")
	t.Setenv("HERO_CONFIG", "")
	t.Setenv("HERO_TICK_MS", "12")

	got, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, MarginFractionalInset, got.Hitbox.Mode)
	assert.Equal(t, 12, got.TickMs)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HERO_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("HERO_TEST_INT", 1))
	t.Setenv("HERO_TEST_INT", "forty-two")
	assert.Equal(t, 1, GetEnvInt("HERO_TEST_INT", 1))
	assert.Equal(t, 7, GetEnvInt("HERO_TEST_UNSET_INT", 7))
}

package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectGeometry(t *testing.T) {
	r := NewRect(10, 20, 40, 30)
	assert.Equal(t, 50.0, r.Right)
	assert.Equal(t, 50.0, r.Bottom)
	assert.Equal(t, 40.0, r.Width())
	assert.Equal(t, 30.0, r.Height())
}

func TestShrinkKeepsBottom(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	s := r.Shrink(10, 10)
	assert.Equal(t, Rect{Left: 10, Top: 10, Right: 90, Bottom: 40}, s)

	f := r.InsetFraction(0.25, 0.05)
	assert.InDelta(t, 25.0, f.Left, 1e-9)
	assert.InDelta(t, 75.0, f.Right, 1e-9)
	assert.InDelta(t, 2.0, f.Top, 1e-9)
	assert.Equal(t, 40.0, f.Bottom)
}

func TestOverlapsFromAbove(t *testing.T) {
	obstacle := NewRect(100, 60, 20, 20)

	tests := []struct {
		name string
		hero Rect
		want bool
	}{
		{"standing inside", NewRect(105, 50, 10, 30), true},
		{"left of obstacle", NewRect(80, 50, 10, 30), false},
		{"right of obstacle", NewRect(121, 50, 10, 30), false},
		{"jumping over", NewRect(105, 20, 10, 30), false},
		{"touching edges only", NewRect(90, 50, 10, 30), false},
		{"below the top counts", NewRect(105, 90, 10, 30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapsFromAbove(tt.hero, obstacle))
		})
	}
}

func TestLeftOf(t *testing.T) {
	assert.True(t, LeftOf(NewRect(0, 0, 10, 10), NewRect(11, 0, 10, 10)))
	assert.False(t, LeftOf(NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10)))
}

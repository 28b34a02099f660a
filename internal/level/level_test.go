package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOf(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{0, "Ferro"},
		{100, "Ferro"},
		{1000, "Ferro"},
		{1001, "Bronze"},
		{2000, "Bronze"},
		{2001, "Prata"},
		{5001, "Ouro"},
		{7001, "Platina"},
		{8500, "Ascendente"},
		{10000, "Imortal"},
		{10001, "Radiante"},
		{1 << 40, "Radiante"},
		{-1, Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankOf(tt.xp), "xp=%d", tt.xp)
	}
}

func TestTiersPartitionNonNegativeRange(t *testing.T) {
	require.NotEmpty(t, Tiers)
	assert.Equal(t, 0, Tiers[0].MinXP)
	assert.Equal(t, Unbounded, Tiers[len(Tiers)-1].MaxXP)

	for i := 1; i < len(Tiers); i++ {
		prev, cur := Tiers[i-1], Tiers[i]
		assert.Equal(t, prev.MaxXP+1, cur.MinXP, "gap or overlap between %s and %s", prev.Name, cur.Name)
		assert.LessOrEqual(t, cur.MinXP, cur.MaxXP)
	}

	// Every award step lands in exactly one tier.
	for xp := 0; xp <= 12000; xp += 100 {
		matches := 0
		for _, tier := range Tiers {
			if tier.Contains(xp) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "xp=%d", xp)
	}
}

func TestNext(t *testing.T) {
	name, remaining, ok := Next(900)
	require.True(t, ok)
	assert.Equal(t, "Bronze", name)
	assert.Equal(t, 101, remaining)

	_, _, ok = Next(20000)
	assert.False(t, ok)

	_, _, ok = Next(-5)
	assert.False(t, ok)
}

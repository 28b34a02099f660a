// Package level maps accumulated experience to named rank tiers.
package level

import "math"

// Unbounded marks the open upper end of the last tier.
const Unbounded = math.MaxInt

// Unknown is returned for experience values no tier covers.
const Unknown = "Desconhecido"

// Tier is one rank band. MinXP and MaxXP are inclusive.
type Tier struct {
	Name  string
	MinXP int
	MaxXP int
}

// Contains reports whether xp falls inside the tier.
func (t Tier) Contains(xp int) bool {
	return xp >= t.MinXP && xp <= t.MaxXP
}

// Tiers is the rank table, contiguous and sorted ascending by MinXP.
var Tiers = []Tier{
	{Name: "Ferro", MinXP: 0, MaxXP: 1000},
	{Name: "Bronze", MinXP: 1001, MaxXP: 2000},
	{Name: "Prata", MinXP: 2001, MaxXP: 5000},
	{Name: "Ouro", MinXP: 5001, MaxXP: 7000},
	{Name: "Platina", MinXP: 7001, MaxXP: 8000},
	{Name: "Ascendente", MinXP: 8001, MaxXP: 9000},
	{Name: "Imortal", MinXP: 9001, MaxXP: 10000},
	{Name: "Radiante", MinXP: 10001, MaxXP: Unbounded},
}

// TierOf returns the index of the tier containing xp, or -1.
// The table is small enough that a linear scan is the simplest correct lookup.
func TierOf(xp int) int {
	for i, t := range Tiers {
		if t.Contains(xp) {
			return i
		}
	}
	return -1
}

// RankOf returns the rank name for xp, or Unknown if no tier matches.
func RankOf(xp int) string {
	if i := TierOf(xp); i >= 0 {
		return Tiers[i].Name
	}
	return Unknown
}

// Next returns the name of the following tier and the experience still
// needed to reach it. ok is false on the last tier.
func Next(xp int) (name string, remaining int, ok bool) {
	i := TierOf(xp)
	if i < 0 || i+1 >= len(Tiers) {
		return "", 0, false
	}
	next := Tiers[i+1]
	return next.Name, next.MinXP - xp, true
}
